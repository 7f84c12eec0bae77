//go:build aesaltdec

package aescore

// Alternative backend hook for the decrypt direction. Replace this file's
// body when wiring in a real implementation. Until one is wired in, every
// call fails closed: the context and buffers are left untouched and the
// caller gets a typed, recoverable error instead of plausible-looking
// plaintext.
func decryptBlock(c *Context, dst, src *Block) error {
	return ErrFeatureUnsupported
}
