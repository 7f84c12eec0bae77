//go:build !aesaltdec

package aescore

// Reference backend for the decrypt direction. Excluded from builds that
// declare an alternative decrypt implementation with the aesaltdec tag.
func decryptBlock(c *Context, dst, src *Block) error {
	decryptBlockGeneric(c.decSchedule(), dst, src)
	return nil
}
