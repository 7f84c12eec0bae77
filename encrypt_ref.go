//go:build !aesaltenc

package aescore

// Reference backend for the encrypt direction. Excluded from builds that
// declare an alternative encrypt implementation with the aesaltenc tag.
func encryptBlock(c *Context, dst, src *Block) error {
	encryptBlockGeneric(c.encSchedule(), dst, src)
	return nil
}
