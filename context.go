package aescore

import (
	"fmt"

	"github.com/awnumar/memguard"
)

// maxScheduleWords is the expanded schedule length for AES-256:
// 4 words per round key, 14 rounds plus the initial whitening key.
const maxScheduleWords = 60

// Context is an expanded AES key schedule. It is immutable after
// construction: the transform borrows it read-only, never mutates it, and a
// single Context may be shared by any number of concurrent calls.
//
// A Context is created once by New or NewFromEnclave, used for many block
// transforms, and simply dropped when the key is retired; it owns no
// resources beyond its own memory.
type Context struct {
	bits   int // key length discriminant: 128, 192, or 256
	rounds int
	enc    [maxScheduleWords]uint32
	dec    [maxScheduleWords]uint32
}

// Compile-time interface check.
var _ BlockTransformer = (*Context)(nil)

// New expands key into a Context. The key must be 16, 24, or 32 bytes to
// select AES-128, AES-192, or AES-256. The key bytes are copied into the
// schedule; the caller may zero the original after construction.
func New(key []byte) (*Context, error) {
	var rounds int
	switch len(key) {
	case 16:
		rounds = 10
	case 24:
		rounds = 12
	case 32:
		rounds = 14
	default:
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}

	c := &Context{bits: len(key) * 8, rounds: rounds}
	n := 4 * (rounds + 1)
	expandKey(key, c.enc[:n], c.dec[:n])
	return c, nil
}

// NewFromEnclave expands a key sealed in a memguard enclave. The raw key
// bytes exist outside locked memory only for the duration of the expansion;
// the opened buffer is destroyed before NewFromEnclave returns.
func NewFromEnclave(e *memguard.Enclave) (*Context, error) {
	if e == nil {
		return nil, fmt.Errorf("aescore: NewFromEnclave enclave is nil")
	}
	buf, err := e.Open()
	if err != nil {
		return nil, fmt.Errorf("aescore: failed to open key enclave: %w", err)
	}
	defer buf.Destroy()
	return New(buf.Bytes())
}

// KeyBits returns the key length this Context was expanded from: 128, 192,
// or 256.
func (c *Context) KeyBits() int { return c.bits }

// EncryptBlock writes the encryption of src into dst using the backend
// selected at build time for the encrypt direction. dst and src may alias.
func (c *Context) EncryptBlock(dst, src *Block) error {
	return encryptBlock(c, dst, src)
}

// DecryptBlock writes the decryption of src into dst using the backend
// selected at build time for the decrypt direction. dst and src may alias.
func (c *Context) DecryptBlock(dst, src *Block) error {
	return decryptBlock(c, dst, src)
}

// encSchedule returns the live portion of the encryption schedule.
func (c *Context) encSchedule() []uint32 { return c.enc[:4*(c.rounds+1)] }

// decSchedule returns the live portion of the decryption schedule.
func (c *Context) decSchedule() []uint32 { return c.dec[:4*(c.rounds+1)] }
