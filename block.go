// Package aescore implements the single-block AES primitive layer: the
// contract every block backend must satisfy, an immutable expanded key
// schedule, and build-time selection between the reference software rounds
// and an alternative (hardware or integrator-supplied) implementation.
//
// The transform is a pure function of its inputs: no logging, no
// allocation, no hidden state. Modes of operation (CBC, CTR, GCM, ...) are
// built on top of this package, not inside it.
//
// Backend selection happens at build time. A default build links the
// reference rounds for both directions. Building with the aesaltenc or
// aesaltdec tag replaces the encrypt or decrypt direction with the
// alternative backend; the two tags are independent, so mixed builds
// (reference encrypt, alternative decrypt) are valid. When a direction is
// built as alternative and no real implementation is wired in, every call
// for that direction fails closed with ErrFeatureUnsupported rather than
// producing plausible-looking output.
package aescore

import "fmt"

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// Block is one AES block. The fixed array type makes a length mismatch
// impossible at the call site.
type Block [BlockSize]byte

// Direction selects which block transform Transform performs.
type Direction int

const (
	// Encrypt transforms plaintext blocks to ciphertext blocks.
	Encrypt Direction = iota

	// Decrypt transforms ciphertext blocks to plaintext blocks.
	Decrypt
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// BlockTransformer is the contract every backend satisfies.
//
// On success dst holds the bit-exact FIPS-197 transform of src for the key
// material the implementation was built over. On failure dst is untouched
// and the error wraps ErrFeatureUnsupported or another sentinel from this
// package; callers must not read dst after a failure.
//
// Implementations must support dst == src aliasing, must be deterministic,
// must not retain or mutate dst/src after returning, and must be safe for
// concurrent use as long as each call owns its buffers.
type BlockTransformer interface {
	// EncryptBlock writes the encryption of src into dst.
	EncryptBlock(dst, src *Block) error

	// DecryptBlock writes the decryption of src into dst.
	DecryptBlock(dst, src *Block) error
}

// Transform performs one block operation in the given direction. It is a
// convenience for mode-of-operation layers that carry a Direction value
// instead of branching at every call site.
func Transform(dir Direction, t BlockTransformer, dst, src *Block) error {
	switch dir {
	case Encrypt:
		return t.EncryptBlock(dst, src)
	case Decrypt:
		return t.DecryptBlock(dst, src)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDirection, dir)
	}
}
