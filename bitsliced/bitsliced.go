// Package bitsliced is a constant-time alternative backend for the aescore
// block transform contract: the S-box is evaluated as boolean algebra over
// bit planes, so no memory access ever depends on key or data bytes.
//
// Only the encrypt direction is implemented. DecryptBlock reports
// aescore.ErrFeatureUnsupported on every call, which makes a Cipher a
// worked example of a mixed per-direction configuration: callers that need
// both directions pair it with a reference Context for decryption.
//
// Usage:
//
//	c, err := bitsliced.New(key)
//	if err != nil {
//	    return err
//	}
//	var ct aescore.Block
//	err = c.EncryptBlock(&ct, &pt)
package bitsliced

import (
	"fmt"

	aescore "github.com/rbaliyan/aes-core"
)

// Cipher is an expanded key schedule for the bit-sliced backend. Like
// aescore.Context it is immutable after construction and safe for
// concurrent use.
type Cipher struct {
	rk []aescore.Block // one round key per round, plus whitening
}

// Compile-time interface check.
var _ aescore.BlockTransformer = (*Cipher)(nil)

// New expands key into a Cipher. The key must be 16, 24, or 32 bytes to
// select AES-128, AES-192, or AES-256.
func New(key []byte) (*Cipher, error) {
	var rounds int
	switch len(key) {
	case 16:
		rounds = 10
	case 24:
		rounds = 12
	case 32:
		rounds = 14
	default:
		return nil, fmt.Errorf("%w: got %d bytes", aescore.ErrInvalidKeySize, len(key))
	}
	return &Cipher{rk: expandKey(key, rounds)}, nil
}

// KeyBits returns the key length this Cipher was expanded from.
func (c *Cipher) KeyBits() int { return (len(c.rk) - 7) * 32 }

// EncryptBlock writes the encryption of src into dst. dst and src may
// alias; the state is held in locals until the final write.
func (c *Cipher) EncryptBlock(dst, src *aescore.Block) error {
	state := [16]byte(*src)
	xorBlock(&state, &c.rk[0])

	last := len(c.rk) - 1
	for r := 1; r < last; r++ {
		q := pack(state)
		q = sbox(q)
		q = shiftRows(q)
		q = mixColumns(q)
		state = unpack(q)
		xorBlock(&state, &c.rk[r])
	}

	// Final round, no MixColumns.
	q := pack(state)
	q = sbox(q)
	q = shiftRows(q)
	state = unpack(q)
	xorBlock(&state, &c.rk[last])

	*dst = aescore.Block(state)
	return nil
}

// DecryptBlock always fails: the inverse rounds are not implemented in this
// backend. dst is never written.
func (c *Cipher) DecryptBlock(dst, src *aescore.Block) error {
	return fmt.Errorf("%w: bitsliced backend implements the encrypt direction only",
		aescore.ErrFeatureUnsupported)
}

func xorBlock(state *[16]byte, rk *aescore.Block) {
	for i := range state {
		state[i] ^= rk[i]
	}
}

// subWord applies the S-box to a four-byte word through the bit-sliced
// circuit, keeping key expansion free of table lookups as well.
func subWord(w [4]byte) [4]byte {
	var s [16]byte
	copy(s[:4], w[:])
	s = unpack(sbox(pack(s)))
	var out [4]byte
	copy(out[:], s[:4])
	return out
}

// xtime doubles a in GF(2^8). Only ever applied to the public Rcon value.
func xtime(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ 0x1b
	}
	return a << 1
}

// expandKey runs the FIPS-197 expansion into per-round 16-byte keys laid
// out in state byte order.
func expandKey(key []byte, rounds int) []aescore.Block {
	nk := len(key) / 4
	nw := 4 * (rounds + 1)

	w := make([][4]byte, nw)
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}

	rcon := byte(1)
	for i := nk; i < nw; i++ {
		t := w[i-1]
		if i%nk == 0 {
			t = subWord([4]byte{t[1], t[2], t[3], t[0]})
			t[0] ^= rcon
			rcon = xtime(rcon)
		} else if nk > 6 && i%nk == 4 {
			t = subWord(t)
		}
		for b := range t {
			w[i][b] = w[i-nk][b] ^ t[b]
		}
	}

	rk := make([]aescore.Block, rounds+1)
	for r := range rk {
		for c := 0; c < 4; c++ {
			copy(rk[r][4*c:4*c+4], w[4*r+c][:])
		}
	}
	return rk
}
