package aescore

import "math/bits"

// Lookup tables for the table-driven reference rounds, in the layout of the
// optimised Rijndael reference code: te[i] covers SubBytes+MixColumns for
// encryption, td[i] the inverse for decryption, with te[i] and td[i] being
// te[0]/td[0] byte-rotated right by i positions.
//
// The tables are derived at package init from the GF(2^8) field arithmetic
// in FIPS-197 rather than embedded as literals, so every entry is auditable
// against the definition it came from.
var (
	sbox0 [256]byte // S-box
	sbox1 [256]byte // inverse S-box

	te0, te1, te2, te3 [256]uint32
	td0, td1, td2, td3 [256]uint32

	powx [16]byte // powers of x, the Rcon source for key expansion
)

// gfMul multiplies a and b in GF(2^8) with the AES reduction polynomial
// x^8 + x^4 + x^3 + x + 1.
func gfMul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

func init() {
	// Multiplicative inverses, exhaustively. 64k field multiplications once
	// at init; nothing here depends on secret data.
	var inv [256]byte
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			if gfMul(byte(a), byte(b)) == 1 {
				inv[a] = byte(b)
				break
			}
		}
	}

	// S-box: multiplicative inverse followed by the affine transform.
	for x := 0; x < 256; x++ {
		i := inv[x]
		s := i ^ bits.RotateLeft8(i, 1) ^ bits.RotateLeft8(i, 2) ^
			bits.RotateLeft8(i, 3) ^ bits.RotateLeft8(i, 4) ^ 0x63
		sbox0[x] = s
		sbox1[s] = byte(x)
	}

	// T-tables. te0[x] packs the MixColumns column (2s, s, s, 3s) of
	// sbox0[x]; td0[x] packs the InvMixColumns column (14si, 9si, 13si, 11si)
	// of sbox1[x].
	for x := 0; x < 256; x++ {
		s := sbox0[x]
		w := uint32(gfMul(s, 2))<<24 | uint32(s)<<16 | uint32(s)<<8 | uint32(gfMul(s, 3))
		te0[x] = w
		te1[x] = bits.RotateLeft32(w, -8)
		te2[x] = bits.RotateLeft32(w, -16)
		te3[x] = bits.RotateLeft32(w, -24)

		si := sbox1[x]
		w = uint32(gfMul(si, 14))<<24 | uint32(gfMul(si, 9))<<16 |
			uint32(gfMul(si, 13))<<8 | uint32(gfMul(si, 11))
		td0[x] = w
		td1[x] = bits.RotateLeft32(w, -8)
		td2[x] = bits.RotateLeft32(w, -16)
		td3[x] = bits.RotateLeft32(w, -24)
	}

	p := byte(1)
	for i := range powx {
		powx[i] = p
		p = gfMul(p, 2)
	}
}
