package bitsliced

// Bit-sliced AES state: plane q[j] holds bit j of every state byte, with
// bit i of the plane belonging to state byte i. All transforms below are
// plane-wise boolean algebra, so no table is ever indexed by secret data.

func pack(s [16]byte) (q [8]uint16) {
	for i := 0; i < 16; i++ {
		b := uint16(s[i])
		m := uint16(1) << i
		q[0] |= (b & 1) * m
		q[1] |= ((b >> 1) & 1) * m
		q[2] |= ((b >> 2) & 1) * m
		q[3] |= ((b >> 3) & 1) * m
		q[4] |= ((b >> 4) & 1) * m
		q[5] |= ((b >> 5) & 1) * m
		q[6] |= ((b >> 6) & 1) * m
		q[7] |= ((b >> 7) & 1) * m
	}
	return q
}

func unpack(q [8]uint16) (s [16]byte) {
	for i := 0; i < 16; i++ {
		m := uint16(1) << i
		b := (q[0] & m) >> i
		b |= ((q[1] & m) >> i) << 1
		b |= ((q[2] & m) >> i) << 2
		b |= ((q[3] & m) >> i) << 3
		b |= ((q[4] & m) >> i) << 4
		b |= ((q[5] & m) >> i) << 5
		b |= ((q[6] & m) >> i) << 6
		b |= ((q[7] & m) >> i) << 7
		s[i] = byte(b)
	}
	return s
}

// shiftRows permutes lanes within each plane. Lane 4c+r is row r of column
// c of the column-major state, so row r rotates left by r columns.
func shiftRows(q [8]uint16) [8]uint16 {
	rot := func(in uint16) uint16 {
		return (in & 0x1111) |
			((in & 0x2220) >> 4) | ((in & 0x0002) << 12) |
			((in & 0x4400) >> 8) | ((in & 0x0044) << 8) |
			((in & 0x0888) << 4) | ((in & 0x8000) >> 12)
	}
	var r [8]uint16
	for i := 0; i < 8; i++ {
		r[i] = rot(q[i])
	}
	return r
}

func mixColumns(q [8]uint16) [8]uint16 {
	// t = xtime(q), plane-wise.
	t := [8]uint16{
		q[7],
		q[0] ^ q[7],
		q[1],
		q[2] ^ q[7],
		q[3] ^ q[7],
		q[4],
		q[5],
		q[6],
	}

	// Nibble rotations select the other three rows of the same column.
	rot1 := func(x uint16) uint16 { return (x>>1)&0x7777 | (x&0x1111)<<3 }
	rot2 := func(x uint16) uint16 { return (x>>2)&0x3333 | (x&0x3333)<<2 }
	rot3 := func(x uint16) uint16 { return (x>>3)&0x1111 | (x&0x7777)<<1 }

	var r [8]uint16
	for k := 0; k < 8; k++ {
		// 2*s[r] + 3*s[r+1] + s[r+2] + s[r+3]
		r[k] = t[k] ^ rot1(t[k]^q[k]) ^ rot2(q[k]) ^ rot3(q[k])
	}
	return r
}

// mul multiplies two bit-sliced GF(2^8) elements.
func mul(a, b [8]uint16) [8]uint16 {
	var p [15]uint16
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			p[i+j] ^= a[i] & b[j]
		}
	}
	return reduce(&p)
}

// sq squares a bit-sliced GF(2^8) element.
func sq(a [8]uint16) [8]uint16 {
	var p [15]uint16
	for i := 0; i < 8; i++ {
		p[2*i] = a[i]
	}
	return reduce(&p)
}

// reduce folds a degree-14 product back modulo x^8 + x^4 + x^3 + x + 1.
func reduce(p *[15]uint16) [8]uint16 {
	for i := 14; i >= 8; i-- {
		v := p[i]
		p[i-4] ^= v
		p[i-5] ^= v
		p[i-7] ^= v
		p[i-8] ^= v
	}
	var res [8]uint16
	for i := 0; i < 8; i++ {
		res[i] = p[i]
	}
	return res
}

// inv raises to the 254th power (the field inverse, with 0 mapping to 0)
// via an addition chain of squarings.
func inv(a [8]uint16) [8]uint16 {
	x2 := sq(a)
	x4 := sq(x2)
	x8 := sq(x4)
	x16 := sq(x8)
	x32 := sq(x16)
	x64 := sq(x32)
	x128 := sq(x64)

	res := x2
	res = mul(res, x4)
	res = mul(res, x8)
	res = mul(res, x16)
	res = mul(res, x32)
	res = mul(res, x64)
	res = mul(res, x128)
	return res
}

// affine applies the S-box affine transform; the complements fold in the
// 0x63 constant.
func affine(a [8]uint16) [8]uint16 {
	var s [8]uint16
	for i := 0; i < 8; i++ {
		s[i] = a[i] ^ a[(i+4)%8] ^ a[(i+5)%8] ^ a[(i+6)%8] ^ a[(i+7)%8]
	}
	s[0] = ^s[0]
	s[1] = ^s[1]
	s[5] = ^s[5]
	s[6] = ^s[6]
	return s
}

func sbox(u [8]uint16) [8]uint16 {
	return affine(inv(u))
}
