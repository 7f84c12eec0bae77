package aescore

import (
	"encoding/hex"
	"testing"
)

// Single-block known-answer vectors, shared by the per-direction tests.
// The first three are FIPS-197 Appendix C; the last is the first ECB block
// of SP 800-38A F.1.
var blockVectors = []struct {
	name string
	key  string
	pt   string
	ct   string
}{
	{
		name: "FIPS-197 C.1 AES-128",
		key:  "000102030405060708090a0b0c0d0e0f",
		pt:   "00112233445566778899aabbccddeeff",
		ct:   "69c4e0d86a7b0430d8cdb78070b4c55a",
	},
	{
		name: "FIPS-197 C.2 AES-192",
		key:  "000102030405060708090a0b0c0d0e0f1011121314151617",
		pt:   "00112233445566778899aabbccddeeff",
		ct:   "dda97ca4864cdfe06eaf70a0ec0d7191",
	},
	{
		name: "FIPS-197 C.3 AES-256",
		key:  "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		pt:   "00112233445566778899aabbccddeeff",
		ct:   "8ea2b7ca516745bfeafc49904b496089",
	},
	{
		name: "SP 800-38A F.1 AES-128",
		key:  "2b7e151628aed2a6abf7158809cf4f3c",
		pt:   "6bc1bee22e409f96e93d7e117393172a",
		ct:   "3ad77bb40d7a3660a89ecaf32466ef97",
	},
}

func mustHexBlock(t *testing.T, s string) Block {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	if len(b) != BlockSize {
		t.Fatalf("bad block length %d for %q", len(b), s)
	}
	var blk Block
	copy(blk[:], b)
	return blk
}

func mustContext(t *testing.T, keyHex string) *Context {
	t.Helper()
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		t.Fatalf("bad key hex %q: %v", keyHex, err)
	}
	ctx, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ctx
}
