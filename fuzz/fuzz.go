//go:build gofuzz

package fuzz

import (
	testing "github.com/AdamKorcz/go-118-fuzz-build/testing"

	aescore "github.com/rbaliyan/aes-core"
)

// FuzzBlockRoundTrip expands arbitrary key material and checks that
// decryption inverts encryption for arbitrary blocks.
func FuzzBlockRoundTrip(f *testing.F) {
	f.Fuzz(func(t *testing.T, key []byte, block []byte) {
		switch len(key) {
		case 16, 24, 32:
		default:
			return
		}
		if len(block) < aescore.BlockSize {
			return
		}

		ctx, err := aescore.New(key)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		var pt, ct, rt aescore.Block
		copy(pt[:], block)

		if err := ctx.EncryptBlock(&ct, &pt); err != nil {
			t.Fatalf("EncryptBlock: %v", err)
		}
		if err := ctx.DecryptBlock(&rt, &ct); err != nil {
			t.Fatalf("DecryptBlock: %v", err)
		}
		if rt != pt {
			t.Fatalf("round trip mismatch: got %x, want %x", rt, pt)
		}
	})
}
