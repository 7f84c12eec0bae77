//go:build !aesaltenc && !aesaltdec

package aescore

import (
	"encoding/hex"
	"sync"
	"testing"
)

func TestRoundTripAllKeySizes(t *testing.T) {
	keys := map[string]string{
		"AES-128": "000102030405060708090a0b0c0d0e0f",
		"AES-192": "000102030405060708090a0b0c0d0e0f1011121314151617",
		"AES-256": "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
	}

	for name, keyHex := range keys {
		t.Run(name, func(t *testing.T) {
			ctx := mustContext(t, keyHex)

			var pt Block
			for i := range pt {
				pt[i] = byte(i * 7)
			}

			var ct, rt Block
			if err := ctx.EncryptBlock(&ct, &pt); err != nil {
				t.Fatalf("EncryptBlock: %v", err)
			}
			if ct == pt {
				t.Fatal("ciphertext equals plaintext")
			}
			if err := ctx.DecryptBlock(&rt, &ct); err != nil {
				t.Fatalf("DecryptBlock: %v", err)
			}
			if rt != pt {
				t.Errorf("round trip: got %x, want %x", rt, pt)
			}
		})
	}
}

func TestKeyVariantsNotInterchangeable(t *testing.T) {
	// A 256-bit key sharing its first 16 bytes with a 128-bit key must not
	// produce the same transform.
	ctx128 := mustContext(t, "000102030405060708090a0b0c0d0e0f")
	ctx256 := mustContext(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")

	pt := mustHexBlock(t, "00112233445566778899aabbccddeeff")
	var ct128, ct256 Block
	if err := ctx128.EncryptBlock(&ct128, &pt); err != nil {
		t.Fatalf("EncryptBlock 128: %v", err)
	}
	if err := ctx256.EncryptBlock(&ct256, &pt); err != nil {
		t.Fatalf("EncryptBlock 256: %v", err)
	}
	if ct128 == ct256 {
		t.Error("AES-128 and AES-256 produced identical ciphertext")
	}
}

func TestEncryptDeterministic(t *testing.T) {
	ctx := mustContext(t, "000102030405060708090a0b0c0d0e0f")
	pt := mustHexBlock(t, "00112233445566778899aabbccddeeff")

	var first, second Block
	if err := ctx.EncryptBlock(&first, &pt); err != nil {
		t.Fatalf("EncryptBlock: %v", err)
	}
	if err := ctx.EncryptBlock(&second, &pt); err != nil {
		t.Fatalf("EncryptBlock: %v", err)
	}
	if first != second {
		t.Errorf("non-deterministic output: %x vs %x", first, second)
	}
}

func TestInPlaceAliasing(t *testing.T) {
	ctx := mustContext(t, "000102030405060708090a0b0c0d0e0f")
	pt := mustHexBlock(t, "00112233445566778899aabbccddeeff")

	var want Block
	if err := ctx.EncryptBlock(&want, &pt); err != nil {
		t.Fatalf("EncryptBlock: %v", err)
	}

	buf := pt
	if err := ctx.EncryptBlock(&buf, &buf); err != nil {
		t.Fatalf("EncryptBlock in place: %v", err)
	}
	if buf != want {
		t.Errorf("in-place encrypt: got %x, want %x", buf, want)
	}

	if err := ctx.DecryptBlock(&buf, &buf); err != nil {
		t.Fatalf("DecryptBlock in place: %v", err)
	}
	if buf != pt {
		t.Errorf("in-place decrypt: got %x, want %x", buf, pt)
	}
}

func TestTransformDispatch(t *testing.T) {
	ctx := mustContext(t, "000102030405060708090a0b0c0d0e0f")
	pt := mustHexBlock(t, "00112233445566778899aabbccddeeff")

	var viaMethod, viaTransform Block
	if err := ctx.EncryptBlock(&viaMethod, &pt); err != nil {
		t.Fatalf("EncryptBlock: %v", err)
	}
	if err := Transform(Encrypt, ctx, &viaTransform, &pt); err != nil {
		t.Fatalf("Transform(Encrypt): %v", err)
	}
	if viaTransform != viaMethod {
		t.Errorf("Transform(Encrypt): got %x, want %x", viaTransform, viaMethod)
	}

	var rt Block
	if err := Transform(Decrypt, ctx, &rt, &viaTransform); err != nil {
		t.Fatalf("Transform(Decrypt): %v", err)
	}
	if rt != pt {
		t.Errorf("Transform(Decrypt): got %x, want %x", rt, pt)
	}
}

func TestTransformUnknownDirection(t *testing.T) {
	ctx := mustContext(t, "000102030405060708090a0b0c0d0e0f")

	var dst, src Block
	err := Transform(Direction(42), ctx, &dst, &src)
	if err == nil {
		t.Fatal("expected error for unknown direction")
	}
	if FailureCode(err) != CodeUnsupportedDirection {
		t.Errorf("FailureCode: got %q, want %q", FailureCode(err), CodeUnsupportedDirection)
	}
}

func TestContextConcurrentUse(t *testing.T) {
	ctx := mustContext(t, "000102030405060708090a0b0c0d0e0f")
	pt := mustHexBlock(t, "00112233445566778899aabbccddeeff")

	var want Block
	if err := ctx.EncryptBlock(&want, &pt); err != nil {
		t.Fatalf("EncryptBlock: %v", err)
	}

	const goroutines = 16
	const iterations = 200

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var ct, rt Block
			for i := 0; i < iterations; i++ {
				if err := ctx.EncryptBlock(&ct, &pt); err != nil || ct != want {
					errs <- err
					return
				}
				if err := ctx.DecryptBlock(&rt, &ct); err != nil || rt != pt {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent transform mismatch (err=%v)", err)
	}
}

func FuzzEncryptDecryptRoundTrip(f *testing.F) {
	key16, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	key32, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	block, _ := hex.DecodeString("00112233445566778899aabbccddeeff")
	f.Add(key16, block)
	f.Add(key32, block)

	f.Fuzz(func(t *testing.T, key []byte, data []byte) {
		switch len(key) {
		case 16, 24, 32:
		default:
			t.Skip()
		}
		if len(data) < BlockSize {
			t.Skip()
		}

		ctx, err := New(key)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		var pt, ct, rt Block
		copy(pt[:], data)
		if err := ctx.EncryptBlock(&ct, &pt); err != nil {
			t.Fatalf("EncryptBlock: %v", err)
		}
		if err := ctx.DecryptBlock(&rt, &ct); err != nil {
			t.Fatalf("DecryptBlock: %v", err)
		}
		if rt != pt {
			t.Errorf("round trip: got %x, want %x", rt, pt)
		}
	})
}
