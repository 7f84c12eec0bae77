//go:build !aesaltenc && !aesaltdec

package aescore

import "testing"

func benchmarkContext(b *testing.B) *Context {
	b.Helper()
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i)
	}
	ctx, err := New(key)
	if err != nil {
		b.Fatal(err)
	}
	return ctx
}

func BenchmarkEncryptBlock(b *testing.B) {
	ctx := benchmarkContext(b)
	var dst, src Block

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := ctx.EncryptBlock(&dst, &src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecryptBlock(b *testing.B) {
	ctx := benchmarkContext(b)
	var dst, src Block

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := ctx.DecryptBlock(&dst, &src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNew(b *testing.B) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := New(key); err != nil {
			b.Fatal(err)
		}
	}
}
