package lfsr_test

import (
	"testing"

	"github.com/katalvlaran/sysid/lfsr"
)

// benchmarkRead measures the bulk path for an n-bit register over k bits.
func benchmarkRead(b *testing.B, n, k int) {
	g, err := lfsr.New(n, 1)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	buf := make([]uint8, k)

	b.ReportAllocs()
	b.SetBytes(int64(k))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Read(buf)
	}
}

// BenchmarkStep measures a single step on the widest register.
func BenchmarkStep(b *testing.B) {
	g, _ := lfsr.New(lfsr.MaxRegisterLength, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}

// BenchmarkRead_Short reads 1k bits from a 10-bit register.
func BenchmarkRead_Short(b *testing.B) { benchmarkRead(b, 10, 1<<10) }

// BenchmarkRead_Long reads 1M bits from a 20-bit register.
func BenchmarkRead_Long(b *testing.B) { benchmarkRead(b, 20, 1<<20) }
