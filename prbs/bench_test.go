package prbs_test

import (
	"testing"

	"github.com/katalvlaran/sysid/prbs"
)

// benchmarkGenerate runs Generate for the given shape and options.
func benchmarkGenerate(b *testing.B, length, channels int, opts ...prbs.Option) {
	b.ReportAllocs()
	b.SetBytes(int64(length * channels))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := prbs.Generate(length, channels, opts...); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_SingleChannel measures a 64k single-input sequence.
func BenchmarkGenerate_SingleChannel(b *testing.B) {
	benchmarkGenerate(b, 1<<16, 1, prbs.WithSeed(1))
}

// BenchmarkGenerate_Sequential measures 16 channels generated in order.
func BenchmarkGenerate_Sequential(b *testing.B) {
	benchmarkGenerate(b, 1<<16, 16, prbs.WithSeed(1))
}

// BenchmarkGenerate_Parallel measures 16 channels fanned out over goroutines.
func BenchmarkGenerate_Parallel(b *testing.B) {
	benchmarkGenerate(b, 1<<16, 16, prbs.WithSeed(1), prbs.WithParallel())
}
