package segment

import (
	"math"
	"testing"
)

func benchInput(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(float64(i) * 0.013)
	}
	return x
}

func BenchmarkNormalize(b *testing.B) {
	x := benchInput(1 << 14)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Normalize(x); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConcatCrossfade(b *testing.B) {
	seg := benchInput(1 << 12)
	buffers := [][]float64{seg, seg, seg, seg}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Concat(buffers, 256); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFadeOutSamples(b *testing.B) {
	x := benchInput(1 << 14)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FadeOutSamples(x, 1024); err != nil {
			b.Fatal(err)
		}
	}
}
