package stats

import (
	"math/rand"
	"strconv"
	"testing"
)

func makeBenchSamples(n int) []float64 {
	rng := rand.New(rand.NewSource(1))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

func BenchmarkKernel(b *testing.B) {
	// Band selections are short; a handful of bands per channel is typical.
	sizes := []int{1, 4, 16, 64}

	for _, s := range Statistics() {
		for _, n := range sizes {
			samples := makeBenchSamples(n)
			scratch := make([]float64, n)

			k, err := NewKernel(s)
			if err != nil {
				b.Fatalf("NewKernel(%v): %v", s, err)
			}

			b.Run(s.String()+"/"+strconv.Itoa(n), func(b *testing.B) {
				b.ReportAllocs()

				for range b.N {
					copy(scratch, samples)
					k(scratch)
				}
			})
		}
	}
}

func BenchmarkSummarize(b *testing.B) {
	sizes := []int{4, 16, 64}

	for _, n := range sizes {
		samples := makeBenchSamples(n)
		scratch := make([]float64, n)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				copy(scratch, samples)
				if _, err := Summarize(scratch); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
