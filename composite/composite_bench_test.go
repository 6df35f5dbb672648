package composite

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-hyper/internal/testutil"
	"github.com/cwbudde/algo-hyper/stats"
)

func BenchmarkCompose(b *testing.B) {
	wavelengths := make([]float64, 64)
	for i := range wavelengths {
		wavelengths[i] = 400 + float64(i)*8
	}

	sizes := []int{32, 128}
	statistics := []stats.Statistic{stats.Mean, stats.Median, stats.SD2Pos}

	for _, n := range sizes {
		c := testutil.NoiseCube(n, n, wavelengths, 1)

		for _, statistic := range statistics {
			comp, err := NewComposer(WithStatistic(statistic), WithWindow(100))
			if err != nil {
				b.Fatalf("NewComposer: %v", err)
			}

			b.Run(fmt.Sprintf("%s/%dx%d", statistic, n, n), func(b *testing.B) {
				b.ReportAllocs()

				for range b.N {
					if _, err := comp.Compose(c); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkSelectBands(b *testing.B) {
	wavelengths := make([]float64, 256)
	for i := range wavelengths {
		wavelengths[i] = 380 + float64(i)*4
	}
	idx := indexFor(wavelengths)

	b.ReportAllocs()

	for range b.N {
		if _, err := SelectBands(idx, 550, 40); err != nil {
			b.Fatal(err)
		}
	}
}
