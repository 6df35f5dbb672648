package composite_test

import (
	"fmt"

	"github.com/cwbudde/algo-hyper/composite"
	"github.com/cwbudde/algo-hyper/cube"
	"github.com/cwbudde/algo-hyper/stats"
)

func ExampleComposer_Compose() {
	// A 1x2 cube with five bands; each band holds its index everywhere.
	c := cube.NewMemCube(1, 2)
	for i, wl := range []float64{400, 500, 600, 700, 800} {
		meta := cube.BandMeta{Wavelength: wl, HasWavelength: true, Valid: true}
		_ = c.AddBand(meta, []float64{float64(i), float64(i)})
	}

	comp, _ := composite.NewComposer(
		composite.WithStatistic(stats.Mean),
		composite.WithWindow(200),
	)

	res, _ := comp.Compose(c)
	for _, sel := range res.Selections {
		fmt.Printf("%s: bands %v -> %.1f\n", sel.Channel, sel.Bands, res.Rasters[sel.Channel].At(0, 0))
	}

	// Output:
	// red: bands [2 3] -> 2.5
	// green: bands [1 2] -> 1.5
	// blue: bands [0 1] -> 0.5
}

func ExampleSelectBands() {
	c := cube.NewMemCube(1, 1)
	for _, wl := range []float64{400, 500, 600, 700, 800} {
		_ = c.AddBand(cube.BandMeta{Wavelength: wl, HasWavelength: true, Valid: true}, []float64{0})
	}
	idx := cube.BuildIndex(c)

	within, _ := composite.SelectBands(idx, 550, 200)
	nearest, _ := composite.SelectBands(idx, 900, 50)

	fmt.Println(within, nearest)

	// Output:
	// [1 2] [4]
}
