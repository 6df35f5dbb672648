package colorvision

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-hyper/raster"
)

func fillRaster(r *raster.Raster, values []float64) {
	i := 0
	for row := 0; row < r.Rows(); row++ {
		for col := 0; col < r.Cols(); col++ {
			r.Set(row, col, values[i])
			i++
		}
	}
}

func TestSimulateRastersMatchesSimulate(t *testing.T) {
	red := raster.New(2, 2)
	green := raster.New(2, 2)
	blue := raster.New(2, 2)

	fillRaster(red, []float64{0.1, 0.2, 0.3, 0.4})
	fillRaster(green, []float64{0.5, 0.6, 0.7, 0.8})
	fillRaster(blue, []float64{0.9, 1.0, 1.1, 1.2})

	wantR := red.Clone()
	wantG := green.Clone()
	wantB := blue.Clone()

	if err := SimulateRasters(red, green, blue, Deuteranopia); err != nil {
		t.Fatalf("SimulateRasters: %v", err)
	}

	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			r, g, b := Simulate(wantR.At(row, col), wantG.At(row, col), wantB.At(row, col), Deuteranopia)
			if math.Abs(red.At(row, col)-r) > tolerance ||
				math.Abs(green.At(row, col)-g) > tolerance ||
				math.Abs(blue.At(row, col)-b) > tolerance {
				t.Fatalf("pixel (%d,%d) diverges from per-triplet Simulate", row, col)
			}
		}
	}
}

func TestSimulateRastersNoneNoOp(t *testing.T) {
	red := raster.New(1, 2)
	green := raster.New(1, 2)
	blue := raster.New(1, 2)

	fillRaster(red, []float64{1, 2})
	fillRaster(green, []float64{3, 4})
	fillRaster(blue, []float64{5, 6})

	if err := SimulateRasters(red, green, blue, None); err != nil {
		t.Fatalf("SimulateRasters: %v", err)
	}

	if red.At(0, 0) != 1 || green.At(0, 1) != 4 || blue.At(0, 0) != 5 {
		t.Fatal("None transform modified raster values")
	}
}

func TestSimulateRastersShapeMismatch(t *testing.T) {
	err := SimulateRasters(raster.New(2, 2), raster.New(2, 3), raster.New(2, 2), Protanopia)
	if !errors.Is(err, raster.ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}
