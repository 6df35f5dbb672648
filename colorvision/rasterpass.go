package colorvision

import "github.com/cwbudde/algo-hyper/raster"

// SimulateRasters applies the deficiency transform in place across three
// channel rasters, pixel by pixel at identical spatial indices. The three
// rasters must share dimensions. None is a no-op.
func SimulateRasters(red, green, blue *raster.Raster, d Deficiency) error {
	if !raster.SameShape(red, green) || !raster.SameShape(red, blue) {
		return raster.ErrShapeMismatch
	}
	if d == None {
		return nil
	}

	m := MatrixFor(d)

	for row := 0; row < red.Rows(); row++ {
		rr := red.Row(row)
		gr := green.Row(row)
		br := blue.Row(row)

		for col := range rr {
			rr[col], gr[col], br[col] = m.Apply(rr[col], gr[col], br[col])
		}
	}

	return nil
}
