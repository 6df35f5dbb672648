package composite

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-hyper/cube"
)

// ErrNoBands is returned when the cube has no spectral bands at all. It is
// fatal: nothing can be selected.
var ErrNoBands = errors.New("composite: cube has no bands")

// SelectBands returns the indices of the bands contributing to a channel,
// in ascending band order: every band whose wavelength lies within
// window/2 of target. When the window captures no band, the single band
// with the smallest wavelength distance is returned instead, ties broken
// by the lowest band index. The result is therefore never empty for a
// non-empty cube, even for targets far outside the cube's spectral range.
//
// Wavelengths are not assumed sorted or unique; every band is examined.
func SelectBands(idx *cube.WavelengthIndex, target, window float64) ([]int, error) {
	n := idx.Len()
	if n == 0 {
		return nil, ErrNoBands
	}

	radius := window / 2

	var selected []int
	nearest := 0
	nearestDist := math.Inf(1)

	for i := 0; i < n; i++ {
		b, err := idx.Lookup(i)
		if err != nil {
			return nil, err
		}

		dist := math.Abs(b.Wavelength - target)
		if dist <= radius {
			selected = append(selected, i)
		}

		// Strict < keeps the lowest index on distance ties.
		if dist < nearestDist {
			nearest = i
			nearestDist = dist
		}
	}

	if len(selected) == 0 {
		return []int{nearest}, nil
	}

	return selected, nil
}
