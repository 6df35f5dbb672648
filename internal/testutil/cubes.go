// Package testutil provides deterministic synthetic cubes and numeric
// comparison helpers shared by the package tests.
package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-hyper/cube"
)

// SyntheticCube builds an in-memory cube with one band per wavelength.
// Each pixel value is produced by fill(band, row, col), making the cube
// fully deterministic.
func SyntheticCube(rows, cols int, wavelengths []float64, fill func(band, row, col int) float64) *cube.MemCube {
	c := cube.NewMemCube(rows, cols)

	for b, wl := range wavelengths {
		plane := make([]float64, rows*cols)
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				plane[row*cols+col] = fill(b, row, col)
			}
		}

		meta := cube.BandMeta{
			Wavelength:    wl,
			HasWavelength: true,
			Valid:         true,
			Unit:          cube.UnitNanometer,
		}
		if err := c.AddBand(meta, plane); err != nil {
			panic(err)
		}
	}

	return c
}

// ConstantCube builds a cube where every pixel of band b holds values[b].
func ConstantCube(rows, cols int, wavelengths, values []float64) *cube.MemCube {
	return SyntheticCube(rows, cols, wavelengths, func(band, _, _ int) float64 {
		return values[band]
	})
}

// RampCube builds a cube where the value encodes its own coordinates:
// band*10000 + row*100 + col. Useful for checking that reads hit the right
// plane and pixel.
func RampCube(rows, cols int, wavelengths []float64) *cube.MemCube {
	return SyntheticCube(rows, cols, wavelengths, func(band, row, col int) float64 {
		return float64(band*10000 + row*100 + col)
	})
}

// NoiseCube builds a cube of reproducible pseudo-random values in [0, 1).
func NoiseCube(rows, cols int, wavelengths []float64, seed int64) *cube.MemCube {
	rng := rand.New(rand.NewSource(seed))
	return SyntheticCube(rows, cols, wavelengths, func(_, _, _ int) float64 {
		return rng.Float64()
	})
}

// BareCube builds a cube with nBands bands carrying no metadata at all,
// exercising the ordinal wavelength fallback.
func BareCube(rows, cols, nBands int) *cube.MemCube {
	c := cube.NewMemCube(rows, cols)
	for b := 0; b < nBands; b++ {
		plane := make([]float64, rows*cols)
		for i := range plane {
			plane[i] = float64(b)
		}
		if err := c.AddBand(cube.BandMeta{}, plane); err != nil {
			panic(err)
		}
	}
	return c
}
