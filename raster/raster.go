// Package raster provides the 2D floating-point output rasters produced by
// composite construction, the 0-255 normalization post-pass, and encoders
// for handing finished channels to external sinks.
package raster

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by raster operations.
var (
	ErrEmptyRaster   = errors.New("raster: zero spatial extent")
	ErrShapeMismatch = errors.New("raster: dimensions differ")
)

// Raster is a dense row-major 2D array of float64 values. It is written
// once during composite construction and read-only afterwards.
type Raster struct {
	rows, cols int
	pix        []float64
}

// New creates a zero-filled raster with the given spatial extent.
func New(rows, cols int) *Raster {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Raster{rows: rows, cols: cols, pix: make([]float64, rows*cols)}
}

// Rows returns the row count.
func (r *Raster) Rows() int { return r.rows }

// Cols returns the column count.
func (r *Raster) Cols() int { return r.cols }

// At returns the value at (row, col).
func (r *Raster) At(row, col int) float64 { return r.pix[row*r.cols+col] }

// Set stores v at (row, col).
func (r *Raster) Set(row, col int, v float64) { r.pix[row*r.cols+col] = v }

// Row returns the backing slice of one row. The slice aliases the raster;
// writes through it are visible immediately.
func (r *Raster) Row(row int) []float64 {
	return r.pix[row*r.cols : (row+1)*r.cols]
}

// MinMax returns the smallest and largest value of the raster.
func (r *Raster) MinMax() (min, max float64, err error) {
	if len(r.pix) == 0 {
		return 0, 0, ErrEmptyRaster
	}

	min, max = r.pix[0], r.pix[0]
	for _, v := range r.pix[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return min, max, nil
}

// SameShape reports whether a and b have identical dimensions.
func SameShape(a, b *Raster) bool {
	return a.rows == b.rows && a.cols == b.cols
}

// Normalize linearly rescales the raster in place so that its values span
// [0, 255]. A constant raster maps to all zeros. Non-finite values are left
// untouched by the scan and rescaled like any other value.
func Normalize(r *Raster) error {
	min, max, err := r.MinMax()
	if err != nil {
		return err
	}

	span := max - min
	if span == 0 {
		vecmath.ScaleBlockInPlace(r.pix, 0)
		return nil
	}

	for i := range r.pix {
		r.pix[i] -= min
	}
	vecmath.ScaleBlockInPlace(r.pix, 255/span)

	return nil
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	out := New(r.rows, r.cols)
	copy(out.pix, r.pix)
	return out
}

// MaxAbs returns the largest absolute value of the raster, 0 when empty.
func (r *Raster) MaxAbs() float64 {
	if len(r.pix) == 0 {
		return 0
	}
	return vecmath.MaxAbs(r.pix)
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	if math.IsNaN(v) {
		return lo
	}
	return v
}
