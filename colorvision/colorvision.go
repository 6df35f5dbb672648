// Package colorvision simulates color-vision deficiency on RGB channel
// triplets by applying fixed 3x3 transform matrices.
//
// The matrices are physiologically derived constants following the
// Viénot/Brettel/Mollon and Machado/Oliveira/Fernandes dichromacy models.
// They are plain data: no computation, calibration, or initialization order
// is involved. The transform is defined over the additive RGB model only;
// subtractive ink channels (CMYK) have no meaningful dichromacy mapping and
// must bypass this package.
//
// The transform is total: inputs outside any nominal reflectance range pass
// through unclamped, leaving range handling to downstream normalization.
package colorvision

import "errors"

// ErrUnknownDeficiency is returned for deficiency names outside the
// supported set.
var ErrUnknownDeficiency = errors.New("colorvision: unknown deficiency")

// Deficiency selects a color-vision deficiency to simulate.
type Deficiency int

// Supported deficiencies. None applies the identity transform.
const (
	None Deficiency = iota
	Protanopia   // red-blind
	Deuteranopia // green-blind
	Tritanopia   // blue-blind
)

var deficiencyNames = [...]string{"none", "protanopia", "deuteranopia", "tritanopia"}

// String returns the lowercase deficiency name.
func (d Deficiency) String() string {
	if d < None || d > Tritanopia {
		return "unknown"
	}
	return deficiencyNames[d]
}

// Deficiencies returns all supported deficiencies in declaration order.
func Deficiencies() []Deficiency {
	return []Deficiency{None, Protanopia, Deuteranopia, Tritanopia}
}

// ParseDeficiency maps a configuration name like "protanopia" to its
// Deficiency.
func ParseDeficiency(name string) (Deficiency, error) {
	for i, n := range deficiencyNames {
		if n == name {
			return Deficiency(i), nil
		}
	}
	return 0, ErrUnknownDeficiency
}

// Matrix is a 3x3 linear transform over an (R, G, B) column vector.
type Matrix [3][3]float64

// Apply multiplies the matrix with the triplet: out = M · [r g b]ᵗ.
func (m Matrix) Apply(r, g, b float64) (float64, float64, float64) {
	return m[0][0]*r + m[0][1]*g + m[0][2]*b,
		m[1][0]*r + m[1][1]*g + m[1][2]*b,
		m[2][0]*r + m[2][1]*g + m[2][2]*b
}

// The dichromacy simulation matrices, row order R, G, B.
var (
	identity = Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}

	protanopia = Matrix{
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	}

	deuteranopia = Matrix{
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	}

	tritanopia = Matrix{
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	}
)

// MatrixFor returns the simulation matrix of a deficiency. Unknown values
// map to the identity, matching the total-function contract of Simulate.
func MatrixFor(d Deficiency) Matrix {
	switch d {
	case Protanopia:
		return protanopia
	case Deuteranopia:
		return deuteranopia
	case Tritanopia:
		return tritanopia
	default:
		return identity
	}
}

// Simulate transforms one RGB triplet under the given deficiency. It is a
// pure function with no failure mode; None returns the inputs exactly.
func Simulate(r, g, b float64, d Deficiency) (float64, float64, float64) {
	if d == None {
		return r, g, b
	}
	return MatrixFor(d).Apply(r, g, b)
}
