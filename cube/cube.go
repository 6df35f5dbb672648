package cube

import "errors"

// Errors returned by cube accessors.
var (
	ErrBandOutOfRange = errors.New("cube: band index out of range")
	ErrPlaneSize      = errors.New("cube: plane length does not match spatial extent")
)

// Unit describes the unit of a band's wavelength metadata.
type Unit int

// Known wavelength units. Anything that is not nanometers is carried as
// UnitOther and treated as opaque.
const (
	UnitNanometer Unit = iota
	UnitOther
)

// String returns the lowercase unit name.
func (u Unit) String() string {
	if u == UnitNanometer {
		return "nm"
	}
	return "other"
}

// BandMeta carries the per-band metadata fields of a cube. Wavelength and
// FWHM are optional; the Has* flags record whether the source actually
// provided them.
type BandMeta struct {
	Wavelength    float64
	HasWavelength bool
	FWHM          float64
	HasFWHM       bool
	Valid         bool
	Unit          Unit
}

// MetadataProvider exposes the band dimension of a cube.
type MetadataProvider interface {
	// BandCount returns the number of spectral bands.
	BandCount() int
	// Meta returns the metadata of band i. Fields the source did not
	// provide have their Has* flag unset.
	Meta(i int) BandMeta
}

// PixelProvider exposes random access to the raw cube values. Read must be
// safe for concurrent callers; the composite pipeline issues reads from
// multiple goroutines.
type PixelProvider interface {
	// Rows returns the spatial row count.
	Rows() int
	// Cols returns the spatial column count.
	Cols() int
	// Read returns the raw value of band at (row, col).
	Read(band, row, col int) float64
}

// Cube combines the metadata and pixel contracts of a hyperspectral cube.
type Cube interface {
	MetadataProvider
	PixelProvider
}

// MemCube is a fully materialized in-memory cube. Bands are stored as
// row-major float64 planes. The zero value is unusable; use NewMemCube.
type MemCube struct {
	rows, cols int
	meta       []BandMeta
	planes     [][]float64
}

// NewMemCube creates an empty cube with the given spatial extent.
func NewMemCube(rows, cols int) *MemCube {
	return &MemCube{rows: rows, cols: cols}
}

// AddBand appends a band with its metadata and row-major plane data.
// The plane is stored by reference, not copied.
func (c *MemCube) AddBand(meta BandMeta, plane []float64) error {
	if len(plane) != c.rows*c.cols {
		return ErrPlaneSize
	}
	c.meta = append(c.meta, meta)
	c.planes = append(c.planes, plane)
	return nil
}

// BandCount returns the number of bands added so far.
func (c *MemCube) BandCount() int { return len(c.planes) }

// Meta returns the metadata of band i. Panics if i is out of range.
func (c *MemCube) Meta(i int) BandMeta { return c.meta[i] }

// Rows returns the spatial row count.
func (c *MemCube) Rows() int { return c.rows }

// Cols returns the spatial column count.
func (c *MemCube) Cols() int { return c.cols }

// Read returns the value of band at (row, col). Panics if any index is out
// of range.
func (c *MemCube) Read(band, row, col int) float64 {
	return c.planes[band][row*c.cols+col]
}

// Plane returns the backing row-major plane of band i. The slice is shared
// with the cube; callers must not resize it.
func (c *MemCube) Plane(i int) []float64 { return c.planes[i] }
