package composite

import (
	"fmt"

	"github.com/cwbudde/algo-hyper/colorvision"
	"github.com/cwbudde/algo-hyper/cube"
	"github.com/cwbudde/algo-hyper/raster"
	"github.com/cwbudde/algo-hyper/stats"
)

// Selection records which bands were chosen for one channel, for reporting
// to the caller.
type Selection struct {
	Channel     Channel
	Target      float64   // requested wavelength, nm
	Window      float64   // selection window full width, nm
	Bands       []int     // contributing band indices, ascending
	Wavelengths []float64 // resolved wavelengths of those bands
}

// Result is a fully constructed composite: one raster per channel of the
// configured colorspace, plus the per-channel selections and any metadata
// fallback advisory. A Result is only ever returned complete.
type Result struct {
	Colorspace Colorspace
	Rasters    map[Channel]*raster.Raster
	Selections []Selection

	// MetadataFallback lists the bands whose wavelength metadata was
	// absent and replaced by the ordinal index. Non-empty results are an
	// advisory condition, not an error.
	MetadataFallback []int
}

// Composer builds composites from hyperspectral cubes according to a
// validated configuration. A Composer is stateless between invocations and
// safe for concurrent use.
type Composer struct {
	cfg Config
}

// NewComposer validates the options and returns a Composer. Configuration
// errors are reported here, before any cube is touched.
func NewComposer(opts ...Option) (*Composer, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Composer{cfg: cfg}, nil
}

// Config returns the composer's configuration.
func (c *Composer) Config() Config { return c.cfg }

// Compose builds one raster per output channel of the configured
// colorspace. For RGB output with a colorblind mode set, the deficiency
// transform is applied as a final pass over the three channel rasters;
// CMYK output bypasses the transform entirely.
//
// Compose either returns all requested channels or, on any error, none.
func (c *Composer) Compose(cb cube.Cube) (*Result, error) {
	idx := cube.BuildIndex(cb)

	res := &Result{
		Colorspace:       c.cfg.Colorspace,
		Rasters:          make(map[Channel]*raster.Raster),
		MetadataFallback: idx.Fallbacks(),
	}

	for _, spec := range c.cfg.Specs() {
		out, sel, err := c.composeChannel(cb, idx, spec)
		if err != nil {
			return nil, fmt.Errorf("composite: channel %s: %w", spec.Channel, err)
		}
		res.Rasters[spec.Channel] = out
		res.Selections = append(res.Selections, sel)
	}

	if c.cfg.Colorspace == RGB && c.cfg.Colorblind != colorvision.None {
		err := colorvision.SimulateRasters(
			res.Rasters[Red], res.Rasters[Green], res.Rasters[Blue], c.cfg.Colorblind)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

// composeChannel runs band selection once, then aggregates the selected
// bands per pixel into a fresh raster. Rows are processed in parallel;
// each worker chunk keeps its own sample buffer, so the aggregation
// kernels may reorder it freely.
func (c *Composer) composeChannel(cb cube.Cube, idx *cube.WavelengthIndex, spec ChannelSpec) (*raster.Raster, Selection, error) {
	bands, err := SelectBands(idx, spec.Target, spec.Window)
	if err != nil {
		return nil, Selection{}, err
	}
	if len(bands) == 0 {
		// SelectBands guarantees a non-empty result; failing loudly here
		// keeps a contract violation from producing a silent NaN raster.
		return nil, Selection{}, stats.ErrEmptySelection
	}

	kernel, err := stats.NewKernel(spec.Statistic)
	if err != nil {
		return nil, Selection{}, err
	}

	sel := Selection{
		Channel:     spec.Channel,
		Target:      spec.Target,
		Window:      spec.Window,
		Bands:       bands,
		Wavelengths: make([]float64, len(bands)),
	}
	for i, b := range bands {
		band, err := idx.Lookup(b)
		if err != nil {
			return nil, Selection{}, err
		}
		sel.Wavelengths[i] = band.Wavelength
	}

	rows, cols := cb.Rows(), cb.Cols()
	out := raster.New(rows, cols)

	parallelRows(rows, c.cfg.Workers, func(start, end int) {
		samples := make([]float64, len(bands))

		for row := start; row < end; row++ {
			dst := out.Row(row)
			for col := 0; col < cols; col++ {
				for i, b := range bands {
					samples[i] = cb.Read(b, row, col)
				}
				dst[col] = kernel(samples)
			}
		}
	})

	return out, sel, nil
}
