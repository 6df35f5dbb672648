// Package composite builds RGB or CMYK visualization rasters from a
// hyperspectral cube.
//
// Each output channel is driven by a ChannelSpec: a target wavelength, a
// selection window, and an aggregation statistic. Band selection collects
// every band whose wavelength falls within window/2 of the target and falls
// back to the single nearest band when none do, so a channel always has at
// least one contributing band. The selected bands are collapsed to one
// value per pixel by the configured statistic.
//
// Channels are mutually independent and pixels within a channel are
// independent once the band selection is fixed, so construction is
// parallelized across pixel rows with a fixed-size worker fan-out. Results
// are identical to a single-threaded pass.
//
// # Usage
//
//	c, err := composite.NewComposer(
//	    composite.WithColorspace(composite.RGB),
//	    composite.WithStatistic(stats.Median),
//	    composite.WithWindow(20),
//	)
//	if err != nil { ... }
//	res, err := c.Compose(cb)
//	if err != nil { ... }
//	red := res.Rasters[composite.Red]
//
// A composite is all-or-nothing: any error aborts the invocation before a
// Result is returned, so callers never observe half-built channel sets.
package composite
