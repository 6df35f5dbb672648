// Package cube defines the hyperspectral data cube contracts consumed by
// the composite pipeline: per-band metadata, random-access pixel reads, an
// in-memory cube implementation, and the wavelength index used for band
// selection.
//
// A cube is a stack of spatial rasters ("bands"), each tagged with a center
// wavelength. Metadata is frequently incomplete in real-world cubes, so
// every metadata field is modeled as an explicit optional value with a
// documented fallback: a band without a usable wavelength is assigned its
// ordinal position and flagged, and processing continues.
//
// # Usage
//
//	c := cube.NewMemCube(rows, cols)
//	_ = c.AddBand(cube.BandMeta{Wavelength: 550, HasWavelength: true, Valid: true, Unit: cube.UnitNanometer}, plane)
//
//	idx := cube.BuildIndex(c)
//	if fb := idx.Fallbacks(); len(fb) > 0 {
//	    // surface the advisory: these bands had no wavelength metadata
//	}
package cube
