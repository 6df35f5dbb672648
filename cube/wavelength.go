package cube

// Band is one entry of a WavelengthIndex: the resolved wavelength of a
// spectral band after fallback rules have been applied.
type Band struct {
	Index      int
	Wavelength float64 // nm, or the ordinal index when Fallback is set
	FWHM       float64 // 0 when the source provided none
	Valid      bool
	Unit       Unit
	Fallback   bool // wavelength metadata was absent, ordinal index substituted
}

// WavelengthIndex maps band indices to resolved wavelengths. It is built
// once per cube and immutable afterwards; band selection consults it per
// output channel. Wavelengths are not assumed sorted or unique.
type WavelengthIndex struct {
	bands     []Band
	fallbacks []int
}

// BuildIndex resolves the wavelength of every band of the provider. Bands
// without usable wavelength metadata are assigned their ordinal index as a
// degraded but deterministic substitute; their indices are reported by
// Fallbacks so callers can surface the condition as an advisory. Missing
// metadata never aborts index construction.
func BuildIndex(meta MetadataProvider) *WavelengthIndex {
	n := meta.BandCount()
	idx := &WavelengthIndex{bands: make([]Band, n)}

	for i := 0; i < n; i++ {
		m := meta.Meta(i)
		b := Band{
			Index: i,
			Valid: m.Valid,
			Unit:  m.Unit,
		}

		if m.HasWavelength {
			b.Wavelength = m.Wavelength
		} else {
			b.Wavelength = float64(i)
			b.Fallback = true
			idx.fallbacks = append(idx.fallbacks, i)
		}

		if m.HasFWHM {
			b.FWHM = m.FWHM
		}

		idx.bands[i] = b
	}

	return idx
}

// Len returns the number of indexed bands.
func (x *WavelengthIndex) Len() int { return len(x.bands) }

// Lookup returns the band at index i.
func (x *WavelengthIndex) Lookup(i int) (Band, error) {
	if i < 0 || i >= len(x.bands) {
		return Band{}, ErrBandOutOfRange
	}
	return x.bands[i], nil
}

// Fallbacks returns the indices of bands whose wavelength metadata was
// absent and replaced by the ordinal index. An empty result means the
// metadata was complete.
func (x *WavelengthIndex) Fallbacks() []int {
	out := make([]int, len(x.fallbacks))
	copy(out, x.fallbacks)
	return out
}
