// Package bsq reads and writes a band-sequential container for
// hyperspectral cubes: a JSON header describing the spatial extent and the
// per-band wavelength/FWHM/validity/unit metadata, followed by one
// zstd-compressed row-major float64 plane per band.
//
// Optional metadata fields are encoded as absent JSON keys and decode to
// the corresponding unset optional in [cube.BandMeta], preserving the
// distinction between "wavelength 0" and "no wavelength recorded".
package bsq

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/cwbudde/algo-hyper/cube"
)

// File format constants.
const (
	formatVersion = 1
	maxHeaderSize = 1 << 24 // 16 MiB of JSON metadata is already absurd
)

var magic = [4]byte{'H', 'B', 'S', 'Q'}

// Errors returned by the reader.
var (
	ErrBadMagic           = errors.New("bsq: not a bsq cube file")
	ErrUnsupportedVersion = errors.New("bsq: unsupported format version")
	ErrCorrupt            = errors.New("bsq: corrupt cube file")
)

type fileHeader struct {
	Version int        `json:"version"`
	Rows    int        `json:"rows"`
	Cols    int        `json:"cols"`
	Bands   []bandMeta `json:"bands"`
}

type bandMeta struct {
	Wavelength *float64 `json:"wavelength,omitempty"`
	FWHM       *float64 `json:"fwhm,omitempty"`
	Valid      bool     `json:"valid"`
	Unit       string   `json:"unit,omitempty"`
}

func toBandMeta(m cube.BandMeta) bandMeta {
	out := bandMeta{Valid: m.Valid, Unit: m.Unit.String()}
	if m.HasWavelength {
		wl := m.Wavelength
		out.Wavelength = &wl
	}
	if m.HasFWHM {
		fwhm := m.FWHM
		out.FWHM = &fwhm
	}
	return out
}

func fromBandMeta(m bandMeta) cube.BandMeta {
	out := cube.BandMeta{Valid: m.Valid}
	if m.Unit != "" && m.Unit != "nm" {
		out.Unit = cube.UnitOther
	}
	if m.Wavelength != nil {
		out.Wavelength = *m.Wavelength
		out.HasWavelength = true
	}
	if m.FWHM != nil {
		out.FWHM = *m.FWHM
		out.HasFWHM = true
	}
	return out
}

// Write encodes the cube: magic, header length, JSON header, then one
// length-prefixed zstd frame per band plane.
func Write(w io.Writer, c cube.Cube) error {
	hdr := fileHeader{
		Version: formatVersion,
		Rows:    c.Rows(),
		Cols:    c.Cols(),
	}
	for i := 0; i < c.BandCount(); i++ {
		hdr.Bands = append(hdr.Bands, toBandMeta(c.Meta(i)))
	}

	hdrJSON, err := json.Marshal(hdr)
	if err != nil {
		return fmt.Errorf("bsq: header encode: %w", err)
	}

	if _, err := w.Write(magic[:]); err != nil {
		return fmt.Errorf("bsq: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(hdrJSON))); err != nil {
		return fmt.Errorf("bsq: %w", err)
	}
	if _, err := w.Write(hdrJSON); err != nil {
		return fmt.Errorf("bsq: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("bsq: %w", err)
	}
	defer enc.Close()

	raw := make([]byte, hdr.Rows*hdr.Cols*8)

	for band := 0; band < c.BandCount(); band++ {
		off := 0
		for row := 0; row < hdr.Rows; row++ {
			for col := 0; col < hdr.Cols; col++ {
				binary.LittleEndian.PutUint64(raw[off:], math.Float64bits(c.Read(band, row, col)))
				off += 8
			}
		}

		frame := enc.EncodeAll(raw, nil)
		if err := binary.Write(w, binary.LittleEndian, uint32(len(frame))); err != nil {
			return fmt.Errorf("bsq: %w", err)
		}
		if _, err := w.Write(frame); err != nil {
			return fmt.Errorf("bsq: %w", err)
		}
	}

	return nil
}

// WriteFile writes the cube to path, truncating any existing file.
func WriteFile(path string, c cube.Cube) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bsq: %w", err)
	}

	if err := Write(f, c); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("bsq: %w", err)
	}
	return nil
}

// Read decodes a cube written by Write into memory.
func Read(r io.Reader) (*cube.MemCube, error) {
	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, fmt.Errorf("bsq: %w", err)
	}
	if gotMagic != magic {
		return nil, ErrBadMagic
	}

	var hdrLen uint32
	if err := binary.Read(r, binary.LittleEndian, &hdrLen); err != nil {
		return nil, fmt.Errorf("bsq: %w", err)
	}
	if hdrLen > maxHeaderSize {
		return nil, ErrCorrupt
	}

	hdrJSON := make([]byte, hdrLen)
	if _, err := io.ReadFull(r, hdrJSON); err != nil {
		return nil, fmt.Errorf("bsq: %w", err)
	}

	var hdr fileHeader
	if err := json.Unmarshal(hdrJSON, &hdr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if hdr.Version != formatVersion {
		return nil, ErrUnsupportedVersion
	}
	if hdr.Rows < 0 || hdr.Cols < 0 {
		return nil, ErrCorrupt
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("bsq: %w", err)
	}
	defer dec.Close()

	c := cube.NewMemCube(hdr.Rows, hdr.Cols)
	planeBytes := hdr.Rows * hdr.Cols * 8

	for _, bm := range hdr.Bands {
		var frameLen uint32
		if err := binary.Read(r, binary.LittleEndian, &frameLen); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}

		frame := make([]byte, frameLen)
		if _, err := io.ReadFull(r, frame); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}

		raw, err := dec.DecodeAll(frame, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if len(raw) != planeBytes {
			return nil, ErrCorrupt
		}

		plane := make([]float64, hdr.Rows*hdr.Cols)
		for i := range plane {
			plane[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
		}

		if err := c.AddBand(fromBandMeta(bm), plane); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ReadFile reads a cube file from disk.
func ReadFile(path string) (*cube.MemCube, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bsq: %w", err)
	}
	defer f.Close()

	return Read(f)
}
