package raster

import (
	"fmt"
	"image"
	"io"

	"golang.org/x/image/tiff"
)

// EncodeTIFF writes the raster as a 16-bit grayscale TIFF. Values are
// expected in the [0, 255] range produced by Normalize and are mapped
// linearly onto the full 16-bit range; out-of-range values are clamped.
func EncodeTIFF(w io.Writer, r *Raster) error {
	if r.rows == 0 || r.cols == 0 {
		return ErrEmptyRaster
	}

	img := image.NewGray16(image.Rect(0, 0, r.cols, r.rows))

	for row := 0; row < r.rows; row++ {
		src := r.Row(row)
		for col, v := range src {
			g := uint16(clamp(v, 0, 255) / 255 * 65535)
			off := row*img.Stride + col*2
			img.Pix[off] = uint8(g >> 8)
			img.Pix[off+1] = uint8(g)
		}
	}

	opts := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(w, img, opts); err != nil {
		return fmt.Errorf("raster: tiff encode: %w", err)
	}

	return nil
}
