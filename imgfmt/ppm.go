// Package imgfmt encodes packed RGBA pixel buffers into simple image file
// formats: binary PPM (P6) and 24-bit BMP. The input convention matches the
// rest of the module: row-major, top-left origin, one little-endian
// [r, g, b, a] word per pixel. Both encoders drop the alpha channel.
package imgfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/kgfx/raster"
)

// Encoding errors.
var (
	// ErrShortBuffer is returned when the pixel buffer holds fewer than
	// width*height pixels.
	ErrShortBuffer = errors.New("imgfmt: pixel buffer smaller than width*height")

	// ErrInvalidSize is returned when the dimensions are negative or their
	// product overflows.
	ErrInvalidSize = errors.New("imgfmt: invalid image dimensions")
)

// pixelCount validates the buffer against the dimensions and returns the
// number of pixels to encode.
func pixelCount(pixels []raster.PackedColor, width, height int) (int, error) {
	if width < 0 || height < 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width != 0 && height > math.MaxInt/width {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrInvalidSize, width, height)
	}
	count := width * height
	if len(pixels) < count {
		return 0, fmt.Errorf("%w: have %d, want %d", ErrShortBuffer, len(pixels), count)
	}
	return count, nil
}

// EncodePPM writes the pixels as binary PPM (P6): the header
// "P6\n<width> <height>\n255\n" followed by width*height RGB byte triples,
// top row first. Alpha is ignored.
func EncodePPM(w io.Writer, pixels []raster.PackedColor, width, height int) error {
	if _, err := pixelCount(pixels, width, height); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("imgfmt: write PPM header: %w", err)
	}

	row := make([]byte, 3*width)
	for y := 0; y < height; y++ {
		base := y * width
		for x := 0; x < width; x++ {
			c := raster.Unpack(pixels[base+x])
			row[3*x+0] = c.R
			row[3*x+1] = c.G
			row[3*x+2] = c.B
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("imgfmt: write PPM row: %w", err)
		}
	}
	return nil
}

// WritePPM encodes the pixels as binary PPM into the file at path.
func WritePPM(path string, pixels []raster.PackedColor, width, height int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imgfmt: create file: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := EncodePPM(bw, pixels, width, height); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("imgfmt: flush: %w", err)
	}
	return f.Close()
}
