package imgfmt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kgfx/raster"
)

const (
	fileHeaderSize  = 14
	infoHeaderSize  = 40 // BITMAPINFOHEADER
	pixelDataOffset = fileHeaderSize + infoHeaderSize
)

// EncodeBMP writes the pixels as a 24-bit uncompressed BMP (BI_RGB).
// Pixels are stored BGR with rows zero-padded to 4-byte boundaries. The
// header carries a negative height so the rows are top-down, matching the
// row-major top-left input layout. Alpha is ignored.
func EncodeBMP(w io.Writer, pixels []raster.PackedColor, width, height int) error {
	if _, err := pixelCount(pixels, width, height); err != nil {
		return err
	}
	if width > 1<<30 || height > 1<<30 {
		return fmt.Errorf("%w: %dx%d too large for BMP", ErrInvalidSize, width, height)
	}

	rowBytes := 3 * width
	padding := (4 - rowBytes%4) % 4
	imageSize := uint32((rowBytes + padding) * height)
	fileSize := uint32(pixelDataOffset) + imageSize

	var header [pixelDataOffset]byte

	// BITMAPFILEHEADER
	header[0] = 'B'
	header[1] = 'M'
	binary.LittleEndian.PutUint32(header[2:], fileSize)
	// bytes 6..9 reserved, zero
	binary.LittleEndian.PutUint32(header[10:], pixelDataOffset)

	// BITMAPINFOHEADER
	binary.LittleEndian.PutUint32(header[14:], infoHeaderSize)
	binary.LittleEndian.PutUint32(header[18:], uint32(int32(width)))
	binary.LittleEndian.PutUint32(header[22:], uint32(int32(-height))) // negative => top-down
	binary.LittleEndian.PutUint16(header[26:], 1)                      // planes
	binary.LittleEndian.PutUint16(header[28:], 24)                     // bits per pixel
	binary.LittleEndian.PutUint32(header[30:], 0)                      // compression = BI_RGB
	binary.LittleEndian.PutUint32(header[34:], imageSize)
	// resolution and palette fields stay zero

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("imgfmt: write BMP header: %w", err)
	}

	row := make([]byte, rowBytes+padding)
	for y := 0; y < height; y++ {
		base := y * width
		for x := 0; x < width; x++ {
			c := raster.Unpack(pixels[base+x])
			row[3*x+0] = c.B
			row[3*x+1] = c.G
			row[3*x+2] = c.R
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("imgfmt: write BMP row: %w", err)
		}
	}
	return nil
}

// WriteBMP encodes the pixels as 24-bit BMP into the file at path.
func WriteBMP(path string, pixels []raster.PackedColor, width, height int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imgfmt: create file: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := EncodeBMP(bw, pixels, width, height); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("imgfmt: flush: %w", err)
	}
	return f.Close()
}
