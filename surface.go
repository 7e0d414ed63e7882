package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// Surface is a rectangular buffer of packed pixels: row-major, top-left
// origin, x right-positive, y down-positive.
type Surface struct {
	width  int
	height int
	pixels []PackedColor
}

// NewSurface creates a surface with the given dimensions, cleared to
// transparent black.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Surface{
		width:  width,
		height: height,
		pixels: make([]PackedColor, width*height),
	}
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Pixels returns the raw packed pixel buffer. The slice aliases the
// surface's storage; treat it as read-only.
func (s *Surface) Pixels() []PackedColor {
	return s.pixels
}

// Clear fills the entire surface with a color.
func (s *Surface) Clear(c Color) {
	p := c.Pack()
	for i := range s.pixels {
		s.pixels[i] = p
	}
}

// SetPixel sets the color of a single pixel.
// Out-of-range coordinates are silently ignored.
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = c.Pack()
}

// GetPixel returns the color of a single pixel and whether the coordinates
// were in bounds.
func (s *Surface) GetPixel(x, y int) (Color, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Color{}, false
	}
	return Unpack(s.pixels[y*s.width+x]), true
}

// ToImage converts the surface to an image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for i, p := range s.pixels {
		c := Unpack(p)
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = c.A
	}
	return img
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.ToImage())
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	c, _ := s.GetPixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}
