package raster

import (
	"fmt"
	"math"
)

// Texture is a read-only packed-pixel sample source with nearest-neighbor
// lookup. Textures are immutable after construction and safe for concurrent
// reads; the rasterizer only borrows them for the duration of a draw call.
type Texture struct {
	width  int
	height int
	pixels []PackedColor // row-major, top-left origin
}

// NewTexture creates a texture over the given packed pixel buffer.
// It panics when the dimensions are not positive or the pixel count does
// not match width*height: both indicate a construction bug in the caller,
// not a recoverable condition.
func NewTexture(pixels []PackedColor, width, height int) *Texture {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("raster: texture dimensions must be positive, got %dx%d", width, height))
	}
	if len(pixels) != width*height {
		panic(fmt.Sprintf("raster: texture has %d pixels, want %d (%dx%d)",
			len(pixels), width*height, width, height))
	}
	return &Texture{width: width, height: height, pixels: pixels}
}

// Width returns the texture width in texels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in texels.
func (t *Texture) Height() int {
	return t.height
}

// Texel returns the texel at integer coordinates, clamped to the texture
// bounds.
func (t *Texture) Texel(x, y int) Color {
	if x < 0 {
		x = 0
	}
	if x > t.width-1 {
		x = t.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y > t.height-1 {
		y = t.height - 1
	}
	return Unpack(t.pixels[y*t.width+x])
}

// SampleNearest samples the texture at uv with nearest-neighbor filtering.
// Both coordinates are clamped to [0, 1]. The UV origin is the top-left
// texel and V grows downward. The texel index rounds to the nearest texel,
// floor(u*(width-1) + 0.5), so uv (0,0) hits the top-left texel and (1,1)
// the bottom-right one.
func (t *Texture) SampleNearest(uv Vec2) Color {
	u := clamp01(uv.X)
	v := clamp01(uv.Y)
	tx := int(math.Floor(u*float64(t.width-1) + 0.5))
	ty := int(math.Floor(v*float64(t.height-1) + 0.5))
	return Unpack(t.pixels[ty*t.width+tx])
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
