package raster

import "math"

// PackedColor is one pixel packed into a 32-bit word with little-endian
// byte layout [r, g, b, a]. This is the storage format shared by Surface,
// Texture and the imgfmt encoders.
type PackedColor uint32

// Color represents an RGBA color with 8 bits per channel.
// Alpha is straight (not premultiplied).
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a color from the four channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBF creates an opaque color from float components in [0, 1].
// Components are clamped before scaling and rounded to the nearest 8-bit
// value. This is the single conversion used whenever a float color becomes
// a packed pixel, so results stay consistent across shading modes.
func RGBF(r, g, b float64) Color {
	return Color{R: channel8(r), G: channel8(g), B: channel8(b), A: 255}
}

// Pack returns the color packed little-endian as [r, g, b, a].
func (c Color) Pack() PackedColor {
	return PackedColor(uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24)
}

// Unpack decodes a packed little-endian RGBA value.
func Unpack(p PackedColor) Color {
	return Color{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	}
}

// Lerp performs linear interpolation between two colors per channel.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: lerp8(c.R, other.R, t),
		G: lerp8(c.G, other.G, t),
		B: lerp8(c.B, other.B, t),
		A: lerp8(c.A, other.A, t),
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Invalid input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{A: 255}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// channel8 converts a float channel in [0, 1] to 8 bits: clamp, scale,
// round to nearest.
func channel8(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(math.Round(v * 255))
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = RGBA(0, 0, 0, 0)
)
