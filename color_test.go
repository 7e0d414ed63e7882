package raster

import "testing"

// TestPackUnpackRoundtrip verifies the little-endian [r,g,b,a] packing.
func TestPackUnpackRoundtrip(t *testing.T) {
	c := RGBA(10, 20, 30, 40)
	p := c.Pack()

	// Byte layout: r in the low byte.
	if uint8(p) != 10 || uint8(p>>8) != 20 || uint8(p>>16) != 30 || uint8(p>>24) != 40 {
		t.Errorf("packed layout wrong: %#08x", uint32(p))
	}
	if got := Unpack(p); got != c {
		t.Errorf("Unpack(Pack(%v)) = %v", c, got)
	}
}

// TestRGBFClampAndRound verifies the float-to-8-bit conversion: clamp to
// [0,1], scale, round to nearest.
func TestRGBFClampAndRound(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{-0.5, 0},
		{1.5, 255},
		{0.5, 128},   // 127.5 rounds up
		{0.001, 0},   // 0.255 rounds down
		{0.998, 254}, // 254.49 rounds down
	}
	for _, tt := range tests {
		if got := RGBF(tt.in, tt.in, tt.in).R; got != tt.want {
			t.Errorf("RGBF(%v).R = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// TestHex covers the supported hex formats.
func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#f00", RGB(255, 0, 0)},
		{"0f08", RGBA(0, 255, 0, 136)},
		{"#102030", RGB(16, 32, 48)},
		{"10203040", RGBA(16, 32, 48, 64)},
		{"bogus", RGB(0, 0, 0)},
		{"", RGB(0, 0, 0)},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestLerp verifies endpoint and midpoint interpolation.
func TestLerp(t *testing.T) {
	a := RGBA(0, 0, 0, 0)
	b := RGBA(255, 255, 255, 255)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp t=0: got %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp t=1: got %v, want %v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if mid.R != 128 || mid.A != 128 {
		t.Errorf("Lerp t=0.5: got %v, want channels 128", mid)
	}
}
