package raster

import "testing"

// 2x2 test texture: TL=red, TR=green, BL=blue, BR=white.
func testTexture() *Texture {
	return NewTexture([]PackedColor{
		Red.Pack(), Green.Pack(),
		Blue.Pack(), White.Pack(),
	}, 2, 2)
}

// TestSampleNearestCorners verifies corner lookups and UV clamping.
func TestSampleNearestCorners(t *testing.T) {
	tex := testTexture()

	tests := []struct {
		uv   Vec2
		want Color
	}{
		{V2(0, 0), Red},
		{V2(1, 0), Green},
		{V2(0, 1), Blue},
		{V2(1, 1), White},
		// Outside [0,1] clamps to the nearest corner.
		{V2(-1, -1), Red},
		{V2(2, -1), Green},
		{V2(2, 2), White},
	}
	for _, tt := range tests {
		if got := tex.SampleNearest(tt.uv); got != tt.want {
			t.Errorf("SampleNearest(%v) = %v, want %v", tt.uv, got, tt.want)
		}
	}
}

// TestSampleNearestRounding verifies round-to-nearest texel selection:
// a UV just past the midpoint lands on the next texel.
func TestSampleNearestRounding(t *testing.T) {
	tex := testTexture()

	if got := tex.SampleNearest(V2(0.4, 0)); got != Red {
		t.Errorf("u=0.4 sampled %v, want %v", got, Red)
	}
	if got := tex.SampleNearest(V2(0.6, 0)); got != Green {
		t.Errorf("u=0.6 sampled %v, want %v", got, Green)
	}
}

// TestTexelClamps verifies exact-texel fetches clamp to the bounds.
func TestTexelClamps(t *testing.T) {
	tex := testTexture()

	if got := tex.Texel(0, 0); got != Red {
		t.Errorf("Texel(0,0) = %v, want %v", got, Red)
	}
	if got := tex.Texel(5, 5); got != White {
		t.Errorf("Texel(5,5) = %v, want %v (clamped)", got, White)
	}
	if got := tex.Texel(-3, 1); got != Blue {
		t.Errorf("Texel(-3,1) = %v, want %v (clamped)", got, Blue)
	}
}

// TestNewTexturePanicsOnContractViolation verifies fail-fast behavior for
// invalid construction: zero dimensions or a mismatched pixel count.
func TestNewTexturePanicsOnContractViolation(t *testing.T) {
	tests := []struct {
		name   string
		pixels []PackedColor
		w, h   int
	}{
		{"zero width", nil, 0, 1},
		{"zero height", nil, 1, 0},
		{"negative width", nil, -1, 1},
		{"short pixels", make([]PackedColor, 3), 2, 2},
		{"long pixels", make([]PackedColor, 5), 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewTexture(%d pixels, %d, %d) did not panic", len(tt.pixels), tt.w, tt.h)
				}
			}()
			NewTexture(tt.pixels, tt.w, tt.h)
		})
	}
}
