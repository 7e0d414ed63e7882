package raster

import (
	"math"
	"testing"
)

// TestEdgeFunctionOrientation verifies the sign convention under the y-down
// screen coordinate system.
func TestEdgeFunctionOrientation(t *testing.T) {
	a := V2(0, 0)
	b := V2(1, 0)

	// A point below the edge (greater y) is on the positive side.
	if e := EdgeFunction(a, b, V2(0, 1)); e <= 0 {
		t.Errorf("point below edge: got %v, want > 0", e)
	}
	// A point above the edge (smaller y) is on the negative side.
	if e := EdgeFunction(a, b, V2(0, -1)); e >= 0 {
		t.Errorf("point above edge: got %v, want < 0", e)
	}
	// A point on the edge evaluates to exactly zero.
	if e := EdgeFunction(a, b, V2(0.5, 0)); e != 0 {
		t.Errorf("point on edge: got %v, want 0", e)
	}
}

// TestSignedAreaMatchesEdgeFunction checks that SignedArea is the edge
// function evaluated at the third vertex, and that collinear vertices give
// zero area.
func TestSignedAreaMatchesEdgeFunction(t *testing.T) {
	v0, v1, v2 := V2(10, 10), V2(20, 10), V2(10, 20)
	if got, want := SignedArea(v0, v1, v2), EdgeFunction(v0, v1, v2); got != want {
		t.Errorf("SignedArea = %v, want %v", got, want)
	}

	if got := SignedArea(v0, v1, V2(15, 10)); math.Abs(got) > areaEps {
		t.Errorf("collinear area = %v, want ~0", got)
	}
}

// TestTopLeftClassification verifies per-edge top/left classification under
// y-down coordinates.
func TestTopLeftClassification(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want bool
	}{
		{"horizontal right is a top edge", V2(0, 0), V2(10, 0), true},
		{"horizontal left is not", V2(10, 0), V2(0, 0), false},
		{"upward edge is a left edge", V2(0, 10), V2(0, 0), true},
		{"downward edge is not", V2(0, 0), V2(0, 10), false},
		{"diagonal up-right is a left edge", V2(0, 10), V2(5, 0), true},
		{"diagonal down-right is not", V2(0, 0), V2(5, 10), false},
	}
	for _, tt := range tests {
		if got := isTopLeft(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: isTopLeft(%v, %v) = %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}

// TestClampedBounds checks clamping against the surface and the empty-box
// report for fully off-surface triangles.
func TestClampedBounds(t *testing.T) {
	minX, minY, maxX, maxY, ok := clampedBounds(V2(-5.1, -1), V2(3.2, 4.7), V2(1000, 2.2), 10, 8)
	if !ok {
		t.Fatal("expected non-empty box")
	}
	if minX < 0 || minY < 0 || maxX > 9 || maxY > 7 || minX > maxX || minY > maxY {
		t.Errorf("box not clamped: (%d,%d)-(%d,%d)", minX, minY, maxX, maxY)
	}

	// Entirely left of the surface.
	if _, _, _, _, ok := clampedBounds(V2(-10, 2), V2(-5, 3), V2(-8, 7), 10, 8); ok {
		t.Error("off-surface triangle should produce an empty box")
	}
	// Entirely below the surface.
	if _, _, _, _, ok := clampedBounds(V2(1, 20), V2(5, 25), V2(3, 30), 10, 8); ok {
		t.Error("off-surface triangle should produce an empty box")
	}
	// Zero-size surface.
	if _, _, _, _, ok := clampedBounds(V2(0, 0), V2(5, 0), V2(0, 5), 0, 0); ok {
		t.Error("empty surface should produce an empty box")
	}
}
