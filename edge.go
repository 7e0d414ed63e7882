package raster

import "math"

// areaEps is the threshold below which a triangle's signed double area is
// treated as zero and the triangle as degenerate.
const areaEps = 1e-9

// EdgeFunction computes the signed area contribution of point p relative to
// the directed edge a->b:
//
//	E(a,b,p) = (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
//
// For vertices supplied in a consistent winding order, E >= 0 places p on
// the inside of the edge. Evaluated at the third vertex it yields twice the
// triangle's signed area.
func EdgeFunction(a, b, p Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// SignedArea returns twice the signed area of the triangle (v0, v1, v2).
func SignedArea(v0, v1, v2 Vec2) float64 {
	return EdgeFunction(v0, v1, v2)
}

// isTopLeft classifies the directed edge a->b under the y-down screen
// convention. Top edges are horizontal with the triangle interior below
// (dy == 0, dx > 0); left edges run upward (dy < 0). The classification is
// per edge: winding order decides which of a triangle's edges are top or
// left for that particular draw.
func isTopLeft(a, b Vec2) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dy < 0 || (dy == 0 && dx > 0)
}

// clampedBounds computes the integer pixel bounding box
// [minX, maxX] x [minY, maxY] of the triangle, clamped to a width x height
// surface. Bounds use floor(min) and ceil(max)-1 because pixels are sampled
// at their centers (x+0.5, y+0.5). ok is false when the clamped box is
// empty, in which case the draw is a no-op.
func clampedBounds(v0, v1, v2 Vec2, width, height int) (minX, minY, maxX, maxY int, ok bool) {
	minX = int(math.Floor(min3(v0.X, v1.X, v2.X)))
	minY = int(math.Floor(min3(v0.Y, v1.Y, v2.Y)))
	maxX = int(math.Ceil(max3(v0.X, v1.X, v2.X))) - 1
	maxY = int(math.Ceil(max3(v0.Y, v1.Y, v2.Y))) - 1

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > width-1 {
		maxX = width - 1
	}
	if maxY > height-1 {
		maxY = height - 1
	}

	ok = minX <= maxX && minY <= maxY
	return minX, minY, maxX, maxY, ok
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
