package raster

import "math"

// triangleSetup holds the per-draw state shared by all shading modes:
// oriented positions, the total signed area, the top-left classification of
// each edge and the clamped pixel bounding box.
type triangleSetup struct {
	p0, p1, p2    Vec2
	area          float64 // twice the triangle area, always positive here
	tl0, tl1, tl2 bool
	minX, minY    int
	maxX, maxY    int
}

// setupTriangle validates and orients a triangle for rasterization.
// Degenerate (near zero area) triangles and triangles whose clamped
// bounding box is empty report ok=false and must draw nothing. Triangles
// with negative winding are reoriented by swapping v1 and v2 so the inside
// test always sees a positive orientation; the returned vertices carry the
// swap so interpolated attributes stay attached to their positions.
func setupTriangle(dst *Surface, v0, v1, v2 Vertex) (s triangleSetup, a, b, c Vertex, ok bool) {
	a, b, c = v0, v1, v2

	area := SignedArea(a.Pos.XY(), b.Pos.XY(), c.Pos.XY())
	if math.Abs(area) <= areaEps {
		return s, a, b, c, false
	}
	if area < 0 {
		b, c = c, b
		area = -area
	}

	s.p0, s.p1, s.p2 = a.Pos.XY(), b.Pos.XY(), c.Pos.XY()
	s.area = area

	// Edge k is the edge opposite vertex k, matching the weight layout:
	// w0 comes from edge (p1,p2), w1 from (p2,p0), w2 from (p0,p1).
	s.tl0 = isTopLeft(s.p1, s.p2)
	s.tl1 = isTopLeft(s.p2, s.p0)
	s.tl2 = isTopLeft(s.p0, s.p1)

	s.minX, s.minY, s.maxX, s.maxY, ok = clampedBounds(s.p0, s.p1, s.p2, dst.Width(), dst.Height())
	return s, a, b, c, ok
}

// weights evaluates the three edge functions at the pixel center and applies
// the top-left fill rule: an edge value of exactly zero counts as inside
// only when that edge is a top or left edge. The raw weights sum to the
// triangle's double area at every point; divide by s.area to normalize.
func (s *triangleSetup) weights(px, py float64) (w0, w1, w2 float64, inside bool) {
	p := Vec2{X: px, Y: py}
	w0 = EdgeFunction(s.p1, s.p2, p)
	w1 = EdgeFunction(s.p2, s.p0, p)
	w2 = EdgeFunction(s.p0, s.p1, p)

	in0 := w0 > 0 || (s.tl0 && w0 == 0)
	in1 := w1 > 0 || (s.tl1 && w1 == 0)
	in2 := w2 > 0 || (s.tl2 && w2 == 0)
	return w0, w1, w2, in0 && in1 && in2
}

// FillTriangle rasterizes a solid-color triangle onto dst.
//
// Pixels are sampled at their centers inside the triangle's clamped
// bounding box; coverage uses edge functions with the top-left fill rule,
// so two triangles sharing an edge with matching winding cover every pixel
// along it exactly once. Degenerate triangles and triangles entirely
// outside the surface draw nothing. The write is an opaque overwrite: no
// blending, no depth test.
func FillTriangle(dst *Surface, v0, v1, v2 Vertex, c Color) {
	s, _, _, _, ok := setupTriangle(dst, v0, v1, v2)
	if !ok {
		return
	}

	for y := s.minY; y <= s.maxY; y++ {
		py := float64(y) + 0.5
		for x := s.minX; x <= s.maxX; x++ {
			if _, _, _, inside := s.weights(float64(x)+0.5, py); inside {
				dst.SetPixel(x, y, c)
			}
		}
	}
}

// FillTriangleVertexColor rasterizes a triangle with the vertex colors
// interpolated across the face. Each channel is interpolated independently
// using the normalized barycentric weights, clamped to [0, 1] and rounded
// to the nearest 8-bit value. The output is fully opaque.
func FillTriangleVertexColor(dst *Surface, v0, v1, v2 Vertex) {
	s, va, vb, vc, ok := setupTriangle(dst, v0, v1, v2)
	if !ok {
		return
	}
	inv := 1 / s.area

	for y := s.minY; y <= s.maxY; y++ {
		py := float64(y) + 0.5
		for x := s.minX; x <= s.maxX; x++ {
			w0, w1, w2, inside := s.weights(float64(x)+0.5, py)
			if !inside {
				continue
			}
			b0, b1, b2 := w0*inv, w1*inv, w2*inv
			r := b0*va.Color[0] + b1*vb.Color[0] + b2*vc.Color[0]
			g := b0*va.Color[1] + b1*vb.Color[1] + b2*vc.Color[1]
			b := b0*va.Color[2] + b1*vb.Color[2] + b2*vc.Color[2]
			dst.SetPixel(x, y, RGBF(r, g, b))
		}
	}
}

// FillTriangleTextured rasterizes a triangle sampling tex with
// nearest-neighbor filtering. The UV coordinate is interpolated with the
// same normalized barycentric weights as vertex colors and clamped to
// [0, 1] before the lookup. The texel's alpha is ignored; pixels are
// written fully opaque.
func FillTriangleTextured(dst *Surface, v0, v1, v2 Vertex, tex *Texture) {
	s, va, vb, vc, ok := setupTriangle(dst, v0, v1, v2)
	if !ok {
		return
	}
	inv := 1 / s.area

	for y := s.minY; y <= s.maxY; y++ {
		py := float64(y) + 0.5
		for x := s.minX; x <= s.maxX; x++ {
			w0, w1, w2, inside := s.weights(float64(x)+0.5, py)
			if !inside {
				continue
			}
			b0, b1, b2 := w0*inv, w1*inv, w2*inv
			u := b0*va.UV.X + b1*vb.UV.X + b2*vc.UV.X
			v := b0*va.UV.Y + b1*vb.UV.Y + b2*vc.UV.Y
			t := tex.SampleNearest(Vec2{X: u, Y: v})
			dst.SetPixel(x, y, RGB(t.R, t.G, t.B))
		}
	}
}
