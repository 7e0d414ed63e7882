package raster

// Vertex is one corner of a triangle: screen-space position in pixels,
// texture coordinate and a float color triple with channels in [0, 1].
// Vertices are value types created per draw call and never retained.
type Vertex struct {
	Pos   Vec3       // screen space (x, y in pixels), z reserved
	UV    Vec2       // texture coordinate, top-left origin
	Color [3]float64 // r, g, b
}

// NewVertex creates a white vertex with zero UV at the given position.
func NewVertex(pos Vec3) Vertex {
	return Vertex{
		Pos:   pos,
		Color: [3]float64{1, 1, 1},
	}
}
