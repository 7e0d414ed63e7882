// Package raster provides a CPU-side 2D triangle rasterizer for Go.
//
// # Overview
//
// raster fills a pixel Surface from geometric primitives. Triangles can be
// drawn with a solid color, with per-vertex colors interpolated across the
// face, or with a nearest-neighbor sampled Texture. Scan conversion uses
// edge functions with the top-left fill rule, so adjacent triangles sharing
// an edge neither overlap nor leave gaps.
//
// # Quick Start
//
//	import "github.com/kgfx/raster"
//
//	dst := raster.NewSurface(256, 256)
//	dst.Clear(raster.RGB(20, 30, 50))
//
//	v0 := raster.NewVertex(raster.V3(30, 30, 0))
//	v1 := raster.NewVertex(raster.V3(220, 60, 0))
//	v2 := raster.NewVertex(raster.V3(90, 200, 0))
//	raster.FillTriangle(dst, v0, v1, v2, raster.RGB(200, 50, 50))
//
//	// Save to PNG
//	dst.SavePNG("triangle.png")
//
// # Pixel Format
//
// All pixel data shares one packing convention: RGBA8 packed into a 32-bit
// word with little-endian byte layout [r, g, b, a]. Surfaces, textures and
// the imgfmt encoders interoperate without conversion.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixels are sampled at their centers (x+0.5, y+0.5)
//
// Texture UV coordinates share the same convention: (0,0) is the top-left
// texel and V grows downward, so no flip is needed between the two.
//
// # Subpackages
//
//   - imgfmt: PPM and BMP encoders for packed pixel buffers
//   - loop: fixed-timestep update/render loop
//   - term: terminal presenter built on tcell
//
// # Concurrency
//
// Draw calls are synchronous, stateless and deterministic. A Surface must
// only be mutated by one goroutine at a time; Textures are read-only during
// draws and safe for concurrent reads.
package raster
