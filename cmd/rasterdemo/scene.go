package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kgfx/raster"
	"github.com/kgfx/raster/imgfmt"
)

// sceneFile is a static scene description:
//
//	width: 256
//	height: 256
//	background: "#141e32"
//	checker: {size: 64, cell: 8}
//	triangles:
//	  - mode: solid
//	    color: "#c83232"
//	    vertices:
//	      - {x: 30, y: 30}
//	      - {x: 220, y: 60}
//	      - {x: 90, y: 200}
//	  - mode: vertex
//	    vertices:
//	      - {x: 10, y: 250, color: [1, 0, 0]}
//	      - {x: 250, y: 250, color: [0, 1, 0]}
//	      - {x: 130, y: 120, color: [0, 0, 1]}
type sceneFile struct {
	Width      int             `yaml:"width"`
	Height     int             `yaml:"height"`
	Background string          `yaml:"background"`
	Checker    *checkerSpec    `yaml:"checker"`
	Triangles  []sceneTriangle `yaml:"triangles"`
}

type checkerSpec struct {
	Size int `yaml:"size"`
	Cell int `yaml:"cell"`
}

type sceneTriangle struct {
	Mode     string        `yaml:"mode"` // solid, vertex or textured
	Color    string        `yaml:"color"`
	Vertices []sceneVertex `yaml:"vertices"`
}

type sceneVertex struct {
	X     float64   `yaml:"x"`
	Y     float64   `yaml:"y"`
	U     float64   `yaml:"u"`
	V     float64   `yaml:"v"`
	Color []float64 `yaml:"color"`
}

func (sv sceneVertex) vertex() raster.Vertex {
	v := raster.NewVertex(raster.V3(sv.X, sv.Y, 0))
	v.UV = raster.V2(sv.U, sv.V)
	for i := 0; i < len(sv.Color) && i < 3; i++ {
		v.Color[i] = sv.Color[i]
	}
	return v
}

// runScene renders a YAML scene file to a single image next to the other
// demo output, named after the scene file.
func runScene(path string, cfg config) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sc sceneFile
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}
	if sc.Width <= 0 {
		sc.Width = cfg.Width
	}
	if sc.Height <= 0 {
		sc.Height = cfg.Height
	}

	surface := raster.NewSurface(sc.Width, sc.Height)
	if sc.Background != "" {
		surface.Clear(raster.Hex(sc.Background))
	} else {
		surface.Clear(raster.Black)
	}

	tex := checkerTexture(64, 64, 8)
	if sc.Checker != nil && sc.Checker.Size > 0 && sc.Checker.Cell > 0 {
		tex = checkerTexture(sc.Checker.Size, sc.Checker.Size, sc.Checker.Cell)
	}

	for i, tri := range sc.Triangles {
		if len(tri.Vertices) != 3 {
			return fmt.Errorf("triangle %d: want 3 vertices, got %d", i, len(tri.Vertices))
		}
		v0 := tri.Vertices[0].vertex()
		v1 := tri.Vertices[1].vertex()
		v2 := tri.Vertices[2].vertex()

		switch tri.Mode {
		case "", "solid":
			raster.FillTriangle(surface, v0, v1, v2, raster.Hex(tri.Color))
		case "vertex":
			raster.FillTriangleVertexColor(surface, v0, v1, v2)
		case "textured":
			raster.FillTriangleTextured(surface, v0, v1, v2, tex)
		default:
			return fmt.Errorf("triangle %d: unknown mode %q", i, tri.Mode)
		}
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(cfg.OutDir, base+"."+cfg.Format)

	switch cfg.Format {
	case "bmp":
		err = imgfmt.WriteBMP(out, surface.Pixels(), sc.Width, sc.Height)
	case "ppm":
		err = imgfmt.WritePPM(out, surface.Pixels(), sc.Width, sc.Height)
	default:
		return fmt.Errorf("unknown format %q (want ppm or bmp)", cfg.Format)
	}
	if err != nil {
		return err
	}

	log.Printf("Rendered %s (%dx%d, %d triangles) to %s",
		path, sc.Width, sc.Height, len(sc.Triangles), out)
	return nil
}
