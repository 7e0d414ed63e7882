// Package term presents raster surfaces in a terminal. Each surface pixel
// becomes one cell painted with a truecolor background, so the terminal
// acts as a low-resolution framebuffer.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kgfx/raster"
)

// Presenter owns a tcell screen and draws surfaces onto it. It is the
// terminal counterpart of writing frames to image files: the rasterizer
// stays unaware of where its pixels end up.
type Presenter struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// New creates a presenter on the real terminal, entering the alternate
// screen with the cursor hidden. Close restores the terminal.
func New() (*Presenter, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen wraps an existing screen, initializing it. Tests pass a
// tcell.SimulationScreen here.
func NewWithScreen(s tcell.Screen) (*Presenter, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()

	p := &Presenter{
		screen: s,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go p.pollEvents()

	w, h := s.Size()
	raster.Logger().Info("terminal presenter started", "cols", w, "rows", h)
	return p, nil
}

// pollEvents forwards screen events until the presenter closes.
// PollEvent returns nil once the screen is finalized.
func (p *Presenter) pollEvents() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.events <- ev:
		case <-p.quit:
			return
		}
	}
}

// Events delivers key and resize events from the terminal.
func (p *Presenter) Events() <-chan tcell.Event {
	return p.events
}

// Size returns the terminal size in cells.
func (p *Presenter) Size() (int, int) {
	return p.screen.Size()
}

// Present draws the surface onto the terminal, one pixel per cell, and
// flushes the screen. Surfaces larger than the terminal are cropped;
// smaller surfaces leave the remaining cells untouched.
func (p *Presenter) Present(s *raster.Surface) {
	cols, rows := p.screen.Size()
	w := s.Width()
	if w > cols {
		w = cols
	}
	h := s.Height()
	if h > rows {
		h = rows
	}
	if w < s.Width() || h < s.Height() {
		raster.Logger().Warn("terminal smaller than surface, cropping",
			"surface_w", s.Width(), "surface_h", s.Height(), "cols", cols, "rows", rows)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, _ := s.GetPixel(x, y)
			style := tcell.StyleDefault.Background(
				tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			p.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	p.screen.Show()
}

// Close stops event delivery and restores the terminal.
func (p *Presenter) Close() {
	close(p.quit)
	p.screen.Fini()
	raster.Logger().Info("terminal presenter closed")
}
