// Package loop implements a fixed-timestep update loop with render
// interpolation. Simulation updates run at a fixed rate regardless of how
// fast frames are produced; each tick renders once with an interpolation
// factor describing how far into the next update the frame falls.
package loop

import (
	"time"

	"github.com/kgfx/raster"
)

// Config controls the fixed-timestep loop.
type Config struct {
	// FixedHz is the update rate in updates per second.
	FixedHz int

	// FixedDt is the duration of one simulation step (1/FixedHz).
	FixedDt time.Duration

	// MaxFrameDt caps how much real time a single tick may consume.
	// Longer frames (debugger pauses, suspends) are clamped so the
	// simulation does not try to catch up on the whole gap at once.
	MaxFrameDt time.Duration

	// MaxUpdates caps the number of updates per tick. When the cap is hit
	// the remaining accumulated time is dropped to avoid the
	// spiral-of-death where updates take longer than they simulate.
	MaxUpdates int
}

// ConfigFromHz builds a config for the given update rate with default
// limits (250ms max frame time, 10 updates per tick). A rate of zero or
// less falls back to 60Hz.
func ConfigFromHz(hz int) Config {
	if hz <= 0 {
		hz = 60
	}
	return Config{
		FixedHz:    hz,
		FixedDt:    time.Second / time.Duration(hz),
		MaxFrameDt: 250 * time.Millisecond,
		MaxUpdates: 10,
	}
}

// WithLimits returns a copy of the config with the given limits.
func (c Config) WithLimits(maxFrameDt time.Duration, maxUpdates int) Config {
	c.MaxFrameDt = maxFrameDt
	c.MaxUpdates = maxUpdates
	return c
}

// App receives fixed-rate updates and per-frame renders from a Loop.
type App interface {
	// Update advances the simulation by the fixed timestep dt.
	Update(dt time.Duration)

	// Render draws the current state. alpha in [0, 1) tells how far the
	// accumulated time has progressed into the next update, for
	// interpolating between the previous and current simulation states.
	Render(alpha float64)
}

// TickResult reports what a single Tick performed.
type TickResult struct {
	Updates int
	Alpha   float64
}

// Loop drives an App with a fixed timestep using the accumulator pattern.
type Loop struct {
	clock       Clock
	cfg         Config
	last        time.Time
	accumulator time.Duration
	frameIndex  uint64
}

// New creates a loop reading time from clock.
func New(clock Clock, cfg Config) *Loop {
	return &Loop{
		clock: clock,
		cfg:   cfg,
		last:  clock.Now(),
	}
}

// Tick advances one real-time frame: it runs as many fixed updates as the
// accumulated time allows (bounded by MaxUpdates), then renders exactly
// once with the interpolation alpha.
func (l *Loop) Tick(app App) TickResult {
	now := l.clock.Now()
	frameDt := now.Sub(l.last)
	l.last = now
	if frameDt < 0 {
		frameDt = 0
	}
	if frameDt > l.cfg.MaxFrameDt {
		frameDt = l.cfg.MaxFrameDt
	}
	l.accumulator += frameDt

	updates := 0
	if l.cfg.FixedDt > 0 {
		for l.accumulator >= l.cfg.FixedDt && updates < l.cfg.MaxUpdates {
			app.Update(l.cfg.FixedDt)
			l.accumulator -= l.cfg.FixedDt
			updates++
		}
		if updates >= l.cfg.MaxUpdates {
			// Drop leftover time instead of falling further behind.
			l.accumulator = 0
		}
	}

	alpha := 0.0
	if l.cfg.FixedDt > 0 {
		alpha = l.accumulator.Seconds() / l.cfg.FixedDt.Seconds()
		if alpha < 0 {
			alpha = 0
		}
		if alpha >= 1 {
			alpha = 0.999999
		}
	}

	app.Render(alpha)
	l.frameIndex++

	raster.Logger().Debug("tick",
		"frame", l.frameIndex, "updates", updates, "alpha", alpha)

	return TickResult{Updates: updates, Alpha: alpha}
}

// RunSteps applies exactly n fixed updates without rendering, for headless
// stepping.
func (l *Loop) RunSteps(app App, n int) {
	for i := 0; i < n; i++ {
		app.Update(l.cfg.FixedDt)
		l.frameIndex++
	}
}

// FrameIndex returns the number of frames produced so far.
func (l *Loop) FrameIndex() uint64 {
	return l.frameIndex
}
