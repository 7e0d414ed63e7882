package loop

import (
	"testing"
	"time"
)

// counterApp records the update/render calls it receives.
type counterApp struct {
	updates   int
	renders   int
	lastAlpha float64
	totalDt   time.Duration
}

func (a *counterApp) Update(dt time.Duration) {
	a.updates++
	a.totalDt += dt
}

func (a *counterApp) Render(alpha float64) {
	a.renders++
	a.lastAlpha = alpha
}

// TestOneSecondProducesSixtyUpdates advances a 60Hz loop by one second in a
// single tick with generous limits.
func TestOneSecondProducesSixtyUpdates(t *testing.T) {
	clock := NewFakeClock()
	l := New(clock, ConfigFromHz(60).WithLimits(5*time.Second, 1000))
	app := &counterApp{}

	clock.Advance(time.Second)
	res := l.Tick(app)

	// Duration rounds 1/60s to integer nanoseconds, so exactly one second
	// may fit only 59 full steps.
	if app.updates < 59 || app.updates > 60 {
		t.Errorf("updates = %d, want 59..60", app.updates)
	}
	if res.Updates != app.updates {
		t.Errorf("TickResult.Updates = %d, want %d", res.Updates, app.updates)
	}
	if res.Alpha < 0 || res.Alpha >= 1 {
		t.Errorf("alpha = %v, want [0,1)", res.Alpha)
	}
	if app.renders != 1 {
		t.Errorf("renders = %d, want 1", app.renders)
	}
}

// TestFrameTimeAndUpdateLimits verifies MaxFrameDt clamping and the update
// cap with accumulator drop.
func TestFrameTimeAndUpdateLimits(t *testing.T) {
	clock := NewFakeClock()
	l := New(clock, ConfigFromHz(60).WithLimits(50*time.Millisecond, 3))
	app := &counterApp{}

	// A huge frame jump is clamped to 50ms and at most 3 updates run.
	clock.Advance(10 * time.Second)
	res := l.Tick(app)
	if res.Updates > 3 {
		t.Errorf("updates = %d, want <= 3", res.Updates)
	}
	if res.Alpha < 0 || res.Alpha >= 1 {
		t.Errorf("alpha = %v, want [0,1)", res.Alpha)
	}
	if app.renders != 1 {
		t.Errorf("renders = %d, want 1", app.renders)
	}

	// The leftover time was dropped: with no time advanced the next tick
	// performs no updates.
	res = l.Tick(app)
	if res.Updates != 0 {
		t.Errorf("updates after drop = %d, want 0", res.Updates)
	}
}

// TestTickAccumulatesAcrossFrames verifies that small frames accumulate
// until a full step fits.
func TestTickAccumulatesAcrossFrames(t *testing.T) {
	clock := NewFakeClock()
	l := New(clock, ConfigFromHz(10)) // 100ms steps
	app := &counterApp{}

	for i := 0; i < 4; i++ { // 4 * 30ms = 120ms
		clock.Advance(30 * time.Millisecond)
		l.Tick(app)
	}
	if app.updates != 1 {
		t.Errorf("updates = %d, want 1 after 120ms of 100ms steps", app.updates)
	}
	if app.renders != 4 {
		t.Errorf("renders = %d, want 4", app.renders)
	}
}

// TestRunStepsAdvancesExactUpdates verifies headless stepping.
func TestRunStepsAdvancesExactUpdates(t *testing.T) {
	l := New(NewFakeClock(), ConfigFromHz(120))
	app := &counterApp{}

	l.RunSteps(app, 5)

	if app.updates != 5 {
		t.Errorf("updates = %d, want 5", app.updates)
	}
	if app.renders != 0 {
		t.Errorf("renders = %d, want 0", app.renders)
	}
	if l.FrameIndex() != 5 {
		t.Errorf("frame index = %d, want 5", l.FrameIndex())
	}
}

// TestConfigFromHzDefaults verifies the zero-rate fallback.
func TestConfigFromHzDefaults(t *testing.T) {
	cfg := ConfigFromHz(0)
	if cfg.FixedHz != 60 {
		t.Errorf("FixedHz = %d, want 60", cfg.FixedHz)
	}
	if cfg.FixedDt != time.Second/60 {
		t.Errorf("FixedDt = %v, want %v", cfg.FixedDt, time.Second/60)
	}
	if cfg.MaxFrameDt != 250*time.Millisecond || cfg.MaxUpdates != 10 {
		t.Errorf("limits = (%v, %d), want (250ms, 10)", cfg.MaxFrameDt, cfg.MaxUpdates)
	}
}
