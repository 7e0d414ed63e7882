package loop

import "time"

// Clock abstracts the time source driving a Loop, so loops can be tested
// deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system clock via time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a deterministic, manually advanceable clock for tests and
// headless runs. Not safe for concurrent use.
type FakeClock struct {
	now time.Time
}

// NewFakeClock creates a FakeClock anchored at an arbitrary fixed instant.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Unix(0, 0)}
}

// Now implements Clock.
func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
