package engine

import "time"

// DefaultMaxCatchUp bounds how many ticks a single Advance call may request.
const DefaultMaxCatchUp = 5

// Clock is a fixed-timestep accumulator for drivers that run at a variable
// frame rate. Each frame the driver reports the elapsed wall time and runs
// Step as many times as Advance returns; the remainder carries over, so game
// speed does not depend on the display rate.
type Clock struct {
	step       time.Duration
	acc        time.Duration
	MaxCatchUp int
}

// NewClock returns a clock producing ticksPerSecond ticks per second.
// Non-positive rates fall back to 60.
func NewClock(ticksPerSecond int) *Clock {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	return &Clock{
		step:       time.Second / time.Duration(ticksPerSecond),
		MaxCatchUp: DefaultMaxCatchUp,
	}
}

// Step returns the duration of one tick.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Advance adds elapsed wall time and returns how many whole ticks are due.
// When more than MaxCatchUp ticks are due the backlog is dropped, so a
// stalled driver resumes at normal speed instead of fast-forwarding.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	c.acc += elapsed
	n := int(c.acc / c.step)
	c.acc -= time.Duration(n) * c.step

	if c.MaxCatchUp > 0 && n > c.MaxCatchUp {
		n = c.MaxCatchUp
		c.acc = 0
	}
	return n
}

// Alpha returns how far the accumulator is into the next tick, in [0, 1).
// Renderers may use it to interpolate between two snapshots.
func (c *Clock) Alpha() float64 {
	return float64(c.acc) / float64(c.step)
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
