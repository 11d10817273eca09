// Package sim implements the deterministic gameplay core of Swoop: physics
// integration, obstacle spawning, collision detection, scoring with
// difficulty phases, and the life/continue system behind a small state
// machine. The package has no external dependencies and advances only
// through Game.Tick, so identical seeds and inputs replay identically.
package sim

import "time"

// Clock supplies the per-frame time step to the host loop.
// The simulation itself never reads wall time; it only consumes deltas.
type Clock interface {
	// Delta returns the elapsed time in seconds since the previous call.
	Delta() float64
}

// WallClock measures real elapsed time between frames. Deltas are clamped
// to MaxDelta so a backgrounded or stalled host cannot tunnel the player
// through obstacles when frames resume.
type WallClock struct {
	last     time.Time
	maxDelta float64
}

// NewWallClock creates a wall clock with the given spike clamp in seconds.
func NewWallClock(maxDelta float64) *WallClock {
	if maxDelta <= 0 {
		maxDelta = 0.25
	}
	return &WallClock{maxDelta: maxDelta}
}

// Delta returns the clamped seconds elapsed since the previous call.
// The first call returns 0.
func (c *WallClock) Delta() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last).Seconds()
	c.last = now
	if d < 0 {
		return 0
	}
	if d > c.maxDelta {
		return c.maxDelta
	}
	return d
}

// StepClock returns a fixed delta every call. Used by tests and anywhere a
// reproducible tick sequence is needed.
type StepClock struct {
	Step float64
}

// Delta returns the fixed step.
func (c StepClock) Delta() float64 {
	return c.Step
}
