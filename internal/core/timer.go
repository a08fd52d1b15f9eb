package core

import "time"

// DefaultStepInterval is the cadence at which the fire front advances.
const DefaultStepInterval = 150 * time.Millisecond

// FixedStep helps run simulation updates at a steady cadence independent of
// the frame rate of the driver polling it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	// Now is the time source; tests replace it with a manual clock.
	Now func() time.Time
}

// NewFixedStep constructs a FixedStep controller that fires once per interval.
// The first poll always fires so a freshly started fire advances immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{Now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the tick period. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultStepInterval
	}
	f.step = d
}

// Interval returns the current tick period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart drops accumulated time so the next poll fires immediately, the way a
// new interval timer would after a reset.
func (f *FixedStep) Restart() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			// Cap the backlog at one pending tick.
			f.accumulator = f.step
		}
		return true
	}
	return false
}
