package mouse

import "time"

// DefaultClickInterval is the largest gap between presses that still
// counts as part of one click sequence.
const DefaultClickInterval = 600 * time.Millisecond

// ClickCounter counts rapid repeated presses.
type ClickCounter struct {
	interval time.Duration

	lastTime  time.Time
	lastCount int
}

// NewClickCounter creates a counter with the given interval. A non-positive
// interval selects DefaultClickInterval.
func NewClickCounter(interval time.Duration) *ClickCounter {
	if interval <= 0 {
		interval = DefaultClickInterval
	}
	return &ClickCounter{interval: interval}
}

// Record registers a press at now and returns the click count.
// The count grows without bound while presses keep arriving within the
// interval; a gap of interval or more starts over at 1.
func (c *ClickCounter) Record(now time.Time) int {
	if c.lastCount > 0 && !now.Before(c.lastTime) && now.Sub(c.lastTime) < c.interval {
		c.lastCount++
	} else {
		c.lastCount = 1
	}
	c.lastTime = now
	return c.lastCount
}

// Count returns the last recorded click count.
func (c *ClickCounter) Count() int {
	return c.lastCount
}

// Interval returns the sequence interval.
func (c *ClickCounter) Interval() time.Duration {
	return c.interval
}

// SetInterval changes the sequence interval. The running sequence is kept.
func (c *ClickCounter) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultClickInterval
	}
	c.interval = d
}

