package tui

import "time"

// DefaultDuckHold is how long a single duck key press keeps the player down.
const DefaultDuckHold = 550 * time.Millisecond

// DuckLatch turns duck key presses into a held state. Terminals report key
// presses but no releases, so a press holds the duck for a fixed window
// and every auto-repeat extends it. A mouse button, which does report its
// release, holds the duck until it is let go.
type DuckLatch struct {
	hold  time.Duration
	until time.Time
	key   bool
	mouse bool
}

// NewDuckLatch creates a latch holding each key press for hold.
func NewDuckLatch(hold time.Duration) DuckLatch {
	if hold <= 0 {
		hold = DefaultDuckHold
	}
	return DuckLatch{hold: hold}
}

// Press records a duck key press at now.
func (d *DuckLatch) Press(now time.Time) {
	d.key = true
	d.until = now.Add(d.hold)
}

// MouseDown records the duck mouse button going down.
func (d *DuckLatch) MouseDown() {
	d.mouse = true
}

// MouseUp records the duck mouse button going up. It reports whether the
// duck should be released now.
func (d *DuckLatch) MouseUp() bool {
	d.mouse = false
	return !d.key
}

// Expire reports whether the key hold ran out at now and nothing else
// keeps the duck down. It fires once per hold.
func (d *DuckLatch) Expire(now time.Time) bool {
	if !d.key || now.Before(d.until) {
		return false
	}
	d.key = false
	return !d.mouse
}

// Reset drops any hold.
func (d *DuckLatch) Reset() {
	d.key = false
	d.mouse = false
	d.until = time.Time{}
}
