// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import "time"

// Clock turns host frame timestamps into per-frame deltas in seconds.
// It is owned by the render goroutine.
type Clock struct {
	previous float64
	started  bool
}

// Reset forgets the previous timestamp. The next Tick reports a zero delta.
func (c *Clock) Reset() {
	c.previous = 0
	c.started = false
}

// Tick records ts and returns the current time and the elapsed time since the
// previous Tick, both in seconds. The delta is never negative: a timestamp
// that goes backwards reports zero and becomes the new reference.
func (c *Clock) Tick(ts time.Duration) (now, delta float64) {
	now = ts.Seconds()
	if c.started {
		delta = max(now-c.previous, 0)
	}
	c.previous = now
	c.started = true
	return now, delta
}

// Millis converts a host timestamp in milliseconds, as delivered by
// requestAnimationFrame-style schedulers, into a Duration.
func Millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
