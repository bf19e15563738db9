// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import (
	"context"
	"errors"
	"time"
)

// ErrSchedulerClosed is returned by a scheduler that will produce no more frames.
var ErrSchedulerClosed = errors.New("loop: scheduler closed")

// Scheduler hands out frame timestamps. NextFrame blocks until the host
// wants the next frame, so at most one frame is pending at a time.
type Scheduler interface {
	NextFrame(ctx context.Context) (time.Duration, error)
}

// TickerScheduler produces frames at a fixed interval, timestamped from the
// moment it was created.
type TickerScheduler struct {
	ticker *time.Ticker
	start  time.Time
}

// NewTickerScheduler returns a scheduler ticking every interval.
// Call Stop to release the ticker.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{
		ticker: time.NewTicker(interval),
		start:  time.Now(),
	}
}

// NextFrame waits for the next tick.
func (s *TickerScheduler) NextFrame(ctx context.Context) (time.Duration, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case t := <-s.ticker.C:
		return t.Sub(s.start), nil
	}
}

// Stop releases the ticker.
func (s *TickerScheduler) Stop() {
	s.ticker.Stop()
}

// ChanScheduler delivers timestamps sent on a channel, for hosts that push
// frame callbacks from another goroutine. Closing the channel ends the loop.
type ChanScheduler <-chan time.Duration

// NextFrame receives the next timestamp.
func (s ChanScheduler) NextFrame(ctx context.Context) (time.Duration, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case ts, ok := <-s:
		if !ok {
			return 0, ErrSchedulerClosed
		}
		return ts, nil
	}
}
