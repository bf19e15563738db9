// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/arcam/internal/logging"
)

// RetryPolicy controls how Bind reacts to ErrNotReady.
//
// The zero value does not retry. Bind never imposes a deadline of its own;
// bound the total wait with the context passed to Bind.
type RetryPolicy struct {
	// MaxAttempts is the total number of CameraTexture calls. Values below 1
	// mean a single attempt; -1 retries until ctx is done.
	MaxAttempts int

	// InitialBackoff is the wait before the second attempt.
	InitialBackoff time.Duration

	// MaxBackoff caps the exponentially growing wait. Zero means no cap.
	MaxBackoff time.Duration
}

// DefaultRetryPolicy retries a not-ready session for about five seconds.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    8,
		InitialBackoff: 50 * time.Millisecond,
		MaxBackoff:     2 * time.Second,
	}
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts < 0 {
		return -1
	}
	return max(p.MaxAttempts, 1)
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	d := p.InitialBackoff
	for i := 1; i < attempt; i++ {
		d *= 2
		if p.MaxBackoff > 0 && d >= p.MaxBackoff {
			return p.MaxBackoff
		}
	}
	if p.MaxBackoff > 0 && d > p.MaxBackoff {
		return p.MaxBackoff
	}
	return d
}

// BindOption configures Bind.
type BindOption func(*bindOptions)

type bindOptions struct {
	retry RetryPolicy
	after func(time.Duration) <-chan time.Time
}

// WithRetry sets the retry policy for ErrNotReady answers.
func WithRetry(p RetryPolicy) BindOption {
	return func(o *bindOptions) {
		o.retry = p
	}
}

// withClock replaces time.After in tests.
func withClock(after func(time.Duration) <-chan time.Time) BindOption {
	return func(o *bindOptions) {
		o.after = after
	}
}

// Bind waits for src to supply a camera texture and wraps it.
//
// Bind blocks; run it off the render goroutine and hand the result to the
// renderer. It returns ctx.Err() when ctx ends first.
func Bind(ctx context.Context, src Source, opts ...BindOption) (*BoundTexture, error) {
	o := bindOptions{after: time.After}
	for _, opt := range opts {
		opt(&o)
	}

	limit := o.retry.attempts()
	for attempt := 1; ; attempt++ {
		h, err := src.CameraTexture(ctx)
		if err == nil {
			tex, werr := Wrap(h)
			if werr != nil {
				return nil, werr
			}
			logging.L().Info("camera: texture bound", "handle", uint32(h), "attempt", attempt)
			return tex, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !errors.Is(err, ErrNotReady) {
			return nil, fmt.Errorf("camera: acquire texture: %w", err)
		}
		if limit > 0 && attempt >= limit {
			return nil, fmt.Errorf("camera: gave up after %d attempts: %w", attempt, err)
		}

		wait := o.retry.backoff(attempt)
		logging.L().Debug("camera: texture not ready", "attempt", attempt, "retryIn", wait)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-o.after(wait):
		}
	}
}
