// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/mobile/gl"
)

// scriptedSource answers CameraTexture from a fixed script.
type scriptedSource struct {
	answers []error
	handle  Handle
	calls   int
}

func (s *scriptedSource) CameraTexture(ctx context.Context) (Handle, error) {
	s.calls++
	if len(s.answers) > 0 {
		err := s.answers[0]
		s.answers = s.answers[1:]
		if err != nil {
			return 0, err
		}
	}
	return s.handle, nil
}

// blockingSource never produces a handle.
type blockingSource struct{}

func (blockingSource) CameraTexture(ctx context.Context) (Handle, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

// instant replaces time.After so retries do not sleep.
func instant(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func TestWrap(t *testing.T) {
	tex, err := Wrap(42)
	if err != nil {
		t.Fatalf("Wrap(42) error = %v", err)
	}
	if tex.Handle() != 42 {
		t.Errorf("Handle() = %d, want 42", tex.Handle())
	}
	if tex.Texture() != (gl.Texture{Value: 42}) {
		t.Errorf("Texture() = %v", tex.Texture())
	}
	if tex.Target() != gl.TEXTURE_2D {
		t.Errorf("Target() = %v, want TEXTURE_2D", tex.Target())
	}
}

func TestWrapZero(t *testing.T) {
	tex, err := Wrap(0)
	if tex != nil || !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Wrap(0) = %v, %v; want nil, ErrInvalidHandle", tex, err)
	}
}

func TestWrapNewHandle(t *testing.T) {
	a, _ := Wrap(1)
	b, _ := Wrap(2)
	if a == b || a.Texture() == b.Texture() {
		t.Error("wrapping a second handle must produce a distinct texture")
	}
}

func TestBind(t *testing.T) {
	src := &scriptedSource{handle: 7}
	tex, err := Bind(context.Background(), src)
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if tex.Handle() != 7 || src.calls != 1 {
		t.Errorf("Bind() handle = %d after %d calls", tex.Handle(), src.calls)
	}
}

func TestBindRetry(t *testing.T) {
	tests := []struct {
		name      string
		answers   []error
		policy    RetryPolicy
		wantErr   error
		wantCalls int
	}{
		{
			name:      "no retry by default",
			answers:   []error{ErrNotReady},
			wantErr:   ErrNotReady,
			wantCalls: 1,
		},
		{
			name:      "recovers",
			answers:   []error{ErrNotReady, ErrNotReady},
			policy:    RetryPolicy{MaxAttempts: 3, InitialBackoff: time.Millisecond},
			wantCalls: 3,
		},
		{
			name:      "exhausted",
			answers:   []error{ErrNotReady, ErrNotReady, ErrNotReady},
			policy:    RetryPolicy{MaxAttempts: 2, InitialBackoff: time.Millisecond},
			wantErr:   ErrNotReady,
			wantCalls: 2,
		},
		{
			name:      "permanent error is not retried",
			answers:   []error{ErrNoSession},
			policy:    RetryPolicy{MaxAttempts: 5},
			wantErr:   ErrNoSession,
			wantCalls: 1,
		},
		{
			name:      "unbounded",
			answers:   []error{ErrNotReady, ErrNotReady, ErrNotReady, ErrNotReady, ErrNotReady},
			policy:    RetryPolicy{MaxAttempts: -1},
			wantCalls: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedSource{answers: tt.answers, handle: 3}
			tex, err := Bind(context.Background(), src, WithRetry(tt.policy), withClock(instant))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Bind() error = %v, want %v", err, tt.wantErr)
				}
				if tex != nil {
					t.Error("Bind() returned a texture with an error")
				}
			} else if err != nil {
				t.Fatalf("Bind() error = %v", err)
			}
			if src.calls != tt.wantCalls {
				t.Errorf("CameraTexture calls = %d, want %d", src.calls, tt.wantCalls)
			}
		})
	}
}

func TestBindInvalidHandle(t *testing.T) {
	if _, err := Bind(context.Background(), &scriptedSource{}); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Bind() error = %v, want ErrInvalidHandle", err)
	}
}

func TestBindPendsUntilContextDone(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Bind(ctx, blockingSource{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Bind() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestRetryBackoff(t *testing.T) {
	p := RetryPolicy{InitialBackoff: 10 * time.Millisecond, MaxBackoff: 50 * time.Millisecond}
	want := []time.Duration{10, 20, 40, 50, 50}
	for i, w := range want {
		if got := p.backoff(i + 1); got != w*time.Millisecond {
			t.Errorf("backoff(%d) = %v, want %v", i+1, got, w*time.Millisecond)
		}
	}
}

func TestParseTracking(t *testing.T) {
	for _, c := range []TrackingConfiguration{TrackingWorld, TrackingOrientation, TrackingFace} {
		got, err := ParseTracking(" " + c.String() + " ")
		if err != nil || got != c {
			t.Errorf("ParseTracking(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseTracking("plane"); !errors.Is(err, ErrUnknownTracking) {
		t.Errorf("ParseTracking(plane) error = %v", err)
	}
	if got := TrackingConfiguration(9).String(); got != "TrackingConfiguration(9)" {
		t.Errorf("String() = %q", got)
	}
}
