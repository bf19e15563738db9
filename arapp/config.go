// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package arapp

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/arcam/camera"
	"github.com/gogpu/arcam/loop"
)

// ErrInvalidConfig is returned by Validate and FromEnv.
var ErrInvalidConfig = errors.New("arapp: invalid config")

// Environment variables read by FromEnv.
const (
	EnvTracking    = "ARCAM_TRACKING"
	EnvHUD         = "ARCAM_HUD"
	EnvBindTimeout = "ARCAM_BIND_TIMEOUT"
)

// Config holds the settings of an AR camera view.
type Config struct {
	// Tracking is passed to the session on start.
	Tracking camera.TrackingConfiguration

	// ClearColor fills the frame until the camera texture arrives.
	ClearColor gputypes.Color

	// DepthCompare is the depth test for layers drawn over the background.
	DepthCompare gputypes.CompareFunction

	// HUD draws the diagnostics panel.
	HUD bool

	// BindTimeout bounds the wait for the first camera texture. Zero waits
	// until the view stops.
	BindTimeout time.Duration

	// Retry controls how often a not-ready session is asked again.
	Retry camera.RetryPolicy
}

// DefaultConfig returns world tracking, the default clear color, LEQUAL
// depth testing and the default retry policy, without HUD.
func DefaultConfig() Config {
	return Config{
		Tracking:     camera.TrackingWorld,
		ClearColor:   loop.DefaultClearColor,
		DepthCompare: gputypes.CompareFunctionLessEqual,
		Retry:        camera.DefaultRetryPolicy(),
	}
}

// WithTracking returns a copy using tracking configuration tc.
func (c Config) WithTracking(tc camera.TrackingConfiguration) Config {
	c.Tracking = tc
	return c
}

// WithClearColor returns a copy using clear color col.
func (c Config) WithClearColor(col gputypes.Color) Config {
	c.ClearColor = col
	return c
}

// WithDepthCompare returns a copy using depth test fn.
func (c Config) WithDepthCompare(fn gputypes.CompareFunction) Config {
	c.DepthCompare = fn
	return c
}

// WithHUD returns a copy with the diagnostics panel enabled or disabled.
func (c Config) WithHUD(on bool) Config {
	c.HUD = on
	return c
}

// WithBindTimeout returns a copy with the given bind timeout.
func (c Config) WithBindTimeout(d time.Duration) Config {
	c.BindTimeout = d
	return c
}

// WithRetry returns a copy with retry policy p.
func (c Config) WithRetry(p camera.RetryPolicy) Config {
	c.Retry = p
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Tracking > camera.TrackingFace {
		return fmt.Errorf("%w: tracking %v", ErrInvalidConfig, c.Tracking)
	}
	for _, v := range []float64{c.ClearColor.R, c.ClearColor.G, c.ClearColor.B, c.ClearColor.A} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: clear color component %v outside [0, 1]", ErrInvalidConfig, v)
		}
	}
	if c.BindTimeout < 0 {
		return fmt.Errorf("%w: negative bind timeout %v", ErrInvalidConfig, c.BindTimeout)
	}
	if c.Retry.InitialBackoff < 0 || c.Retry.MaxBackoff < 0 {
		return fmt.Errorf("%w: negative retry backoff", ErrInvalidConfig)
	}
	return nil
}

// FromEnv overrides c with the ARCAM_* environment variables that are set.
func FromEnv(c Config) (Config, error) {
	return fromEnv(c, os.LookupEnv)
}

func fromEnv(c Config, lookup func(string) (string, bool)) (Config, error) {
	if v, ok := lookup(EnvTracking); ok {
		tc, err := camera.ParseTracking(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvTracking, err)
		}
		c.Tracking = tc
	}
	if v, ok := lookup(EnvHUD); ok {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvHUD, err)
		}
		c.HUD = on
	}
	if v, ok := lookup(EnvBindTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvBindTimeout, err)
		}
		c.BindTimeout = d
	}
	return c, c.Validate()
}
