// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/mobile/gl"
)

// DefaultClearColor is the color behind the camera feed before it arrives.
var DefaultClearColor = gputypes.Color{R: 0.2, G: 0.5, B: 0.5, A: 1}

// Option configures a Driver.
type Option func(*options)

type options struct {
	clearColor   gputypes.Color
	clearDepth   float32
	depthCompare gputypes.CompareFunction
	presenter    Presenter
}

func defaultOptions() options {
	return options{
		clearColor:   DefaultClearColor,
		clearDepth:   1,
		depthCompare: gputypes.CompareFunctionLessEqual,
	}
}

// WithClearColor sets the color buffer clear value.
func WithClearColor(c gputypes.Color) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithDepthCompare sets the depth test used by layers drawn after the clear.
func WithDepthCompare(fn gputypes.CompareFunction) Option {
	return func(o *options) {
		o.depthCompare = fn
	}
}

// WithPresenter sets how a finished frame is submitted. Without one the
// driver flushes the GL context.
func WithPresenter(p Presenter) Option {
	return func(o *options) {
		o.presenter = p
	}
}

// depthFunc maps a WebGPU-style compare function to its GL enum.
// Undefined falls back to LEQUAL.
func depthFunc(fn gputypes.CompareFunction) gl.Enum {
	switch fn {
	case gputypes.CompareFunctionNever:
		return gl.NEVER
	case gputypes.CompareFunctionLess:
		return gl.LESS
	case gputypes.CompareFunctionEqual:
		return gl.EQUAL
	case gputypes.CompareFunctionGreater:
		return gl.GREATER
	case gputypes.CompareFunctionNotEqual:
		return gl.NOTEQUAL
	case gputypes.CompareFunctionGreaterEqual:
		return gl.GEQUAL
	case gputypes.CompareFunctionAlways:
		return gl.ALWAYS
	default:
		return gl.LEQUAL
	}
}
