// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package camera wraps camera texture handles supplied by an AR session.
//
// The session owns the camera texture and keeps uploading frames into it;
// this package never touches pixel data. Wrap turns a Handle into a
// BoundTexture the background pass can sample, and Bind waits for the
// session to produce the handle in the first place.
package camera

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mobile/gl"
)

// Camera errors.
var (
	// ErrInvalidHandle is returned when wrapping the zero handle.
	ErrInvalidHandle = errors.New("camera: invalid texture handle")

	// ErrNotReady is returned by a Source whose camera texture is not yet
	// available. Bind treats it as transient.
	ErrNotReady = errors.New("camera: texture not ready")

	// ErrNoSession is returned when a texture is requested before the
	// session was started.
	ErrNoSession = errors.New("camera: session not started")

	// ErrUnknownTracking is returned by ParseTracking for unknown names.
	ErrUnknownTracking = errors.New("camera: unknown tracking configuration")
)

// Handle is an opaque camera texture name owned by the AR session.
type Handle uint32

// Surface is the drawable the session renders into.
type Surface struct {
	// GL is the context bound to the surface. Only use it on the render
	// goroutine.
	GL gl.Context

	// Width and Height are the backing size in pixels, zero when unknown.
	Width, Height int
}

// TrackingConfiguration selects how the session tracks the device.
type TrackingConfiguration uint8

const (
	// TrackingWorld tracks position and orientation against the world.
	TrackingWorld TrackingConfiguration = iota
	// TrackingOrientation tracks device orientation only.
	TrackingOrientation
	// TrackingFace tracks the user's face with the front camera.
	TrackingFace
)

func (c TrackingConfiguration) String() string {
	switch c {
	case TrackingWorld:
		return "world"
	case TrackingOrientation:
		return "orientation"
	case TrackingFace:
		return "face"
	default:
		return fmt.Sprintf("TrackingConfiguration(%d)", uint8(c))
	}
}

// ParseTracking parses the String form of a TrackingConfiguration.
func ParseTracking(s string) (TrackingConfiguration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "world":
		return TrackingWorld, nil
	case "orientation":
		return TrackingOrientation, nil
	case "face":
		return TrackingFace, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTracking, s)
}

// Source yields the camera texture handle.
type Source interface {
	// CameraTexture blocks until the texture is available or ctx is done.
	// It may return ErrNotReady when the caller should try again later.
	CameraTexture(ctx context.Context) (Handle, error)
}

// Session is the AR session as seen by the renderer.
type Session interface {
	Source

	// Start starts tracking and binds the session to surface. It runs on the
	// render goroutine and must return before the first camera frame is drawn.
	Start(ctx context.Context, surface Surface, cfg TrackingConfiguration) error
}

// BoundTexture is a camera handle wrapped as a samplable GL texture.
// A BoundTexture is either fully constructed or not constructed at all.
type BoundTexture struct {
	handle  Handle
	texture gl.Texture
}

// Wrap wraps h as a TEXTURE_2D texture object. No GL call is made; the
// session has already created and filled the texture on the shared context.
func Wrap(h Handle) (*BoundTexture, error) {
	if h == 0 {
		return nil, ErrInvalidHandle
	}
	return &BoundTexture{
		handle:  h,
		texture: gl.Texture{Value: uint32(h)},
	}, nil
}

// Handle returns the wrapped session handle.
func (t *BoundTexture) Handle() Handle { return t.handle }

// Texture returns the GL texture object.
func (t *BoundTexture) Texture() gl.Texture { return t.texture }

// Target returns the texture target the handle is bound to.
func (t *BoundTexture) Target() gl.Enum { return gl.TEXTURE_2D }
