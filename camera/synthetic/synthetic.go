// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package synthetic provides a camera.Session that needs no camera.
//
// The session owns one RGBA texture filled with vertical color bars. It is
// meant for desktop development and tests: the background pass cannot tell
// it apart from a real AR session that keeps writing frames into its
// texture.
package synthetic

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sync"
	"time"

	"golang.org/x/image/colornames"
	"golang.org/x/mobile/gl"

	"github.com/gogpu/arcam/camera"
	"github.com/gogpu/arcam/internal/logging"
)

// Session errors.
var (
	// ErrStarted is returned by Start on a running session.
	ErrStarted = errors.New("synthetic: session already started")

	// ErrNoContext is returned when Start is given a surface without GL.
	ErrNoContext = errors.New("synthetic: surface has no gl context")
)

// Default texture size used when neither the surface nor WithSize gives one.
const (
	DefaultWidth  = 256
	DefaultHeight = 144
)

// bars are the classic broadcast test bars, left to right.
var bars = []color.RGBA{
	colornames.White,
	colornames.Yellow,
	colornames.Cyan,
	colornames.Lime,
	colornames.Magenta,
	colornames.Red,
	colornames.Blue,
}

// Option configures a Session.
type Option func(*Session)

// WithWarmup delays the camera texture by d after Start, the way a real
// camera needs time before the first frame.
func WithWarmup(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.warmup = d
		}
	}
}

// WithSize fixes the texture size instead of following the surface.
func WithSize(width, height int) Option {
	return func(s *Session) {
		if width > 0 && height > 0 {
			s.width, s.height = width, height
		}
	}
}

// Session is a fake AR session backed by a generated texture.
//
// Start and Stop must run on the render goroutine. CameraTexture may be
// called from any goroutine.
type Session struct {
	warmup        time.Duration
	width, height int
	now           func() time.Time

	mu       sync.Mutex
	glctx    gl.Context
	texture  gl.Texture
	tracking camera.TrackingConfiguration
	ready    time.Time
	started  bool
}

// New returns a stopped session.
func New(opts ...Option) *Session {
	s := &Session{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ camera.Session = (*Session)(nil)

// Start creates the camera texture on surf and fills it with color bars.
// Face tracking mirrors the bars, as a front camera would.
func (s *Session) Start(ctx context.Context, surf camera.Surface, tc camera.TrackingConfiguration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if surf.GL == nil {
		return ErrNoContext
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrStarted
	}

	w, h := s.width, s.height
	if w == 0 || h == 0 {
		w, h = surf.Width, surf.Height
	}
	if w <= 0 || h <= 0 {
		w, h = DefaultWidth, DefaultHeight
	}

	g := surf.GL
	tex := g.CreateTexture()
	g.BindTexture(gl.TEXTURE_2D, tex)
	g.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	g.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	g.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	g.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	img := ColorBars(w, h, tc == camera.TrackingFace)
	g.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, w, h, gl.RGBA, gl.UNSIGNED_BYTE, img.Pix)
	g.BindTexture(gl.TEXTURE_2D, gl.Texture{})

	s.glctx = g
	s.texture = tex
	s.tracking = tc
	s.ready = s.now().Add(s.warmup)
	s.started = true

	logging.L().Info("synthetic: session started",
		"tracking", tc.String(), "width", w, "height", h, "warmup", s.warmup)
	return nil
}

// CameraTexture returns the texture handle once the warm-up has passed.
// It answers camera.ErrNoSession before Start and camera.ErrNotReady
// during the warm-up.
func (s *Session) CameraTexture(ctx context.Context) (camera.Handle, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return 0, camera.ErrNoSession
	}
	if s.now().Before(s.ready) {
		return 0, camera.ErrNotReady
	}
	return camera.Handle(s.texture.Value), nil
}

// Tracking returns the configuration the session was started with.
func (s *Session) Tracking() camera.TrackingConfiguration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracking
}

// Stop deletes the texture. The session can be started again.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.glctx.DeleteTexture(s.texture)
	s.glctx = nil
	s.texture = gl.Texture{}
	s.started = false
}

// ColorBars draws evenly spaced vertical bars into a w by h image.
func ColorBars(w, h int, mirror bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	n := len(bars)
	for i, c := range bars {
		x0, x1 := i*w/n, (i+1)*w/n
		if mirror {
			x0, x1 = w-x1, w-x0
		}
		draw.Draw(img, image.Rect(x0, 0, x1, h), image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img
}
