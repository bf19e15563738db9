// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package arapp runs the camera background inside an x/mobile app.
//
// Run translates app events into render loop calls. When the window becomes
// visible it builds the background drawer, starts the AR session and waits
// for the camera texture on a separate goroutine, then draws a frame for
// every paint event. When the window goes away it stops the loop and frees
// every GL object it created.
//
//	func main() {
//		arapp.Main(mySession, arapp.DefaultConfig().WithHUD(true))
//	}
package arapp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/gl"

	"github.com/gogpu/arcam/background"
	"github.com/gogpu/arcam/camera"
	"github.com/gogpu/arcam/hud"
	"github.com/gogpu/arcam/internal/logging"
	"github.com/gogpu/arcam/loop"
)

// ErrNoGLContext is returned when the app becomes visible without a GL
// draw context.
var ErrNoGLContext = errors.New("arapp: lifecycle event carries no gl context")

// App is the part of app.App that Run uses.
type App interface {
	Events() <-chan any
	Send(event any)
	Publish() app.PublishResult
	Filter(event any) any
}

var _ App = app.App(nil)

// Main starts the platform app and calls Run with it. Setup errors are
// logged; Main returns when the app exits.
func Main(session camera.Session, cfg Config) {
	app.Main(func(a app.App) {
		if err := Run(a, session, cfg); err != nil {
			logging.L().Error("arapp: run failed", "err", err)
		}
	})
}

// Run handles app events until the event channel closes or the app dies.
// It returns setup errors such as shader compile failures; the session
// stays stopped in that case.
func Run(a App, session camera.Session, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	v := newView(a, session, cfg)
	defer v.stop()

	for e := range a.Events() {
		switch e := a.Filter(e).(type) {
		case lifecycle.Event:
			switch e.Crosses(lifecycle.StageVisible) {
			case lifecycle.CrossOn:
				glctx, ok := e.DrawContext.(gl.Context)
				if !ok {
					return ErrNoGLContext
				}
				if err := v.start(glctx); err != nil {
					return err
				}
				a.Send(paint.Event{})
			case lifecycle.CrossOff:
				v.stop()
			}
			if e.To == lifecycle.StageDead {
				return nil
			}
		case size.Event:
			v.resize(e)
		case paint.Event:
			if e.External || !v.driver.Running() {
				continue
			}
			v.frame()
			if v.driver.Running() {
				a.Send(paint.Event{})
			}
		}
	}
	return nil
}

// view is the state of one visible period of the app.
type view struct {
	app     App
	session camera.Session
	cfg     Config
	now     func() time.Time

	driver *loop.Driver
	drawer *background.Drawer
	hud    *hud.Overlay

	sz    size.Event
	epoch time.Time

	cancel context.CancelFunc
	bind   sync.WaitGroup
}

func newView(a App, session camera.Session, cfg Config) *view {
	v := &view{app: a, session: session, cfg: cfg, now: time.Now}
	v.driver = loop.New(nil,
		loop.WithClearColor(cfg.ClearColor),
		loop.WithDepthCompare(cfg.DepthCompare),
		loop.WithPresenter(loop.PresenterFunc(func() { a.Publish() })),
	)
	return v
}

func (v *view) start(glctx gl.Context) error {
	drawer, err := background.New(glctx)
	if err != nil {
		return fmt.Errorf("arapp: %w", err)
	}

	surf := camera.Surface{GL: glctx, Width: v.sz.WidthPx, Height: v.sz.HeightPx}
	if err := v.session.Start(context.Background(), surf, v.cfg.Tracking); err != nil {
		drawer.Release()
		return fmt.Errorf("arapp: start session: %w", err)
	}
	v.drawer = drawer

	layers := []loop.Layer{drawer}
	if v.cfg.HUD {
		v.hud = hud.New(glctx, drawer.Stats)
		v.hud.Resize(v.sz)
		layers = append(layers, v.hud)
	}
	v.driver.SetContext(glctx)
	v.driver.SetLayers(layers...)
	if v.sz.WidthPx > 0 && v.sz.HeightPx > 0 {
		v.driver.SetViewport(v.sz.WidthPx, v.sz.HeightPx)
	}

	v.bindAsync()

	v.epoch = v.now()
	return v.driver.Start()
}

// bindAsync waits for the camera texture off the render goroutine. The
// texture reaches the drawer through Deliver.
func (v *view) bindAsync() {
	ctx, cancel := context.WithCancel(context.Background())
	if v.cfg.BindTimeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), v.cfg.BindTimeout)
	}
	v.cancel = cancel

	drawer := v.drawer
	v.bind.Add(1)
	go func() {
		defer v.bind.Done()
		tex, err := camera.Bind(ctx, v.session, camera.WithRetry(v.cfg.Retry))
		switch {
		case errors.Is(err, context.Canceled):
			return
		case err != nil:
			logging.L().Error("arapp: camera texture unavailable", "err", err)
			return
		}
		drawer.Deliver(tex)
	}()
}

func (v *view) resize(sz size.Event) {
	v.sz = sz
	v.driver.SetViewport(sz.WidthPx, sz.HeightPx)
	if v.hud != nil {
		v.hud.Resize(sz)
	}
}

func (v *view) frame() {
	v.driver.Frame(v.now().Sub(v.epoch))
}

// stop ends the visible period. It is safe to call when not started.
func (v *view) stop() {
	v.driver.Stop()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.bind.Wait()

	if st, ok := v.session.(interface{ Stop() }); ok && v.drawer != nil {
		st.Stop()
	}
	if v.hud != nil {
		v.hud.Release()
		v.hud = nil
	}
	if v.drawer != nil {
		v.drawer.Release()
		v.drawer = nil
	}
	v.driver.SetLayers()
	v.driver.SetContext(nil)
}
