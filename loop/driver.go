// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package loop drives the per-frame render loop.
//
// A Driver is Idle until Start (or Run) moves it to Running. Every frame it
// clears color and depth, enables depth testing, draws its layers in order and
// presents the result. The loop is an explicit for-loop guarded by a liveness
// flag checked at the top of each iteration, so Stop ends it without touching
// a destroyed context:
//
//	d := loop.New(glctx, loop.WithPresenter(p))
//	d.AddLayer(drawer)
//	err := d.Run(ctx, loop.NewTickerScheduler(time.Second/60))
//
// Hosts that own the frame callback (such as x/mobile paint events) call
// Start once and then Frame for every callback, rescheduling only while
// Running reports true.
package loop

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/mobile/gl"

	"github.com/gogpu/arcam/internal/logging"
)

// Loop errors.
var (
	// ErrRunning is returned when starting a driver that is already running.
	ErrRunning = errors.New("loop: already running")

	// ErrNoContext is returned when starting a driver without a GL context.
	ErrNoContext = errors.New("loop: nil gl context")
)

// State is the driver state.
type State int32

const (
	// Idle means no frames are scheduled.
	Idle State = iota
	// Running means frames are continuously rescheduled.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Driver runs the frame loop on a single goroutine. Only Stop, State and
// Running may be called from other goroutines.
type Driver struct {
	glctx  gl.Context
	opts   options
	layers []Layer

	state atomic.Int32
	clock Clock
	index uint64

	viewW, viewH int
	viewDirty    bool
}

// New returns an idle driver rendering into glctx.
func New(glctx gl.Context, opts ...Option) *Driver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Driver{glctx: glctx, opts: o}
}

// SetContext replaces the GL context, for example after the host recreated
// the surface. Render goroutine only.
func (d *Driver) SetContext(glctx gl.Context) {
	d.glctx = glctx
}

// AddLayer appends a layer. Layers draw in the order they were added.
func (d *Driver) AddLayer(l Layer) {
	d.layers = append(d.layers, l)
}

// SetLayers replaces the layer list.
func (d *Driver) SetLayers(layers ...Layer) {
	d.layers = layers
}

// SetViewport records the drawable size; it is applied on the next frame.
func (d *Driver) SetViewport(width, height int) {
	d.viewW, d.viewH = width, height
	d.viewDirty = true
}

// State returns the current state.
func (d *Driver) State() State { return State(d.state.Load()) }

// Running reports whether frames should keep being scheduled.
func (d *Driver) Running() bool { return d.State() == Running }

// Start moves the driver from Idle to Running and resets the clock.
func (d *Driver) Start() error {
	if d.glctx == nil {
		return ErrNoContext
	}
	if !d.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return ErrRunning
	}
	d.clock.Reset()
	d.index = 0
	logging.L().Info("loop: started", "layers", len(d.layers))
	return nil
}

// Stop clears the liveness flag. The current frame, if any, completes; no
// further frames are drawn.
func (d *Driver) Stop() {
	if d.state.Swap(int32(Idle)) == int32(Running) {
		logging.L().Info("loop: stopped")
	}
}

// Run starts the driver and draws a frame for every timestamp sched hands
// out until Stop is called (returns nil), ctx ends (returns ctx.Err()) or
// sched fails.
func (d *Driver) Run(ctx context.Context, sched Scheduler) error {
	if err := d.Start(); err != nil {
		return err
	}
	defer d.Stop()

	for d.Running() {
		ts, err := sched.NextFrame(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		d.Frame(ts)
	}
	return nil
}

// Frame draws one frame for timestamp ts. It does nothing unless the driver
// is Running.
func (d *Driver) Frame(ts time.Duration) {
	if !d.Running() || d.glctx == nil {
		return
	}

	now, delta := d.clock.Tick(ts)
	f := Frame{Index: d.index, Time: now, Delta: delta}
	d.index++

	d.clear()
	for _, l := range d.layers {
		l.DrawLayer(f)
	}
	d.present()
}

func (d *Driver) clear() {
	g := d.glctx
	if d.viewDirty {
		g.Viewport(0, 0, d.viewW, d.viewH)
		d.viewDirty = false
	}
	c := d.opts.clearColor
	g.ClearColor(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	g.ClearDepthf(d.opts.clearDepth)
	g.Enable(gl.DEPTH_TEST)
	g.DepthFunc(depthFunc(d.opts.depthCompare))
	g.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Driver) present() {
	if d.opts.presenter != nil {
		d.opts.presenter.Present()
		return
	}
	d.glctx.Flush()
}
