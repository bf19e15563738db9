// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gogpu/gputypes"
	"golang.org/x/mobile/gl"

	"github.com/gogpu/arcam/internal/gltest"
)

func TestClockDeltaNonNegative(t *testing.T) {
	var c Clock
	stamps := []time.Duration{16, 33, 50, 51, 1000, 1016}
	for i, ms := range stamps {
		_, delta := c.Tick(ms * time.Millisecond)
		if delta < 0 {
			t.Errorf("frame %d: delta = %v, want >= 0", i, delta)
		}
		if i == 0 && delta != 0 {
			t.Errorf("first delta = %v, want 0", delta)
		}
	}
}

func TestClockTick(t *testing.T) {
	var c Clock
	c.Tick(Millis(1000))
	now, delta := c.Tick(Millis(1250))
	if now != 1.25 || delta != 0.25 {
		t.Errorf("Tick() = %v, %v; want 1.25, 0.25", now, delta)
	}

	// Timestamps going backwards clamp to zero.
	if _, delta := c.Tick(Millis(1000)); delta != 0 {
		t.Errorf("backwards delta = %v, want 0", delta)
	}

	c.Reset()
	if _, delta := c.Tick(Millis(5000)); delta != 0 {
		t.Errorf("delta after Reset = %v, want 0", delta)
	}
}

type recordLayer struct {
	frames []Frame
	g      *gltest.GL
	// clearedBefore records whether Clear preceded each draw.
	clearedBefore []bool
}

func (l *recordLayer) DrawLayer(f Frame) {
	l.frames = append(l.frames, f)
	l.clearedBefore = append(l.clearedBefore, l.g.Count("Clear") == len(l.frames))
}

func TestFrameSequence(t *testing.T) {
	g := gltest.New()
	presented := 0
	d := New(g, WithPresenter(PresenterFunc(func() { presented++ })))
	layer := &recordLayer{g: g}
	d.AddLayer(layer)

	// Frames before Start are ignored.
	d.Frame(time.Millisecond)
	if len(g.Calls) != 0 {
		t.Fatalf("idle driver issued GL calls: %v", g.Names())
	}

	if err := d.Start(); err != nil {
		t.Fatal(err)
	}
	d.Frame(100 * time.Millisecond)
	d.Frame(116 * time.Millisecond)

	if presented != 2 {
		t.Errorf("presented %d frames, want 2", presented)
	}
	if len(layer.frames) != 2 {
		t.Fatalf("layer drew %d frames, want 2", len(layer.frames))
	}
	for i, ok := range layer.clearedBefore {
		if !ok {
			t.Errorf("frame %d drawn before clear", i)
		}
	}
	if f := layer.frames[1]; f.Index != 1 || f.Delta <= 0 {
		t.Errorf("second frame = %+v", f)
	}
	if g.Count("Flush") != 0 {
		t.Error("Flush called although a presenter was set")
	}

	c, _ := g.Last("ClearColor")
	if c.Args[0] != float32(0.2) || c.Args[1] != float32(0.5) || c.Args[2] != float32(0.5) || c.Args[3] != float32(1) {
		t.Errorf("ClearColor args = %v", c.Args)
	}
	if c, _ := g.Last("ClearDepthf"); c.Args[0] != float32(1) {
		t.Errorf("ClearDepthf args = %v", c.Args)
	}
	if c, _ := g.Last("Enable"); c.Args[0] != gl.Enum(gl.DEPTH_TEST) {
		t.Errorf("Enable args = %v", c.Args)
	}
	if c, _ := g.Last("DepthFunc"); c.Args[0] != gl.Enum(gl.LEQUAL) {
		t.Errorf("DepthFunc args = %v", c.Args)
	}
	if c, _ := g.Last("Clear"); c.Args[0] != gl.Enum(gl.COLOR_BUFFER_BIT|gl.DEPTH_BUFFER_BIT) {
		t.Errorf("Clear args = %v", c.Args)
	}
}

func TestFrameDefaultPresenterFlushes(t *testing.T) {
	g := gltest.New()
	d := New(g)
	if err := d.Start(); err != nil {
		t.Fatal(err)
	}
	d.Frame(0)
	if g.Count("Flush") != 1 {
		t.Errorf("Flush calls = %d, want 1", g.Count("Flush"))
	}
}

func TestFrameViewport(t *testing.T) {
	g := gltest.New()
	d := New(g)
	d.SetViewport(1080, 1920)
	if err := d.Start(); err != nil {
		t.Fatal(err)
	}
	d.Frame(0)
	d.Frame(time.Millisecond)
	if g.Count("Viewport") != 1 {
		t.Errorf("Viewport calls = %d, want 1", g.Count("Viewport"))
	}
	if c, _ := g.Last("Viewport"); c.Args[2] != 1080 || c.Args[3] != 1920 {
		t.Errorf("Viewport args = %v", c.Args)
	}
}

func TestStartStop(t *testing.T) {
	d := New(gltest.New())
	if d.State() != Idle {
		t.Fatalf("new driver state = %v", d.State())
	}
	if err := d.Start(); err != nil {
		t.Fatal(err)
	}
	if err := d.Start(); !errors.Is(err, ErrRunning) {
		t.Errorf("second Start() = %v, want ErrRunning", err)
	}
	d.Stop()
	if d.Running() {
		t.Error("Running() = true after Stop")
	}
	if err := d.Start(); err != nil {
		t.Errorf("restart after Stop: %v", err)
	}

	if err := New(nil).Start(); !errors.Is(err, ErrNoContext) {
		t.Errorf("Start() without context = %v, want ErrNoContext", err)
	}
}

func TestRunStopsOnLivenessFlag(t *testing.T) {
	g := gltest.New()
	d := New(g)
	frames := make(chan time.Duration, 10)
	for i := range 10 {
		frames <- time.Duration(i) * time.Millisecond
	}

	drawn := 0
	d.AddLayer(LayerFunc(func(f Frame) {
		drawn++
		if drawn == 3 {
			d.Stop()
		}
	}))

	if err := d.Run(context.Background(), ChanScheduler(frames)); err != nil {
		t.Fatalf("Run() = %v, want nil after Stop", err)
	}
	if drawn != 3 {
		t.Errorf("drew %d frames, want 3", drawn)
	}
	if len(frames) != 7 {
		t.Errorf("scheduler consumed %d timestamps, want 3", 10-len(frames))
	}
}

func TestRunContextCancel(t *testing.T) {
	d := New(gltest.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Run(ctx, ChanScheduler(make(chan time.Duration))); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
	if d.Running() {
		t.Error("driver still running after Run returned")
	}
}

func TestRunSchedulerClosed(t *testing.T) {
	d := New(gltest.New())
	ch := make(chan time.Duration)
	close(ch)
	if err := d.Run(context.Background(), ChanScheduler(ch)); !errors.Is(err, ErrSchedulerClosed) {
		t.Errorf("Run() = %v, want ErrSchedulerClosed", err)
	}
}

func TestTickerScheduler(t *testing.T) {
	s := NewTickerScheduler(time.Millisecond)
	defer s.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	a, err := s.NextFrame(ctx)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.NextFrame(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if b <= a {
		t.Errorf("timestamps not increasing: %v then %v", a, b)
	}
}

func TestDepthFunc(t *testing.T) {
	tests := []struct {
		in   gputypes.CompareFunction
		want gl.Enum
	}{
		{gputypes.CompareFunctionNever, gl.NEVER},
		{gputypes.CompareFunctionLess, gl.LESS},
		{gputypes.CompareFunctionEqual, gl.EQUAL},
		{gputypes.CompareFunctionLessEqual, gl.LEQUAL},
		{gputypes.CompareFunctionGreater, gl.GREATER},
		{gputypes.CompareFunctionNotEqual, gl.NOTEQUAL},
		{gputypes.CompareFunctionGreaterEqual, gl.GEQUAL},
		{gputypes.CompareFunctionAlways, gl.ALWAYS},
	}
	for _, tt := range tests {
		if got := depthFunc(tt.in); got != tt.want {
			t.Errorf("depthFunc(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithOptions(t *testing.T) {
	g := gltest.New()
	d := New(g,
		WithClearColor(gputypes.Color{R: 0, G: 0, B: 0, A: 1}),
		WithDepthCompare(gputypes.CompareFunctionLess))
	if err := d.Start(); err != nil {
		t.Fatal(err)
	}
	d.Frame(0)
	if c, _ := g.Last("DepthFunc"); c.Args[0] != gl.Enum(gl.LESS) {
		t.Errorf("DepthFunc = %v, want LESS", c.Args[0])
	}
	if c, _ := g.Last("ClearColor"); c.Args[0] != float32(0) {
		t.Errorf("ClearColor = %v", c.Args)
	}
}
