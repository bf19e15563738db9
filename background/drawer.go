// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package background draws the camera feed behind the rest of an AR scene.
//
// A Drawer owns the camera shader program, the screen-fill triangle and a
// single texture cell. Until a camera texture arrives the cell is empty and
// Draw does nothing, which is the normal state between context creation and
// the first camera frame.
//
// The texture cell changes only through Rebind on the render goroutine or
// through Deliver from any goroutine; a delivered texture takes effect at the
// start of the next Draw. Neither rebuilds the program or the geometry.
package background

import (
	"fmt"

	"golang.org/x/mobile/gl"

	"github.com/gogpu/arcam/camera"
	"github.com/gogpu/arcam/geometry"
	"github.com/gogpu/arcam/internal/glerr"
	"github.com/gogpu/arcam/internal/logging"
	"github.com/gogpu/arcam/loop"
	"github.com/gogpu/arcam/shader"
)

// textureUnit is the sampler unit the camera texture is bound to.
const textureUnit = 0

// Stats counts what the drawer did. Accumulated GL errors are an
// operational signal; they never stop drawing.
type Stats struct {
	Draws    uint64
	Skipped  uint64
	GLErrors uint64
	Rebinds  uint64
	Bound    bool
	Handle   camera.Handle
}

// Drawer renders the camera background. Except for Deliver, its methods must
// be called on the goroutine that owns the GL context.
type Drawer struct {
	glctx   gl.Context
	program *shader.Program
	screen  *geometry.Buffer

	texture *camera.BoundTexture
	pending chan *camera.BoundTexture

	stats    Stats
	released bool
}

// New builds the camera program and uploads the screen-fill triangle.
//
// The program is built first: a shader failure returns the *shader.CompileError
// or *shader.LinkError (wrapped) before any buffer is created.
func New(glctx gl.Context, opts ...Option) (*Drawer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	program, err := shader.Build(glctx, o.source)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	screen, err := geometry.NewScreenFill(glctx)
	if err != nil {
		program.Release()
		return nil, fmt.Errorf("background: %w", err)
	}

	return &Drawer{
		glctx:   glctx,
		program: program,
		screen:  screen,
		pending: make(chan *camera.BoundTexture, 1),
	}, nil
}

// Rebind replaces the camera texture. A nil texture empties the cell.
func (d *Drawer) Rebind(t *camera.BoundTexture) {
	if t == d.texture {
		return
	}
	d.texture = t
	if t != nil {
		d.stats.Rebinds++
		logging.L().Debug("background: texture rebound", "handle", uint32(t.Handle()))
	}
}

// Deliver hands a texture over from another goroutine. Only the latest
// delivery is kept; it is applied at the start of the next Draw.
func (d *Drawer) Deliver(t *camera.BoundTexture) {
	for {
		select {
		case d.pending <- t:
			return
		default:
		}
		select {
		case <-d.pending:
		default:
		}
	}
}

// Bound reports whether a camera texture is in the cell.
func (d *Drawer) Bound() bool {
	return d.texture != nil
}

// Texture returns the current camera texture, or nil.
func (d *Drawer) Texture() *camera.BoundTexture {
	return d.texture
}

// Stats returns the drawer counters.
func (d *Drawer) Stats() Stats {
	s := d.stats
	s.Bound = d.texture != nil
	if d.texture != nil {
		s.Handle = d.texture.Handle()
	}
	return s
}

func (d *Drawer) applyPending() {
	select {
	case t := <-d.pending:
		d.Rebind(t)
	default:
	}
}

// Draw samples the camera texture over the whole viewport. Without a texture
// it issues no GL calls. GL errors raised by the draw are logged and counted.
func (d *Drawer) Draw() {
	if d.released {
		return
	}
	d.applyPending()
	if d.texture == nil {
		d.stats.Skipped++
		return
	}

	g := d.glctx
	d.program.Use()

	d.screen.Bind()
	if d.program.HasTexCoord() {
		a := d.program.TexCoord()
		g.EnableVertexAttribArray(a)
		g.VertexAttribPointer(a, geometry.Components, gl.FLOAT, false, 0, 0)
	}
	if d.program.HasSampler() {
		g.Uniform1i(d.program.Sampler(), textureUnit)
	}

	// Another layer may have left an index buffer bound.
	g.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gl.Buffer{})

	g.ActiveTexture(gl.TEXTURE0 + textureUnit)
	g.BindTexture(d.texture.Target(), d.texture.Texture())
	g.DrawArrays(gl.TRIANGLES, 0, geometry.VertexCount)

	if d.program.HasTexCoord() {
		g.DisableVertexAttribArray(d.program.TexCoord())
	}
	d.stats.Draws++

	if err := glerr.Check(g, "draw camera"); err != nil {
		d.stats.GLErrors++
		logging.L().Warn("background: draw failed", "err", err, "total", d.stats.GLErrors)
	}
}

// DrawLayer draws the background as the first layer of a loop frame.
// The frame delta is not used by the background.
func (d *Drawer) DrawLayer(loop.Frame) {
	d.Draw()
}

// Release deletes the program and vertex buffer. The camera texture belongs
// to the session and is left alone. Draw is a no-op afterwards.
func (d *Drawer) Release() {
	if d.released {
		return
	}
	d.released = true
	d.program.Release()
	d.screen.Release()
	d.texture = nil
}
