// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geometry

import (
	"encoding/binary"
	"errors"

	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"
)

// Geometry errors.
var (
	// ErrNoContext is returned when a buffer is requested without a GL context.
	ErrNoContext = errors.New("geometry: nil gl context")

	// ErrAlloc is returned when the driver hands back no buffer name.
	ErrAlloc = errors.New("geometry: buffer allocation failed")
)

const (
	// Components is the number of floats per vertex.
	Components = 2

	// VertexCount is the number of vertices in the screen-fill triangle.
	VertexCount = 3
)

// Buffer is the GPU-resident screen-fill triangle. It is written once.
type Buffer struct {
	glctx  gl.Context
	buffer gl.Buffer
}

// NewScreenFill uploads the screen-fill triangle as a static vertex buffer.
// The ARRAY_BUFFER binding is left pointing at the new buffer.
func NewScreenFill(glctx gl.Context) (*Buffer, error) {
	if glctx == nil {
		return nil, ErrNoContext
	}
	buf := glctx.CreateBuffer()
	if buf.Value == 0 {
		return nil, ErrAlloc
	}
	glctx.BindBuffer(gl.ARRAY_BUFFER, buf)
	glctx.BufferData(gl.ARRAY_BUFFER, f32.Bytes(binary.LittleEndian, screenFill.Floats()...), gl.STATIC_DRAW)
	return &Buffer{glctx: glctx, buffer: buf}, nil
}

// GL returns the buffer object.
func (b *Buffer) GL() gl.Buffer { return b.buffer }

// Bind binds the buffer to ARRAY_BUFFER.
func (b *Buffer) Bind() {
	b.glctx.BindBuffer(gl.ARRAY_BUFFER, b.buffer)
}

// Release deletes the buffer. Safe to call more than once.
func (b *Buffer) Release() {
	if b == nil || b.buffer.Value == 0 {
		return
	}
	b.glctx.DeleteBuffer(b.buffer)
	b.buffer = gl.Buffer{}
}
