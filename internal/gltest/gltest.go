// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gltest provides a recording fake of gl.Context for unit tests.
//
// GL records every call it implements, hands out increasing object names and
// can be told to fail shader compilation, program linking or to report GL
// errors. Methods of gl.Context that GL does not implement panic through the
// embedded nil interface, which makes unexpected GL usage loud in tests.
package gltest

import (
	"slices"

	"golang.org/x/mobile/gl"
)

// Call is one recorded GL entry point invocation.
type Call struct {
	Name string
	Args []any
}

// GL is a fake gl.Context.
type GL struct {
	gl.Context

	// Calls holds every recorded call in order.
	Calls []Call

	// CompileLog maps a shader type (gl.VERTEX_SHADER, gl.FRAGMENT_SHADER) to
	// a compiler log. Shaders of that type fail to compile.
	CompileLog map[gl.Enum]string

	// LinkLog, when non-empty, makes LinkProgram fail with this log.
	LinkLog string

	// MissingAttribs and MissingUniforms list names reported as not present.
	MissingAttribs  map[string]bool
	MissingUniforms map[string]bool

	// Errors is a queue returned by GetError before gl.NO_ERROR.
	Errors []gl.Enum

	next     uint32
	shaders  map[uint32]gl.Enum
	textures map[uint32]bool
	linked   map[uint32]bool
	locs     map[string]int
}

// New returns an empty fake context.
func New() *GL {
	return &GL{
		shaders:  make(map[uint32]gl.Enum),
		textures: make(map[uint32]bool),
		linked:   make(map[uint32]bool),
		locs:     make(map[string]int),
	}
}

func (g *GL) record(name string, args ...any) {
	g.Calls = append(g.Calls, Call{Name: name, Args: args})
}

func (g *GL) name() uint32 {
	g.next++
	return g.next
}

// Count reports how many times the named call was recorded.
func (g *GL) Count(name string) int {
	n := 0
	for _, c := range g.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent call with the given name.
func (g *GL) Last(name string) (Call, bool) {
	for i := len(g.Calls) - 1; i >= 0; i-- {
		if g.Calls[i].Name == name {
			return g.Calls[i], true
		}
	}
	return Call{}, false
}

// Names returns the recorded call names in order.
func (g *GL) Names() []string {
	names := make([]string, len(g.Calls))
	for i, c := range g.Calls {
		names[i] = c.Name
	}
	return names
}

// Index returns the position of the first call named name, or -1.
func (g *GL) Index(name string) int {
	return slices.Index(g.Names(), name)
}

// Reset forgets recorded calls but keeps created objects.
func (g *GL) Reset() {
	g.Calls = nil
}

// MarkTexture registers name as a live texture, as if another component
// sharing the context had created it.
func (g *GL) MarkTexture(name uint32) {
	g.textures[name] = true
}

func (g *GL) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader{Value: g.name()}
	g.shaders[s.Value] = ty
	g.record("CreateShader", ty)
	return s
}

func (g *GL) ShaderSource(s gl.Shader, src string) {
	g.record("ShaderSource", s, src)
}

func (g *GL) CompileShader(s gl.Shader) {
	g.record("CompileShader", s)
}

func (g *GL) GetShaderi(s gl.Shader, pname gl.Enum) int {
	g.record("GetShaderi", s, pname)
	if pname != gl.COMPILE_STATUS {
		return 0
	}
	if _, fail := g.CompileLog[g.shaders[s.Value]]; fail {
		return 0
	}
	return 1
}

func (g *GL) GetShaderInfoLog(s gl.Shader) string {
	g.record("GetShaderInfoLog", s)
	return g.CompileLog[g.shaders[s.Value]]
}

func (g *GL) DeleteShader(s gl.Shader) {
	g.record("DeleteShader", s)
	delete(g.shaders, s.Value)
}

func (g *GL) CreateProgram() gl.Program {
	p := gl.Program{Init: true, Value: g.name()}
	g.record("CreateProgram", p)
	return p
}

func (g *GL) AttachShader(p gl.Program, s gl.Shader) {
	g.record("AttachShader", p, s)
}

func (g *GL) LinkProgram(p gl.Program) {
	g.record("LinkProgram", p)
	g.linked[p.Value] = g.LinkLog == ""
}

func (g *GL) GetProgrami(p gl.Program, pname gl.Enum) int {
	g.record("GetProgrami", p, pname)
	if pname == gl.LINK_STATUS && g.linked[p.Value] {
		return 1
	}
	return 0
}

func (g *GL) GetProgramInfoLog(p gl.Program) string {
	g.record("GetProgramInfoLog", p)
	return g.LinkLog
}

func (g *GL) DeleteProgram(p gl.Program) {
	g.record("DeleteProgram", p)
	delete(g.linked, p.Value)
}

func (g *GL) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	g.record("GetAttribLocation", p, name)
	if g.MissingAttribs[name] {
		// x/mobile reports -1 converted to an unsigned value.
		return gl.Attrib{Value: ^uint(0)}
	}
	return gl.Attrib{Value: uint(g.location(name))}
}

func (g *GL) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	g.record("GetUniformLocation", p, name)
	if g.MissingUniforms[name] {
		return gl.Uniform{Value: -1}
	}
	return gl.Uniform{Value: int32(g.location(name))}
}

func (g *GL) location(name string) int {
	if l, ok := g.locs[name]; ok {
		return l
	}
	l := len(g.locs)
	g.locs[name] = l
	return l
}

func (g *GL) UseProgram(p gl.Program) { g.record("UseProgram", p) }

func (g *GL) CreateBuffer() gl.Buffer {
	b := gl.Buffer{Value: g.name()}
	g.record("CreateBuffer", b)
	return b
}

func (g *GL) BindBuffer(target gl.Enum, b gl.Buffer) { g.record("BindBuffer", target, b) }

func (g *GL) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	g.record("BufferData", target, slices.Clone(src), usage)
}

func (g *GL) DeleteBuffer(b gl.Buffer) { g.record("DeleteBuffer", b) }

func (g *GL) EnableVertexAttribArray(a gl.Attrib) { g.record("EnableVertexAttribArray", a) }

func (g *GL) DisableVertexAttribArray(a gl.Attrib) { g.record("DisableVertexAttribArray", a) }

func (g *GL) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	g.record("VertexAttribPointer", dst, size, ty, normalized, stride, offset)
}

func (g *GL) Uniform1i(dst gl.Uniform, v int) { g.record("Uniform1i", dst, v) }

func (g *GL) ActiveTexture(texture gl.Enum) { g.record("ActiveTexture", texture) }

func (g *GL) BindTexture(target gl.Enum, t gl.Texture) { g.record("BindTexture", target, t) }

func (g *GL) CreateTexture() gl.Texture {
	t := gl.Texture{Value: g.name()}
	g.textures[t.Value] = true
	g.record("CreateTexture", t)
	return t
}

func (g *GL) IsTexture(t gl.Texture) bool {
	g.record("IsTexture", t)
	return g.textures[t.Value]
}

func (g *GL) DeleteTexture(t gl.Texture) {
	g.record("DeleteTexture", t)
	delete(g.textures, t.Value)
}

func (g *GL) TexParameteri(target, pname gl.Enum, param int) {
	g.record("TexParameteri", target, pname, param)
}

func (g *GL) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format gl.Enum, ty gl.Enum, data []byte) {
	g.record("TexImage2D", target, level, internalFormat, width, height, format, ty, len(data))
}

func (g *GL) DrawArrays(mode gl.Enum, first, count int) { g.record("DrawArrays", mode, first, count) }

func (g *GL) GetError() gl.Enum {
	g.record("GetError")
	if len(g.Errors) == 0 {
		return gl.NO_ERROR
	}
	e := g.Errors[0]
	g.Errors = g.Errors[1:]
	return e
}

func (g *GL) ClearColor(red, green, blue, alpha float32) {
	g.record("ClearColor", red, green, blue, alpha)
}

func (g *GL) ClearDepthf(d float32) { g.record("ClearDepthf", d) }

func (g *GL) Clear(mask gl.Enum) { g.record("Clear", mask) }

func (g *GL) Enable(capability gl.Enum) { g.record("Enable", capability) }

func (g *GL) DepthFunc(fn gl.Enum) { g.record("DepthFunc", fn) }

func (g *GL) Viewport(x, y, width, height int) { g.record("Viewport", x, y, width, height) }

func (g *GL) Flush() { g.record("Flush") }
