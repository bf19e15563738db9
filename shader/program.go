// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shader compiles and links GLSL ES programs.
//
// Build compiles the vertex and fragment stages, links them and resolves the
// texture-coordinate attribute and sampler uniform the background pass needs.
// A location the driver optimized away is not an error: Program reports it
// through HasTexCoord and HasSampler and callers skip the matching GL calls.
package shader

import (
	"strings"

	"golang.org/x/mobile/gl"

	"github.com/gogpu/arcam/internal/logging"
)

// Stage identifies a programmable pipeline stage.
type Stage uint8

const (
	// StageVertex is the vertex shader stage.
	StageVertex Stage = iota
	// StageFragment is the fragment shader stage.
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

func (s Stage) glType() gl.Enum {
	if s == StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// Source describes a program to build.
type Source struct {
	Vertex   string
	Fragment string

	// TexCoordAttrib is the name of the 2-component texture-coordinate input.
	TexCoordAttrib string

	// SamplerUniform is the name of the sampler2D uniform.
	SamplerUniform string
}

// Program is a linked GL program with its resolved locations.
// It is immutable after Build.
type Program struct {
	glctx   gl.Context
	program gl.Program

	texCoord    gl.Attrib
	hasTexCoord bool
	sampler     gl.Uniform
	hasSampler  bool
}

// Build compiles and links src on glctx.
//
// On failure no GL object created by Build survives: the returned error is a
// *CompileError or *LinkError carrying the driver's info log.
func Build(glctx gl.Context, src Source) (*Program, error) {
	if glctx == nil {
		return nil, ErrNoContext
	}

	vs, err := compile(glctx, StageVertex, src.Vertex)
	if err != nil {
		return nil, err
	}
	fs, err := compile(glctx, StageFragment, src.Fragment)
	if err != nil {
		glctx.DeleteShader(vs)
		return nil, err
	}

	program := glctx.CreateProgram()
	glctx.AttachShader(program, vs)
	glctx.AttachShader(program, fs)
	glctx.LinkProgram(program)

	// Shaders are no longer needed once the program is linked or has failed.
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)

	if glctx.GetProgrami(program, gl.LINK_STATUS) == 0 {
		log := strings.TrimSpace(glctx.GetProgramInfoLog(program))
		glctx.DeleteProgram(program)
		return nil, &LinkError{Log: log}
	}

	p := &Program{glctx: glctx, program: program}
	if src.TexCoordAttrib != "" {
		p.texCoord = glctx.GetAttribLocation(program, src.TexCoordAttrib)
		p.hasTexCoord = attribPresent(p.texCoord)
	}
	if src.SamplerUniform != "" {
		p.sampler = glctx.GetUniformLocation(program, src.SamplerUniform)
		p.hasSampler = p.sampler.Value >= 0
	}

	logging.L().Debug("shader: program linked",
		"program", program.Value,
		"texCoord", src.TexCoordAttrib, "texCoordPresent", p.hasTexCoord,
		"sampler", src.SamplerUniform, "samplerPresent", p.hasSampler)

	return p, nil
}

func compile(glctx gl.Context, stage Stage, src string) (gl.Shader, error) {
	s := glctx.CreateShader(stage.glType())
	glctx.ShaderSource(s, src)
	glctx.CompileShader(s)
	if glctx.GetShaderi(s, gl.COMPILE_STATUS) == 0 {
		log := strings.TrimSpace(glctx.GetShaderInfoLog(s))
		glctx.DeleteShader(s)
		return gl.Shader{}, &CompileError{Stage: stage, Log: log}
	}
	return s, nil
}

// attribPresent reports whether a location returned by GetAttribLocation is
// valid. x/mobile hands back -1 as an unsigned value.
func attribPresent(a gl.Attrib) bool {
	return int32(a.Value) >= 0 //nolint:gosec // truncation restores the GLint sign
}

// GL returns the program object.
func (p *Program) GL() gl.Program { return p.program }

// TexCoord returns the texture-coordinate attribute location.
func (p *Program) TexCoord() gl.Attrib { return p.texCoord }

// HasTexCoord reports whether the texture-coordinate attribute is active.
func (p *Program) HasTexCoord() bool { return p.hasTexCoord }

// Sampler returns the sampler uniform location.
func (p *Program) Sampler() gl.Uniform { return p.sampler }

// HasSampler reports whether the sampler uniform is active.
func (p *Program) HasSampler() bool { return p.hasSampler }

// Use makes the program current.
func (p *Program) Use() {
	p.glctx.UseProgram(p.program)
}

// Release deletes the program. Safe to call more than once.
func (p *Program) Release() {
	if p == nil || !p.program.Init {
		return
	}
	p.glctx.DeleteProgram(p.program)
	p.program = gl.Program{}
}
