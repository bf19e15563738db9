// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	// ErrCompile is matched by every *CompileError.
	ErrCompile = errors.New("shader: compile failed")

	// ErrLink is matched by every *LinkError.
	ErrLink = errors.New("shader: link failed")

	// ErrNoContext is returned when Build is called without a GL context.
	ErrNoContext = errors.New("shader: nil gl context")
)

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: %s stage failed to compile: %s", e.Stage, e.Log)
}

// Is reports whether target is ErrCompile.
func (e *CompileError) Is(target error) bool { return target == ErrCompile }

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader: program failed to link: %s", e.Log)
}

// Is reports whether target is ErrLink.
func (e *LinkError) Is(target error) bool { return target == ErrLink }
