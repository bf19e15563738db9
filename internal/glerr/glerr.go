// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glerr detects GL errors raised by the calls preceding a check.
package glerr

import (
	"fmt"
	"strings"

	"golang.org/x/mobile/gl"
)

// maxCodes bounds how many error flags Check drains. A lost context may
// report errors forever.
const maxCodes = 8

// CallError reports the GL error flags set after an operation.
type CallError struct {
	Op    string
	Codes []gl.Enum
}

func (e *CallError) Error() string {
	names := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		names[i] = Name(c)
	}
	return fmt.Sprintf("gl: %s: %s", e.Op, strings.Join(names, ", "))
}

// Check drains the GL error flags and returns a *CallError naming op if any
// were set.
func Check(glctx gl.Context, op string) error {
	var codes []gl.Enum
	for range maxCodes {
		code := glctx.GetError()
		if code == gl.NO_ERROR {
			break
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil
	}
	return &CallError{Op: op, Codes: codes}
}

// Name returns the symbolic name of a GL error code.
func Name(code gl.Enum) string {
	switch code {
	case gl.NO_ERROR:
		return "NO_ERROR"
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04x", uint32(code))
	}
}
