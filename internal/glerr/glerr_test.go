// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glerr

import (
	"errors"
	"testing"

	"golang.org/x/mobile/gl"

	"github.com/gogpu/arcam/internal/gltest"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		queued  []gl.Enum
		wantErr bool
		want    string
	}{
		{name: "clean", queued: nil},
		{
			name:    "single",
			queued:  []gl.Enum{gl.INVALID_OPERATION},
			wantErr: true,
			want:    "gl: draw camera: INVALID_OPERATION",
		},
		{
			name:    "several",
			queued:  []gl.Enum{gl.INVALID_ENUM, gl.OUT_OF_MEMORY},
			wantErr: true,
			want:    "gl: draw camera: INVALID_ENUM, OUT_OF_MEMORY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gltest.New()
			g.Errors = tt.queued
			err := Check(g, "draw camera")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var ce *CallError
			if !errors.As(err, &ce) {
				t.Fatalf("Check() error type = %T, want *CallError", err)
			}
			if len(ce.Codes) != len(tt.queued) {
				t.Errorf("Codes = %v, want %v", ce.Codes, tt.queued)
			}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestCheckBounded(t *testing.T) {
	g := gltest.New()
	for range 20 {
		g.Errors = append(g.Errors, gl.INVALID_VALUE)
	}
	err := Check(g, "lost")
	var ce *CallError
	if !errors.As(err, &ce) {
		t.Fatalf("Check() = %v, want *CallError", err)
	}
	if len(ce.Codes) != maxCodes {
		t.Errorf("len(Codes) = %d, want %d", len(ce.Codes), maxCodes)
	}
}

func TestNameUnknown(t *testing.T) {
	if got := Name(gl.Enum(0x1234)); got != "0x1234" {
		t.Errorf("Name(0x1234) = %q", got)
	}
}
