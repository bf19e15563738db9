// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package background

import "github.com/gogpu/arcam/shader"

// Option configures a Drawer.
type Option func(*options)

type options struct {
	source shader.Source
}

func defaultOptions() options {
	return options{source: CameraSource()}
}

// WithSource replaces the camera shaders, for example to apply a color
// transform. The program must read 2-component positions from the
// TexCoordAttrib input and sample unit 0.
func WithSource(src shader.Source) Option {
	return func(o *options) {
		o.source = src
	}
}
