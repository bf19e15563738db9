// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package background

import (
	_ "embed"

	"github.com/gogpu/arcam/shader"
)

//go:embed shaders/camera.vert
var vertexShaderSource string

//go:embed shaders/camera.frag
var fragmentShaderSource string

// Names the camera shaders use for their inputs.
const (
	TexCoordAttrib = "aTextureCoord"
	SamplerUniform = "uSampler"
)

// CameraSource returns the shader program that samples the camera texture
// over the screen-fill triangle.
func CameraSource() shader.Source {
	return shader.Source{
		Vertex:         vertexShaderSource,
		Fragment:       fragmentShaderSource,
		TexCoordAttrib: TexCoordAttrib,
		SamplerUniform: SamplerUniform,
	}
}
