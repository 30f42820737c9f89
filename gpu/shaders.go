// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	_ "embed"
)

// FlatVertexSource transforms attribute 0 (position) by the
// projection and model uniforms.
//
//go:embed shaders/flat.vert
var FlatVertexSource string

// FlatFragmentSource fills every fragment with the inputColor uniform.
//
//go:embed shaders/flat.frag
var FlatFragmentSource string

// Names of the uniforms used by the flat shaders.
const (
	ProjectionUniform = "projection"
	ModelUniform      = "model"
	ColorUniform      = "inputColor"
)

// NewFlatProgram builds the flat-color program from the embedded sources.
func NewFlatProgram(gl GL) (*Program, error) {
	return NewProgram(gl, "flat", FlatVertexSource, FlatFragmentSource)
}
