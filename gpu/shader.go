// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// ShaderTypes is the pipeline stage of a shader.
type ShaderTypes uint32

const (
	VertexStage   ShaderTypes = VertexShader
	FragmentStage ShaderTypes = FragmentShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return fmt.Sprintf("ShaderTypes(%#x)", uint32(st))
}

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Type ShaderTypes

	// Log is the diagnostic text provided by the driver.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gpu: %v shader failed to compile:\n%s", e.Type, e.Log)
}

// compileShader compiles src as a shader of the given type and returns
// its handle. On failure the error is logged and the handle is still
// returned, so that the caller can go on and release it.
func compileShader(gl GL, typ ShaderTypes, src string) (uint32, error) {
	handle := gl.CreateShader(uint32(typ))
	gl.ShaderSource(handle, src)
	gl.CompileShader(handle)

	if gl.GetShaderiv(handle, CompileStatus) == False {
		msg := gl.GetShaderInfoLog(handle, InfoLogSize)
		return handle, errors.Log(&CompileError{Type: typ, Log: msg})
	}
	return handle, nil
}
