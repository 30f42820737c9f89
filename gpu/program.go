// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/mathgl/mgl32"
)

// LinkError reports a program that failed to link.
type LinkError struct {
	Name string

	// Log is the diagnostic text provided by the driver.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gpu: program %q failed to link:\n%s", e.Name, e.Log)
}

// Program is a linked pair of vertex and fragment shaders.
type Program struct {
	// Name is used in diagnostics.
	Name string

	gl     GL
	handle uint32

	// uniform locations by name, -1 for names the program does not have
	unis map[string]int32
}

// NewProgram compiles the vertex and fragment sources, links them
// into a new program, and releases the intermediate shader objects.
// Compile and link failures are logged as they happen and returned
// joined together, but the program is returned in all cases: it may
// be unusable if the error is non-nil.
func NewProgram(gl GL, name, vertSrc, fragSrc string) (*Program, error) {
	vs, verr := compileShader(gl, VertexStage, vertSrc)
	fs, ferr := compileShader(gl, FragmentStage, fragSrc)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)

	var lerr error
	if gl.GetProgramiv(handle, LinkStatus) == False {
		msg := gl.GetProgramInfoLog(handle, InfoLogSize)
		lerr = errors.Log(&LinkError{Name: name, Log: msg})
	}

	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	pr := &Program{Name: name, gl: gl, handle: handle, unis: map[string]int32{}}
	return pr, errors.Join(verr, ferr, lerr)
}

// Handle returns the GPU handle of the program.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Use makes this the active program.
func (pr *Program) Use() {
	pr.gl.UseProgram(pr.handle)
}

// UniformLocation returns the location of the named uniform, or -1 if the
// program does not have it. Locations are looked up once and cached.
func (pr *Program) UniformLocation(name string) int32 {
	if loc, ok := pr.unis[name]; ok {
		return loc
	}
	loc := pr.gl.GetUniformLocation(pr.handle, name)
	if loc < 0 {
		slog.Debug("gpu: uniform not found", "program", pr.Name, "uniform", name)
	}
	pr.unis[name] = loc
	return loc
}

// SetMat4 sets the named mat4 uniform. The program must be in use.
func (pr *Program) SetMat4(name string, m mgl32.Mat4) {
	loc := pr.UniformLocation(name)
	if loc < 0 {
		return
	}
	pr.gl.UniformMatrix4fv(loc, m)
}

// SetVec4 sets the named vec4 uniform. The program must be in use.
func (pr *Program) SetVec4(name string, v mgl32.Vec4) {
	loc := pr.UniformLocation(name)
	if loc < 0 {
		return
	}
	pr.gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
}
