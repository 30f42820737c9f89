// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements [gpu.GL] on top of the OpenGL 4.1 core profile
// bindings from github.com/go-gl/gl.
package glgpu

import (
	"fmt"
	"strings"

	"cogentcore.org/triangles/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the OpenGL function pointers for the current context.
// It must be called after a context has been made current on this thread.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("glgpu: loading OpenGL functions: %w", err)
	}
	return nil
}

// Context is the [gpu.GL] for the context current on the calling thread.
type Context struct{}

var _ gpu.GL = (*Context)(nil)

// cstr returns s as a null terminated string, as the bindings expect.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// infoLog allocates a log buffer of bufSize bytes, lets read fill it,
// and returns its contents up to the null terminator.
func infoLog(bufSize int32, read func(buf *uint8)) string {
	if bufSize <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(bufSize))
	read(gl.Str(msg))
	if i := strings.IndexByte(msg, 0); i >= 0 {
		msg = msg[:i]
	}
	return msg
}

// CreateShader creates an empty shader object of the given type.
func (c *Context) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

// ShaderSource replaces the source of the shader with src.
func (c *Context) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(cstr(src))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

// CompileShader compiles the source of the shader.
func (c *Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

// GetShaderiv returns a parameter of the shader, such as [gpu.CompileStatus].
func (c *Context) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

// GetShaderInfoLog returns the compile log of the shader, read into
// a buffer of bufSize bytes.
func (c *Context) GetShaderInfoLog(shader uint32, bufSize int32) string {
	return infoLog(bufSize, func(buf *uint8) {
		gl.GetShaderInfoLog(shader, bufSize, nil, buf)
	})
}

// DeleteShader flags the shader for deletion.
func (c *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// CreateProgram creates an empty program object.
func (c *Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachShader attaches the shader to the program.
func (c *Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

// LinkProgram links the shaders attached to the program.
func (c *Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

// GetProgramiv returns a parameter of the program, such as [gpu.LinkStatus].
func (c *Context) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

// GetProgramInfoLog returns the link log of the program, read into
// a buffer of bufSize bytes.
func (c *Context) GetProgramInfoLog(program uint32, bufSize int32) string {
	return infoLog(bufSize, func(buf *uint8) {
		gl.GetProgramInfoLog(program, bufSize, nil, buf)
	})
}

// UseProgram makes the program current.
func (c *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// GetUniformLocation returns the location of the named uniform, or -1.
func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cstr(name)))
}

// UniformMatrix4fv sets a mat4 uniform of the current program.
func (c *Context) UniformMatrix4fv(location int32, value [16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &value[0])
}

// Uniform4f sets a vec4 uniform of the current program.
func (c *Context) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

// GenVertexArray returns a new vertex array name.
func (c *Context) GenVertexArray() uint32 {
	var va uint32
	gl.GenVertexArrays(1, &va)
	return va
}

// BindVertexArray binds the vertex array. Zero unbinds.
func (c *Context) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

// GenBuffer returns a new buffer name.
func (c *Context) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

// BindBuffer binds the buffer to the target. Zero unbinds.
func (c *Context) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

// BufferData uploads data to the buffer bound to target.
func (c *Context) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

// VertexAttribPointer describes the layout of attribute index in the
// bound array buffer. offset is in bytes.
func (c *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

// EnableVertexAttribArray enables attribute index.
func (c *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// Viewport sets the viewport in framebuffer pixels.
func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// ClearColor sets the color used by Clear.
func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear clears the buffers in mask.
func (c *Context) Clear(mask uint32) {
	gl.Clear(mask)
}

// LineWidth sets the rasterized line width.
func (c *Context) LineWidth(width float32) {
	gl.LineWidth(width)
}

// PointSize sets the rasterized point size.
func (c *Context) PointSize(size float32) {
	gl.PointSize(size)
}

// DrawArrays draws count vertices starting at first.
func (c *Context) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

// GetString returns a string describing the implementation, such as
// [gpu.Renderer].
func (c *Context) GetString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}
