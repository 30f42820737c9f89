// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu builds shader programs and geometry on top of a minimal
// OpenGL interface, so that the same code runs against a real context
// (see package glgpu) or a recording stand-in (see package gputest).
package gpu

// OpenGL enum values used through the GL interface.
const (
	False = 0
	True  = 1

	VertexShader   = 0x8B31
	FragmentShader = 0x8B30

	CompileStatus = 0x8B81
	LinkStatus    = 0x8B82

	ArrayBuffer = 0x8892
	StaticDraw  = 0x88E4

	Float     = 0x1406
	Triangles = 0x0004

	ColorBufferBit = 0x00004000

	Vendor   = 0x1F00
	Renderer = 0x1F01
	Version  = 0x1F02
)

// InfoLogSize is the size of the buffer used to read back
// shader and program diagnostics from the driver.
const InfoLogSize = 512

// GL is the subset of OpenGL entry points used by this module.
// All methods operate on the context that is current on the calling thread.
type GL interface {
	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	// GetShaderInfoLog returns at most bufSize-1 bytes of the shader's info log.
	GetShaderInfoLog(shader uint32, bufSize int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	// GetProgramInfoLog returns at most bufSize-1 bytes of the program's info log.
	GetProgramInfoLog(program uint32, bufSize int32) string
	UseProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	UniformMatrix4fv(location int32, value [16]float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	LineWidth(width float32)
	PointSize(size float32)
	DrawArrays(mode uint32, first, count int32)

	GetString(name uint32) string
}
