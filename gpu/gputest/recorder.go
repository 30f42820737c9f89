// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides an in-memory [gpu.GL] for tests that
// records the calls made to it instead of talking to a driver.
package gputest

import (
	"strings"

	"cogentcore.org/triangles/gpu"
)

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []any
}

// Draw is a recorded DrawArrays call along with the state it used.
type Draw struct {
	Program     uint32
	VertexArray uint32
	First       int32
	Count       int32

	// Uniforms holds the values of all uniforms set on the program
	// at the time of the draw, by name.
	Uniforms map[string][]float32
}

type shader struct {
	typ      uint32
	src      string
	compiled bool
	log      string
	deleted  bool
}

type program struct {
	shaders  []uint32
	linked   bool
	log      string
	uniforms map[string][]float32
}

// Recorder is a [gpu.GL] that hands out handles, stores uploaded data
// and uniform values, and records every call in order.
// The zero value is ready to use: everything compiles and links.
type Recorder struct {
	// Calls are all the calls made, in order.
	Calls []Call

	// Draws are all the DrawArrays calls made, in order.
	Draws []Draw

	// CompileLog, if set, is called on each CompileShader.
	// A non-empty return value makes the compile fail with that log.
	CompileLog func(xtype uint32, src string) string

	// LinkLog, if non-empty, makes every LinkProgram fail with that log.
	LinkLog string

	// MissingUniforms are uniform names that report location -1.
	MissingUniforms []string

	// Strings are returned by GetString.
	Strings map[uint32]string

	handles  uint32
	shaders  map[uint32]*shader
	programs map[uint32]*program
	buffers  map[uint32][]float32
	names    map[int32]string
	locs     map[string]int32

	program     uint32
	vertexArray uint32
	arrayBuffer uint32
}

var _ gpu.GL = (*Recorder)(nil)

// NewRecorder returns a new Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) init() {
	if r.shaders != nil {
		return
	}
	r.shaders = map[uint32]*shader{}
	r.programs = map[uint32]*program{}
	r.buffers = map[uint32][]float32{}
	r.names = map[int32]string{}
	r.locs = map[string]int32{}
}

func (r *Recorder) newHandle() uint32 {
	r.init()
	r.handles++
	return r.handles
}

// Count returns the number of recorded calls with the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Named returns the recorded calls with the given name, in order.
func (r *Recorder) Named(name string) []Call {
	var cs []Call
	for _, c := range r.Calls {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// Reset forgets the recorded calls and draws, keeping all objects.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Draws = nil
}

// Buffer returns the data last uploaded to the given buffer.
func (r *Recorder) Buffer(buffer uint32) []float32 {
	return r.buffers[buffer]
}

// ShaderDeleted returns whether the given shader has been deleted.
func (r *Recorder) ShaderDeleted(sh uint32) bool {
	s, ok := r.shaders[sh]
	return ok && s.deleted
}

// Uniform returns the value last set for the named uniform on the
// given program, or nil.
func (r *Recorder) Uniform(prog uint32, name string) []float32 {
	p, ok := r.programs[prog]
	if !ok {
		return nil
	}
	return p.uniforms[name]
}

func (r *Recorder) CreateShader(xtype uint32) uint32 {
	h := r.newHandle()
	r.shaders[h] = &shader{typ: xtype}
	r.record("CreateShader", xtype)
	return h
}

func (r *Recorder) ShaderSource(sh uint32, src string) {
	if s, ok := r.shaders[sh]; ok {
		s.src = src
	}
	r.record("ShaderSource", sh, src)
}

func (r *Recorder) CompileShader(sh uint32) {
	r.record("CompileShader", sh)
	s, ok := r.shaders[sh]
	if !ok {
		return
	}
	s.compiled = true
	if r.CompileLog != nil {
		if msg := r.CompileLog(s.typ, s.src); msg != "" {
			s.compiled = false
			s.log = msg
		}
	}
}

func (r *Recorder) GetShaderiv(sh uint32, pname uint32) int32 {
	s, ok := r.shaders[sh]
	if !ok || pname != gpu.CompileStatus {
		return 0
	}
	if s.compiled {
		return gpu.True
	}
	return gpu.False
}

func (r *Recorder) GetShaderInfoLog(sh uint32, bufSize int32) string {
	s, ok := r.shaders[sh]
	if !ok {
		return ""
	}
	return truncate(s.log, bufSize)
}

func (r *Recorder) DeleteShader(sh uint32) {
	if s, ok := r.shaders[sh]; ok {
		s.deleted = true
	}
	r.record("DeleteShader", sh)
}

func (r *Recorder) CreateProgram() uint32 {
	h := r.newHandle()
	r.programs[h] = &program{uniforms: map[string][]float32{}}
	r.record("CreateProgram")
	return h
}

func (r *Recorder) AttachShader(prog, sh uint32) {
	if p, ok := r.programs[prog]; ok {
		p.shaders = append(p.shaders, sh)
	}
	r.record("AttachShader", prog, sh)
}

func (r *Recorder) LinkProgram(prog uint32) {
	r.record("LinkProgram", prog)
	p, ok := r.programs[prog]
	if !ok {
		return
	}
	if r.LinkLog != "" {
		p.log = r.LinkLog
		return
	}
	for _, sh := range p.shaders {
		if s := r.shaders[sh]; s == nil || !s.compiled {
			p.log = "error: attached shader is not compiled"
			return
		}
	}
	p.linked = true
}

func (r *Recorder) GetProgramiv(prog uint32, pname uint32) int32 {
	p, ok := r.programs[prog]
	if !ok || pname != gpu.LinkStatus {
		return 0
	}
	if p.linked {
		return gpu.True
	}
	return gpu.False
}

func (r *Recorder) GetProgramInfoLog(prog uint32, bufSize int32) string {
	p, ok := r.programs[prog]
	if !ok {
		return ""
	}
	return truncate(p.log, bufSize)
}

func (r *Recorder) UseProgram(prog uint32) {
	r.program = prog
	r.record("UseProgram", prog)
}

func (r *Recorder) GetUniformLocation(prog uint32, name string) int32 {
	r.record("GetUniformLocation", prog, name)
	for _, m := range r.MissingUniforms {
		if m == name {
			return -1
		}
	}
	r.init()
	loc, ok := r.locs[name]
	if !ok {
		loc = int32(len(r.locs))
		r.locs[name] = loc
		r.names[loc] = name
	}
	return loc
}

func (r *Recorder) setUniform(call string, loc int32, v []float32) {
	name := r.names[loc]
	r.record(call, name, v)
	if p, ok := r.programs[r.program]; ok {
		p.uniforms[name] = v
	}
}

func (r *Recorder) UniformMatrix4fv(loc int32, value [16]float32) {
	r.setUniform("UniformMatrix4fv", loc, value[:])
}

func (r *Recorder) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	r.setUniform("Uniform4f", loc, []float32{v0, v1, v2, v3})
}

func (r *Recorder) GenVertexArray() uint32 {
	h := r.newHandle()
	r.record("GenVertexArray")
	return h
}

func (r *Recorder) BindVertexArray(array uint32) {
	r.vertexArray = array
	r.record("BindVertexArray", array)
}

func (r *Recorder) GenBuffer() uint32 {
	h := r.newHandle()
	r.record("GenBuffer")
	return h
}

func (r *Recorder) BindBuffer(target, buffer uint32) {
	if target == gpu.ArrayBuffer {
		r.arrayBuffer = buffer
	}
	r.record("BindBuffer", target, buffer)
}

func (r *Recorder) BufferData(target uint32, data []float32, usage uint32) {
	cp := make([]float32, len(data))
	copy(cp, data)
	if target == gpu.ArrayBuffer && r.arrayBuffer != 0 {
		r.buffers[r.arrayBuffer] = cp
	}
	r.record("BufferData", target, cp, usage)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	r.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask uint32) {
	r.record("Clear", mask)
}

func (r *Recorder) LineWidth(width float32) {
	r.record("LineWidth", width)
}

func (r *Recorder) PointSize(size float32) {
	r.record("PointSize", size)
}

func (r *Recorder) DrawArrays(mode uint32, first, count int32) {
	r.record("DrawArrays", mode, first, count)
	d := Draw{Program: r.program, VertexArray: r.vertexArray, First: first, Count: count, Uniforms: map[string][]float32{}}
	if p, ok := r.programs[r.program]; ok {
		for k, v := range p.uniforms {
			d.Uniforms[k] = v
		}
	}
	r.Draws = append(r.Draws, d)
}

func (r *Recorder) GetString(name uint32) string {
	r.record("GetString", name)
	return r.Strings[name]
}

// truncate mimics a fixed-size, null-terminated info log buffer.
func truncate(s string, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	if int32(len(s)) > bufSize-1 {
		s = s[:bufSize-1]
	}
	return strings.TrimRight(s, "\x00")
}
