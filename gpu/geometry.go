// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "github.com/go-gl/mathgl/mgl32"

// PositionAttrib is the attribute index of the vertex position.
const PositionAttrib = 0

// floatSize is the size in bytes of a float32.
const floatSize = 4

// TriangleVertices returns the vertex data for a triangle in the z = 0
// plane: three positions of 3 floats each.
func TriangleVertices(p0, p1, p2 mgl32.Vec2) [9]float32 {
	return [9]float32{
		p0[0], p0[1], 0,
		p1[0], p1[1], 0,
		p2[0], p2[1], 0,
	}
}

// VertexArray is geometry uploaded to the GPU together with the
// vertex array object that describes its layout.
type VertexArray struct {
	handle uint32
	buffer uint32

	// Vertices is the data that was uploaded.
	Vertices []float32
}

// NewTriangle uploads a triangle through the given points as static
// vertex data, with one 3-float position attribute at index 0.
func NewTriangle(gl GL, p0, p1, p2 mgl32.Vec2) *VertexArray {
	verts := TriangleVertices(p0, p1, p2)
	va := &VertexArray{Vertices: verts[:]}

	va.buffer = gl.GenBuffer()
	va.handle = gl.GenVertexArray()

	gl.BindVertexArray(va.handle)
	gl.BindBuffer(ArrayBuffer, va.buffer)
	gl.BufferData(ArrayBuffer, va.Vertices, StaticDraw)

	gl.VertexAttribPointer(PositionAttrib, 3, Float, false, 3*floatSize, 0)
	gl.EnableVertexAttribArray(PositionAttrib)

	gl.BindBuffer(ArrayBuffer, 0)
	gl.BindVertexArray(0)
	return va
}

// Handle returns the handle of the vertex array object.
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// Buffer returns the handle of the vertex buffer.
func (va *VertexArray) Buffer() uint32 {
	return va.buffer
}

// Count returns the number of vertices.
func (va *VertexArray) Count() int32 {
	return int32(len(va.Vertices) / 3)
}
