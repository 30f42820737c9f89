// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"testing"

	"cogentcore.org/triangles/gpu"
	"cogentcore.org/triangles/gpu/gputest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangleVertices(t *testing.T) {
	tests := []struct {
		p0, p1, p2 mgl32.Vec2
	}{
		{mgl32.Vec2{-0.65, 0.33}, mgl32.Vec2{-0.27, 0.53}, mgl32.Vec2{-0.61, 0.79}},
		{mgl32.Vec2{-50, -50}, mgl32.Vec2{50, -50}, mgl32.Vec2{0, 50}},
		{mgl32.Vec2{}, mgl32.Vec2{}, mgl32.Vec2{}},
	}
	for _, tt := range tests {
		v := gpu.TriangleVertices(tt.p0, tt.p1, tt.p2)
		assert.Equal(t, [9]float32{
			tt.p0[0], tt.p0[1], 0,
			tt.p1[0], tt.p1[1], 0,
			tt.p2[0], tt.p2[1], 0,
		}, v)
	}
}

func TestNewTriangle(t *testing.T) {
	rec := gputest.NewRecorder()
	va := gpu.NewTriangle(rec, mgl32.Vec2{-50, -50}, mgl32.Vec2{50, -50}, mgl32.Vec2{0, 50})
	require.NotNil(t, va)
	assert.NotZero(t, va.Handle())
	assert.NotZero(t, va.Buffer())
	assert.Equal(t, int32(3), va.Count())

	data := rec.Buffer(va.Buffer())
	assert.Equal(t, []float32{-50, -50, 0, 50, -50, 0, 0, 50, 0}, data)

	bd := rec.Named("BufferData")
	require.Len(t, bd, 1)
	assert.Equal(t, uint32(gpu.ArrayBuffer), bd[0].Args[0])
	assert.Equal(t, uint32(gpu.StaticDraw), bd[0].Args[2])

	ap := rec.Named("VertexAttribPointer")
	require.Len(t, ap, 1)
	assert.Equal(t, []any{uint32(0), int32(3), uint32(gpu.Float), false, int32(12), uintptr(0)}, ap[0].Args)
	assert.Equal(t, 1, rec.Count("EnableVertexAttribArray"))

	// both bindings are reset
	vas := rec.Named("BindVertexArray")
	assert.Equal(t, uint32(0), vas[len(vas)-1].Args[0])
	bufs := rec.Named("BindBuffer")
	assert.Equal(t, uint32(0), bufs[len(bufs)-1].Args[1])
}

func TestDrawing(t *testing.T) {
	rec := gputest.NewRecorder()
	dr := &gpu.Drawing{GL: rec}
	va := gpu.NewTriangle(rec, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1})
	rec.Reset()

	dr.Viewport(800, 600)
	dr.Clear(mgl32.Vec4{0.1, 0.1, 0.1, 1})
	dr.Bind(va)
	dr.Triangles(0, va.Count())
	dr.Bind(nil)

	names := make([]string, len(rec.Calls))
	for i, c := range rec.Calls {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Viewport", "ClearColor", "Clear", "BindVertexArray", "DrawArrays", "BindVertexArray"}, names)
	assert.Equal(t, []any{int32(0), int32(0), int32(800), int32(600)}, rec.Calls[0].Args)
	assert.Equal(t, []any{uint32(gpu.ColorBufferBit)}, rec.Calls[2].Args)

	require.Len(t, rec.Draws, 1)
	assert.Equal(t, va.Handle(), rec.Draws[0].VertexArray)
	assert.Equal(t, int32(3), rec.Draws[0].Count)
}
