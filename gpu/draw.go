// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "github.com/go-gl/mathgl/mgl32"

// Drawing provides the drawing calls used by the frame loop.
// All operate on the current context with the current program.
type Drawing struct {
	GL GL
}

// Viewport sets the viewport to cover a framebuffer of the given size.
func (dr *Drawing) Viewport(width, height int) {
	dr.GL.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color buffer to the given color.
func (dr *Drawing) Clear(color mgl32.Vec4) {
	dr.GL.ClearColor(color[0], color[1], color[2], color[3])
	dr.GL.Clear(ColorBufferBit)
}

// Bind makes va the current vertex array. A nil va unbinds.
func (dr *Drawing) Bind(va *VertexArray) {
	if va == nil {
		dr.GL.BindVertexArray(0)
		return
	}
	dr.GL.BindVertexArray(va.handle)
}

// Triangles draws count vertices of the bound vertex array as
// triangles, starting at start (non-indexed).
func (dr *Drawing) Triangles(start, count int32) {
	dr.GL.DrawArrays(Triangles, start, count)
}
