// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"cogentcore.org/triangles/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// Exercise describes what one of the programs draws and how it
// responds to input.
type Exercise struct {

	// Title is the window title.
	Title string

	// Projection returns the projection matrix for a window of the given size.
	Projection func(width, height int) mgl32.Mat4

	// Triangle are the corners of the triangle that every shape is drawn with.
	Triangle [3]mgl32.Vec2

	// Shapes are placed in the scene at startup.
	Shapes []scene.Shape

	// Background is the clear color.
	Background mgl32.Vec4

	// SpawnOnClick makes a left click add a shape at the cursor.
	SpawnOnClick bool

	// LineWidth and PointSize are applied each frame when non-zero.
	LineWidth float32
	PointSize float32
}

// HelloTriangle is the first exercise: a single fixed blue triangle in
// normalized device coordinates.
func HelloTriangle() *Exercise {
	return &Exercise{
		Title: "Hello Triangle",
		Projection: func(width, height int) mgl32.Mat4 {
			return mgl32.Ortho(-1, 1, -1, 1, -1, 1)
		},
		Triangle: [3]mgl32.Vec2{{-0.65, 0.33}, {-0.27, 0.53}, {-0.61, 0.79}},
		Shapes: []scene.Shape{
			{Pos: mgl32.Vec2{0, 0}, Color: mgl32.Vec3{0, 0, 1}},
		},
		Background: mgl32.Vec4{0, 0, 0, 1},
		LineWidth:  10,
		PointSize:  20,
	}
}

// ClickTriangles is the second exercise: every left click adds a
// randomly colored triangle at the cursor. It works in window pixel
// coordinates, with y growing downward like the cursor position.
func ClickTriangles() *Exercise {
	return &Exercise{
		Title: "Click Triangles",
		Projection: func(width, height int) mgl32.Mat4 {
			return mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
		},
		Triangle:     [3]mgl32.Vec2{{-50, -50}, {50, -50}, {0, 50}},
		Background:   mgl32.Vec4{0.1, 0.1, 0.1, 1},
		SpawnOnClick: true,
	}
}
