// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene holds the shapes placed by the user.
package scene

import (
	"iter"
	"slices"

	"cogentcore.org/lab/base/randx"
	"github.com/go-gl/mathgl/mgl32"
)

// Shape is a solid-colored copy of the shared triangle,
// translated to Pos.
type Shape struct {
	// Pos is the position in world coordinates.
	Pos mgl32.Vec2

	// Color is the RGB color, each channel in [0, 1].
	Color mgl32.Vec3
}

// Scene is the list of shapes in insertion order, which is also
// the order in which they are drawn. It only grows.
type Scene struct {
	// Rand is the source for the colors of spawned shapes.
	Rand randx.Rand

	shapes []Shape
}

// New returns an empty scene that uses rnd to color spawned shapes.
// If rnd is nil, the global random source is used.
func New(rnd randx.Rand) *Scene {
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	return &Scene{Rand: rnd}
}

// Add appends the shape.
func (sc *Scene) Add(sh Shape) {
	sc.shapes = append(sc.shapes, sh)
}

// Spawn appends a shape at pos with a random color and returns it.
func (sc *Scene) Spawn(pos mgl32.Vec2) Shape {
	sh := Shape{Pos: pos, Color: RandomColor(sc.Rand)}
	sc.Add(sh)
	return sh
}

// Len returns the number of shapes.
func (sc *Scene) Len() int {
	return len(sc.shapes)
}

// At returns the shape at index i.
func (sc *Scene) At(i int) Shape {
	return sc.shapes[i]
}

// Shapes returns a copy of all the shapes, in order.
func (sc *Scene) Shapes() []Shape {
	return slices.Clone(sc.shapes)
}

// All returns an iterator over the shapes with their indexes, in order.
func (sc *Scene) All() iter.Seq2[int, Shape] {
	return slices.All(sc.shapes)
}

// RandomColor returns a color whose channels are drawn independently
// in hundredths, from 0 to 0.99.
func RandomColor(rnd randx.Rand) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(rnd.Intn(100)) / 100,
		float32(rnd.Intn(100)) / 100,
		float32(rnd.Intn(100)) / 100,
	}
}
