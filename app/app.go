// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app holds the state of a running exercise and its frame loop.
package app

import (
	"iter"
	"log/slog"

	"cogentcore.org/lab/base/randx"
	"cogentcore.org/triangles/events"
	"cogentcore.org/triangles/gpu"
	"cogentcore.org/triangles/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// States are the states of the frame loop.
type States int32

const (
	// Running draws a frame on each iteration.
	Running States = iota

	// Closing is final: the loop exits.
	Closing
)

func (st States) String() string {
	switch st {
	case Running:
		return "Running"
	case Closing:
		return "Closing"
	}
	return "States(?)"
}

// Window is the window the app draws into and receives events from.
type Window interface {
	// Events polls for input and returns the pending events in order.
	Events() iter.Seq[events.Event]

	// ShouldClose reports whether the window has been asked to close.
	ShouldClose() bool

	// SetShouldClose sets the close flag of the window.
	SetShouldClose(close bool)

	// FramebufferSize returns the size of the framebuffer in pixels.
	FramebufferSize() (width, height int)

	// Swap presents the rendered frame.
	Swap()
}

// App is the state of a running exercise. It is owned by a single
// thread: events are folded in and frames are drawn on the thread
// that has the GL context current.
type App struct {
	Config   *Config
	Exercise *Exercise

	// State is the state of the frame loop.
	State States

	// Scene holds the shapes that are drawn each frame.
	Scene *scene.Scene

	// Program is the flat-color shader program.
	Program *gpu.Program

	// Triangle is the geometry every shape is drawn with.
	Triangle *gpu.VertexArray

	// Projection is uploaded once, at startup.
	Projection mgl32.Mat4

	// Frames counts the frames drawn.
	Frames int

	win  Window
	draw gpu.Drawing
}

// New sets up the GPU state for the exercise and returns the app,
// ready to run. Shader failures are logged and setup continues.
func New(cfg *Config, ex *Exercise, win Window, gl gpu.GL, rnd randx.Rand) *App {
	a := &App{Config: cfg, Exercise: ex, win: win, draw: gpu.Drawing{GL: gl}}

	a.draw.Viewport(win.FramebufferSize())

	// NewProgram has already logged the details
	pr, err := gpu.NewFlatProgram(gl)
	if err != nil {
		slog.Warn("continuing with a shader program that failed to build", "program", pr.Name)
	}
	a.Program = pr
	a.Program.Use()

	a.Projection = ex.Projection(cfg.Width, cfg.Height)
	a.Program.SetMat4(gpu.ProjectionUniform, a.Projection)

	t := ex.Triangle
	a.Triangle = gpu.NewTriangle(gl, t[0], t[1], t[2])

	a.Scene = scene.New(rnd)
	for _, sh := range ex.Shapes {
		a.Scene.Add(sh)
	}
	return a
}

// Closing returns whether the loop has stopped.
func (a *App) Closing() bool {
	return a.State == Closing
}

// Close moves the loop to Closing and sets the close flag of the
// window. It reports whether the state changed: only the first
// call does anything.
func (a *App) Close() bool {
	if a.State == Closing {
		return false
	}
	a.State = Closing
	a.win.SetShouldClose(true)
	slog.Debug("app: closing", "frames", a.Frames, "shapes", a.Scene.Len())
	return true
}

// Handle folds one input event into the app state.
func (a *App) Handle(ev events.Event) {
	switch ev := ev.(type) {
	case *events.Key:
		if ev.IsPress(events.CodeEscape) {
			a.Close()
		}
	case *events.Mouse:
		if a.Exercise.SpawnOnClick && a.State == Running && ev.IsPress(events.Left) {
			sh := a.Scene.Spawn(ev.Pos)
			slog.Debug("app: spawned shape", "pos", sh.Pos, "color", sh.Color)
		}
	case *events.Close:
		a.Close()
	}
}

// Render draws all the shapes in order into the current framebuffer.
func (a *App) Render() {
	ex := a.Exercise
	a.draw.Clear(ex.Background)
	if ex.LineWidth > 0 {
		a.draw.GL.LineWidth(ex.LineWidth)
	}
	if ex.PointSize > 0 {
		a.draw.GL.PointSize(ex.PointSize)
	}

	a.Program.Use()
	a.draw.Bind(a.Triangle)
	for _, sh := range a.Scene.All() {
		a.Program.SetMat4(gpu.ModelUniform, mgl32.Translate3D(sh.Pos[0], sh.Pos[1], 0))
		a.Program.SetVec4(gpu.ColorUniform, sh.Color.Vec4(1))
		a.draw.Triangles(0, a.Triangle.Count())
	}
	a.draw.Bind(nil)
}

// Frame runs one iteration of the loop: it handles the pending events,
// renders, and presents the frame.
func (a *App) Frame() {
	for ev := range a.win.Events() {
		a.Handle(ev)
	}
	if a.win.ShouldClose() {
		a.Close()
	}
	a.Render()
	a.win.Swap()
	a.Frames++
}

// Run runs frames until the loop is Closing.
func (a *App) Run() {
	for !a.Closing() {
		a.Frame()
	}
}

// LogInfo logs the renderer and version of the GL implementation.
func LogInfo(gl gpu.GL) {
	slog.Info("Renderer", "name", gl.GetString(gpu.Renderer))
	slog.Info("OpenGL version supported", "version", gl.GetString(gpu.Version))
}
