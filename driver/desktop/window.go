// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop opens a glfw window with an OpenGL context and runs
// an exercise in it.
package desktop

import (
	"fmt"
	"image"
	"iter"

	"cogentcore.org/triangles/events"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Options are the options for a new window.
type Options struct {
	// Size is the size of the window in screen coordinates.
	Size image.Point

	// Title is the window title.
	Title string

	// SwapInterval is the number of refreshes each Swap waits for.
	SwapInterval int

	// GLMajor and GLMinor are the version of the core profile context.
	GLMajor, GLMinor int
}

// Window is the [app.Window] for the desktop: a fixed-size glfw window
// whose OpenGL context is current on the thread that created it. Input
// callbacks run inside glfw.PollEvents and only queue events.
type Window struct {
	Glw *glfw.Window

	queue events.Queue
}

// NewWindow initializes glfw and opens a new window. It must be called
// on the main thread, which must stay locked to its OS thread.
func NewWindow(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("desktop: initializing glfw: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("desktop: creating window: %w", err)
	}
	glw.MakeContextCurrent()
	glfw.SwapInterval(opts.SwapInterval)

	w := &Window{Glw: glw}
	glw.SetKeyCallback(w.keyEvent)
	glw.SetMouseButtonCallback(w.mouseEvent)
	glw.SetCloseCallback(w.closeEvent)
	return w, nil
}

// Events polls glfw when iteration starts, then yields the events the
// callbacks queued, in order.
func (w *Window) Events() iter.Seq[events.Event] {
	return func(yield func(events.Event) bool) {
		glfw.PollEvents()
		for ev := range w.queue.Drain() {
			if !yield(ev) {
				return
			}
		}
	}
}

// ShouldClose reports whether the user or the app asked the window to close.
func (w *Window) ShouldClose() bool {
	return w.Glw.ShouldClose()
}

// SetShouldClose sets the close flag checked by ShouldClose.
func (w *Window) SetShouldClose(close bool) {
	w.Glw.SetShouldClose(close)
}

// FramebufferSize returns the size of the framebuffer in pixels,
// which differs from the window size on HiDPI screens.
func (w *Window) FramebufferSize() (width, height int) {
	return w.Glw.GetFramebufferSize()
}

// Cursor returns the cursor position in window coordinates.
func (w *Window) Cursor() mgl32.Vec2 {
	x, y := w.Glw.GetCursorPos()
	return mgl32.Vec2{float32(x), float32(y)}
}

// Swap presents the back buffer, waiting for the swap interval.
func (w *Window) Swap() {
	w.Glw.SwapBuffers()
}

// Destroy destroys the window and terminates glfw.
func (w *Window) Destroy() {
	w.Glw.Destroy()
	glfw.Terminate()
}

func (w *Window) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	typ := events.KeyDown
	if action == glfw.Release {
		typ = events.KeyUp
	}
	ev := events.NewKey(typ, glfwKeyCode(ky))
	ev.Repeat = action == glfw.Repeat
	w.queue.Send(ev)
}

func (w *Window) mouseEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	typ := events.MouseDown
	if action == glfw.Release {
		typ = events.MouseUp
	}
	w.queue.Send(events.NewMouse(typ, glfwButton(button), w.Cursor()))
}

func (w *Window) closeEvent(gw *glfw.Window) {
	w.queue.Send(&events.Close{})
}

func glfwKeyCode(ky glfw.Key) events.Codes {
	switch ky {
	case glfw.KeyEscape:
		return events.CodeEscape
	case glfw.KeyEnter:
		return events.CodeReturnEnter
	case glfw.KeySpace:
		return events.CodeSpacebar
	}
	return events.CodeUnknown
}

func glfwButton(button glfw.MouseButton) events.Buttons {
	switch button {
	case glfw.MouseButtonLeft:
		return events.Left
	case glfw.MouseButtonMiddle:
		return events.Middle
	case glfw.MouseButtonRight:
		return events.Right
	}
	return events.NoButton
}
