// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hellotriangle draws a single fixed blue triangle with OpenGL.
// Press Escape to quit.
package main

import (
	"runtime"

	"cogentcore.org/core/cli"
	"cogentcore.org/triangles/app"
	"cogentcore.org/triangles/driver/desktop"
)

func init() {
	// glfw and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	opts := app.Options("hellotriangle", "Hellotriangle draws a single fixed blue triangle with OpenGL.")
	cli.Run(opts, &app.Config{}, Run)
}

// Run opens the window and draws the triangle until it is closed.
func Run(c *app.Config) error {
	return desktop.Run(c, app.HelloTriangle())
}
