// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command clicktriangles adds a randomly colored triangle wherever the
// left mouse button is clicked. Press Escape to quit.
package main

import (
	"runtime"

	"cogentcore.org/core/cli"
	"cogentcore.org/triangles/app"
	"cogentcore.org/triangles/driver/desktop"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := app.Options("clicktriangles", "Clicktriangles adds a randomly colored triangle at each left click.")
	cli.Run(opts, &app.Config{}, Run)
}

// Run opens the window and runs the frame loop until it is closed.
func Run(c *app.Config) error {
	return desktop.Run(c, app.ClickTriangles())
}
