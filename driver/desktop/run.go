// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/triangles/app"
	"cogentcore.org/triangles/gpu/glgpu"
)

// newWindow opens the window for Run.
var newWindow = NewWindow

// Run opens a window for the exercise and runs its frame loop until
// the window is closed. Only failing to open the window is an error,
// and it is returned unlogged. GL loading and shader failures are
// logged and the loop runs anyway.
func Run(cfg *app.Config, ex *app.Exercise) error {
	cfg.ApplyLogLevel()

	win, err := newWindow(Options{
		Size:         image.Pt(cfg.Width, cfg.Height),
		Title:        ex.Title,
		SwapInterval: cfg.SwapInterval,
		GLMajor:      4,
		GLMinor:      1,
	})
	if err != nil {
		// cli prints it and exits
		return err
	}
	defer win.Destroy()

	// GL calls are undefined if this fails, but the loop still runs
	errors.Log(glgpu.Init())

	gl := &glgpu.Context{}
	app.LogInfo(gl)

	a := app.New(cfg, ex, win, gl, cfg.Rand())
	a.Run()
	return nil
}
