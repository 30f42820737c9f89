// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"log/slog"
	"time"

	"cogentcore.org/core/cli"
	"cogentcore.org/lab/base/randx"
)

// Config is the configuration shared by both programs.
// It is filled in from the command line by cli; the defaults
// are what the programs use when run without arguments.
type Config struct {

	// Width is the window width in pixels.
	Width int `default:"800"`

	// Height is the window height in pixels.
	Height int `default:"600"`

	// SwapInterval is the number of display refreshes to wait for
	// on each buffer swap: 1 is vsync, 0 presents immediately.
	SwapInterval int `default:"1"`

	// Seed seeds the color of spawned shapes. Zero seeds from the clock.
	Seed int64

	// Debug turns on debug level logging.
	Debug bool
}

// Rand returns the random source for the configured seed.
func (c *Config) Rand() randx.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return randx.NewSysRand(seed)
}

// ApplyLogLevel sets the level of the default logger.
func (c *Config) ApplyLogLevel() {
	if c.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}
}

// Options returns the cli options for a program. A normal exit prints
// nothing: the console only carries diagnostics.
func Options(name, about string) *cli.Options {
	opts := cli.DefaultOptions(name, about)
	opts.PrintSuccess = false
	return opts
}
