// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonsNames = [...]string{"NoButton", "Left", "Middle", "Right"}

func (bt Buttons) String() string {
	if bt < 0 || int(bt) >= len(buttonsNames) {
		return fmt.Sprintf("Buttons(%d)", int32(bt))
	}
	return buttonsNames[bt]
}

// Mouse is a mouse button event.
type Mouse struct {
	Typ    Types
	Button Buttons

	// Pos is the cursor position in window coordinates
	// at the time the button changed state.
	Pos mgl32.Vec2
}

// NewMouse returns a new mouse event.
func NewMouse(typ Types, but Buttons, pos mgl32.Vec2) *Mouse {
	return &Mouse{Typ: typ, Button: but, Pos: pos}
}

func (ev *Mouse) Type() Types { return ev.Typ }

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v}", ev.Typ, ev.Button, ev.Pos)
}

// IsPress returns whether this is a press of the given button.
func (ev *Mouse) IsPress(but Buttons) bool {
	return ev.Typ == MouseDown && ev.Button == but
}
