// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the discrete input events delivered by a window
// and the queue that buffers them until the frame loop drains them.
package events

import "fmt"

// Types is the type of an input event.
type Types int32

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// KeyDown happens when a key is pressed or auto-repeats.
	KeyDown

	// KeyUp happens when a key is released.
	KeyUp

	// MouseDown happens when a mouse button is pressed. See Mouse.Button for which.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// WindowClose happens when the user clicks the close control of the window.
	WindowClose
)

var typesNames = [...]string{"UnknownType", "KeyDown", "KeyUp", "MouseDown", "MouseUp", "WindowClose"}

func (tp Types) String() string {
	if tp < 0 || int(tp) >= len(typesNames) {
		return fmt.Sprintf("Types(%d)", int32(tp))
	}
	return typesNames[tp]
}

// Event is the interface implemented by all input events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types
}

// Close is sent when the window close control is used.
type Close struct{}

func (ev *Close) Type() Types { return WindowClose }

func (ev *Close) String() string { return "WindowClose{}" }
