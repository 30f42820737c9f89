// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Codes are the physical keys known to this package.
// Keys the programs do not react to are reported as CodeUnknown.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeEscape
	CodeReturnEnter
	CodeSpacebar
)

var codesNames = [...]string{"Unknown", "Escape", "ReturnEnter", "Spacebar"}

func (cd Codes) String() string {
	if cd < 0 || int(cd) >= len(codesNames) {
		return fmt.Sprintf("Codes(%d)", int32(cd))
	}
	return codesNames[cd]
}

// Key is a physical key event.
type Key struct {
	Typ  Types
	Code Codes

	// Repeat is set for auto-repeated KeyDown events.
	Repeat bool
}

// NewKey returns a new key event of given type and code.
func NewKey(typ Types, code Codes) *Key {
	return &Key{Typ: typ, Code: code}
}

func (ev *Key) Type() Types { return ev.Typ }

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v, Repeat: %v}", ev.Typ, ev.Code, ev.Repeat)
}

// IsPress returns whether this is the initial press of the given key,
// excluding auto-repeats.
func (ev *Key) IsPress(code Codes) bool {
	return ev.Typ == KeyDown && !ev.Repeat && ev.Code == code
}
