// SPDX-License-Identifier: GPL-2.0-or-later

// package input describes the window events the lab reacts to
package input

import (
	"texlab/keycode"
)

type Kind int

const (
	Other Kind = iota
	Quit
	KeyDown
	KeyUp
)

func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	}
	return "other"
}

// Event is a platform event reduced to what the lab needs. Raw keeps the
// platform event for the GUI input adapter.
type Event struct {
	Kind Kind
	Key  keycode.KeyCode
	Raw  any
}

// IsKeyUp reports whether e releases key k.
func (e Event) IsKeyUp(k keycode.KeyCode) bool {
	return e.Kind == KeyUp && e.Key == k
}
