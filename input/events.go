// This file is part of Atom.
//
// Atom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Atom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Atom.  If not, see <https://www.gnu.org/licenses/>.

package input

import (
	"fmt"
	"strings"
)

// Device identifies which PS/2 channel an event originated from.
type Device string

// List of valid Device values.
const (
	Keyboard Device = "Keyboard"
	Mouse    Device = "Mouse"
)

// Event is implemented by all events produced by the decoders.
type Event interface {
	// Source identifies the device the event originated from.
	Source() Device

	// String should return the event in a human readable format.
	String() string
}

// Special identifies a key that has no character representation. Special keys
// are only ever seen when the keyboard decoder is running with extended
// decoding enabled.
type Special int

// List of valid Special values.
const (
	NoSpecial Special = iota
	UpArrow
	DownArrow
	LeftArrow
	RightArrow
	Home
	End
	PageUp
	PageDown
	Insert
	Delete
)

func (sp Special) String() string {
	switch sp {
	case NoSpecial:
		return "NoSpecial"
	case UpArrow:
		return "UpArrow"
	case DownArrow:
		return "DownArrow"
	case LeftArrow:
		return "LeftArrow"
	case RightArrow:
		return "RightArrow"
	case Home:
		return "Home"
	case End:
		return "End"
	case PageUp:
		return "PageUp"
	case PageDown:
		return "PageDown"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	}
	return "unknown"
}

// KeyEvent is produced by the keyboard decoder for every completed key press.
// Key releases never produce an event.
type KeyEvent struct {
	// the decoded character. zero if the key has no character representation
	Rune rune

	// the non-character key. NoSpecial for character keys
	Special Special

	// modifier state at the time the key was pressed
	Shift    bool
	Ctrl     bool
	Alt      bool
	CapsLock bool
}

// Source implements the Event interface.
func (ev KeyEvent) Source() Device {
	return Keyboard
}

func (ev KeyEvent) String() string {
	s := strings.Builder{}
	if ev.Special != NoSpecial {
		s.WriteString(ev.Special.String())
	} else {
		s.WriteString(fmt.Sprintf("%q", ev.Rune))
	}
	if ev.Shift {
		s.WriteString(" +shift")
	}
	if ev.Ctrl {
		s.WriteString(" +ctrl")
	}
	if ev.Alt {
		s.WriteString(" +alt")
	}
	if ev.CapsLock {
		s.WriteString(" +caps")
	}
	return s.String()
}

// Buttons is a bitmap of the mouse buttons held down. The bit assignment is
// the same as in the flags byte of a mouse packet.
type Buttons uint8

// List of valid Buttons values.
const (
	ButtonLeft   Buttons = 0x01
	ButtonRight  Buttons = 0x02
	ButtonMiddle Buttons = 0x04
)

func (b Buttons) String() string {
	if b == 0 {
		return "none"
	}

	s := strings.Builder{}
	if b&ButtonLeft == ButtonLeft {
		s.WriteString("left ")
	}
	if b&ButtonRight == ButtonRight {
		s.WriteString("right ")
	}
	if b&ButtonMiddle == ButtonMiddle {
		s.WriteString("middle ")
	}
	return strings.TrimSpace(s.String())
}

// MouseMotionEvent is produced by the mouse packet assembler for every
// completed packet. Deltas are raw signed movement values. Y increases away
// from the user; consumers working in screen coordinates must invert it.
type MouseMotionEvent struct {
	DX int
	DY int

	// buttons held down when the packet was assembled
	Buttons Buttons
}

// Source implements the Event interface.
func (ev MouseMotionEvent) Source() Device {
	return Mouse
}

func (ev MouseMotionEvent) String() string {
	return fmt.Sprintf("dx=%d dy=%d (%s)", ev.DX, ev.DY, ev.Buttons)
}

// MouseButtonEvent is produced by the mouse packet assembler whenever the
// state of a button differs from the previous packet.
type MouseButtonEvent struct {
	Button  Buttons
	Pressed bool
}

// Source implements the Event interface.
func (ev MouseButtonEvent) Source() Device {
	return Mouse
}

func (ev MouseButtonEvent) String() string {
	if ev.Pressed {
		return fmt.Sprintf("%s down", ev.Button)
	}
	return fmt.Sprintf("%s up", ev.Button)
}
