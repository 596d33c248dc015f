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

package keyboard

import (
	"fmt"

	"github.com/fpedrolucas95/Atom/input"
)

// Scancodes with a meaning beyond simple translation.
const (
	// prefix byte for two byte scancode sequences
	ExtendedPrefix = 0xe0

	// modifier keys. the decoder consumes these and never emits an event
	// for them
	LeftShift  = 0x2a
	RightShift = 0x36
	Ctrl       = 0x1d
	Alt        = 0x38
	CapsLock   = 0x3a
)

// Break is the bit set in a scancode when the key is released rather than
// pressed.
const Break = 0x80

// Decoder translates a scancode set 1 byte stream into key events. Scancodes
// must be fed in arrival order, one byte at a time.
type Decoder struct {
	shift    bool
	ctrl     bool
	alt      bool
	capsLock bool

	// true for exactly one byte after ExtendedPrefix is seen
	extended bool

	// DecodeExtended enables decoding of the navigation cluster rather than
	// discarding every byte that follows the extended prefix.
	DecodeExtended bool
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
func NewDecoder() *Decoder {
	return &Decoder{}
}

func (dec *Decoder) String() string {
	return fmt.Sprintf("shift=%v ctrl=%v alt=%v caps=%v", dec.shift, dec.ctrl, dec.alt, dec.capsLock)
}

// Reset returns the decoder to its power-on state. Held modifiers are
// forgotten and a pending extended prefix is abandoned.
func (dec *Decoder) Reset() {
	dec.shift = false
	dec.ctrl = false
	dec.alt = false
	dec.capsLock = false
	dec.extended = false
}

// Feed processes a single byte from the keyboard. The returned ok value is
// true when the byte completed a key press with a translation. Bytes that
// only change decoder state, key releases and scancodes with no translation
// all return false. This is the expected steady-state behaviour of the
// stream, not an error.
func (dec *Decoder) Feed(data uint8) (input.KeyEvent, bool) {
	// the byte after the extended prefix. the flag is cleared whatever the
	// byte turns out to be
	if dec.extended {
		dec.extended = false
		if dec.DecodeExtended {
			return dec.special(data)
		}
		return input.KeyEvent{}, false
	}

	if data == ExtendedPrefix {
		dec.extended = true
		return input.KeyEvent{}, false
	}

	isBreak := data&Break == Break
	code := data & 0x7f

	// modifiers update decoder state and nothing else. the left and right
	// shift keys are not distinguished
	switch code {
	case LeftShift, RightShift:
		dec.shift = !isBreak
		return input.KeyEvent{}, false
	case Ctrl:
		dec.ctrl = !isBreak
		return input.KeyEvent{}, false
	case Alt:
		dec.alt = !isBreak
		return input.KeyEvent{}, false
	case CapsLock:
		if !isBreak {
			dec.capsLock = !dec.capsLock
		}
		return input.KeyEvent{}, false
	}

	// releases are not reported
	if isBreak {
		return input.KeyEvent{}, false
	}

	return dec.translate(code)
}

// translate a make code through the table selected by the shift state. caps
// lock affects letters on the unshifted path only.
func (dec *Decoder) translate(code uint8) (input.KeyEvent, bool) {
	// the caller has already stripped the break bit but masking again makes
	// an out-of-range lookup impossible
	idx := code & 0x7f

	var r rune
	if dec.shift {
		r = shifted[idx]
	} else {
		r = unshifted[idx]
		if dec.capsLock && r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
		}
	}

	if r == noChar {
		return input.KeyEvent{}, false
	}

	return input.KeyEvent{
		Rune:     r,
		Shift:    dec.shift,
		Ctrl:     dec.ctrl,
		Alt:      dec.alt,
		CapsLock: dec.capsLock,
	}, true
}

// the byte after the extended prefix when extended decoding is enabled.
func (dec *Decoder) special(data uint8) (input.KeyEvent, bool) {
	if data&Break == Break {
		return input.KeyEvent{}, false
	}

	sp, ok := specials[data&0x7f]
	if !ok {
		return input.KeyEvent{}, false
	}

	return input.KeyEvent{
		Special:  sp,
		Shift:    dec.shift,
		Ctrl:     dec.ctrl,
		Alt:      dec.alt,
		CapsLock: dec.capsLock,
	}, true
}
