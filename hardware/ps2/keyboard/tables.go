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

import "github.com/fpedrolucas95/Atom/input"

// the value in the tables for scancodes with no character representation.
const noChar = rune(0)

// translation tables for scancode set 1, US layout. indexed by the 7-bit
// scancode. entries from 0x54 up have no character representation and are
// left at noChar.
//
// the keypad characters assume num lock is on, which is how the keypad comes
// up after reset on most keyboards.
var unshifted = [128]rune{
	0, '\x1b', '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '-', '=', '\x08', '\t', // 0x00
	'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p', '[', ']', '\n', 0, 'a', 's', // 0x10
	'd', 'f', 'g', 'h', 'j', 'k', 'l', ';', '\'', '`', 0, '\\', 'z', 'x', 'c', 'v', // 0x20
	'b', 'n', 'm', ',', '.', '/', 0, '*', 0, ' ', 0, 0, 0, 0, 0, 0, // 0x30
	0, 0, 0, 0, 0, 0, 0, '7', '8', '9', '-', '4', '5', '6', '+', '1', // 0x40
	'2', '3', '0', '.', // 0x50
}

var shifted = [128]rune{
	0, '\x1b', '!', '@', '#', '$', '%', '^', '&', '*', '(', ')', '_', '+', '\x08', '\t', // 0x00
	'Q', 'W', 'E', 'R', 'T', 'Y', 'U', 'I', 'O', 'P', '{', '}', '\n', 0, 'A', 'S', // 0x10
	'D', 'F', 'G', 'H', 'J', 'K', 'L', ':', '"', '~', 0, '|', 'Z', 'X', 'C', 'V', // 0x20
	'B', 'N', 'M', '<', '>', '?', 0, '*', 0, ' ', 0, 0, 0, 0, 0, 0, // 0x30
	0, 0, 0, 0, 0, 0, 0, '7', '8', '9', '-', '4', '5', '6', '+', '1', // 0x40
	'2', '3', '0', '.', // 0x50
}

// the bytes that can follow the ExtendedPrefix for keys in the navigation
// cluster. consulted only when extended decoding is enabled.
var specials = map[uint8]input.Special{
	0x47: input.Home,
	0x48: input.UpArrow,
	0x49: input.PageUp,
	0x4b: input.LeftArrow,
	0x4d: input.RightArrow,
	0x4f: input.End,
	0x50: input.DownArrow,
	0x51: input.PageDown,
	0x52: input.Insert,
	0x53: input.Delete,
}

// Scancode returns the set 1 make code that produces the given rune, along
// with whether shift must be held for it. Useful when synthesising a scancode
// stream from host input. The ok value is false if no combination of
// scancode and shift produces the rune.
func Scancode(r rune) (code uint8, shift bool, ok bool) {
	if r == noChar {
		return 0, false, false
	}

	for i := range unshifted {
		if unshifted[i] == r {
			return uint8(i), false, true
		}
	}
	for i := range shifted {
		if shifted[i] == r {
			return uint8(i), true, true
		}
	}

	return 0, false, false
}
