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

package terminal

import (
	"github.com/fpedrolucas95/Atom/hardware/ps2/keyboard"
)

// Injector receives the synthesised scancode stream. The emulated i8042
// controller satisfies this interface.
type Injector interface {
	InjectScancode(data ...uint8)
}

// Sequence returns the scancode set 1 byte sequence that types the given
// rune: the make code and break code for the key, wrapped in a shift press
// and release when the character needs it. The ok value is false if no key
// produces the rune.
func Sequence(r rune) ([]uint8, bool) {
	code, shift, ok := keyboard.Scancode(r)
	if !ok {
		return nil, false
	}

	seq := make([]uint8, 0, 4)
	if shift {
		seq = append(seq, keyboard.LeftShift)
	}
	seq = append(seq, code, code|keyboard.Break)
	if shift {
		seq = append(seq, keyboard.LeftShift|keyboard.Break)
	}

	return seq, true
}
