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

// Package input defines the events produced by the PS/2 decoders and the
// contract for anything that wants to consume them.
//
// It can be thought of as a translation layer between the hardware packages
// and the consumer (the session console, the terminal echo, a test). As such,
// this package attempts to hide details of the decoders while protecting
// consumers from complication.
//
// Concrete event types are small value structs. Consumers dispatch with a
// type switch:
//
//	switch ev := ev.(type) {
//	case input.KeyEvent:
//		print(ev.Rune)
//	case input.MouseMotionEvent:
//		move(ev.DX, ev.DY)
//	case input.MouseButtonEvent:
//		click(ev.Button, ev.Pressed)
//	}
package input
