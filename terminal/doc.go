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

// Package terminal drives a decode session from the controlling terminal,
// with no window system involved. The terminal is put into raw mode and
// every rune read is turned into the scancode sequence that would have
// produced it on a real keyboard, shift wrap included, then injected into
// the emulated controller. Decoded events coming back from the driver are
// written to the terminal and recorded in the log.
//
// The effect is that the full decode path sits between the keyboard and the
// screen of an ordinary terminal session. Typing a character and seeing the
// same character decoded is the quickest end to end check there is.
//
// Ctrl-c ends the session. The previous terminal state is restored on exit.
package terminal
