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

// Package console is an SDL2 view of a decoded session. Decoded key events
// are echoed into a scrolling 80x30 cell grid, rendered with a built-in 8x8
// bitmap font, and mouse events move a pointer block around the window.
//
// When the byte source is the emulated i8042 controller the console also
// works in the other direction. Host key presses are translated to scancode
// set 1 make and break codes and injected into the controller, and host
// mouse input likewise, so everything that appears on screen has been
// through the full decode path.
//
// SDL requires that window handling happens in the main thread. NewConsole,
// Service and Destroy must only be called from there. The decoded events
// arrive through an input.Queue which is safe to fill from the driver
// goroutine.
package console
