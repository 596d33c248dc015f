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

// Package ps2 defines the access the decoders have to the i8042 keyboard
// controller and implements the command/acknowledge discipline used to bring
// the auxiliary (mouse) channel up.
//
// The controller is reached through the Port interface. Implementations of
// Port are found in the hardware/i8042 package (the emulated controller),
// the hardware/hostport package (the real controller through /dev/port) and
// the recorder package (record/replay wrappers).
//
// The Controller type layers bounded waiting on top of a Port. Every wait is
// a poll of the status register with a maximum attempt count; nothing in
// this package ever waits on the wall-clock. The poll budget can be lowered
// for testing so that failure paths complete quickly.
//
// The keyboard channel needs no initialisation; it produces scancodes from
// reset. The mouse channel must be enabled and configured with InitMouse()
// before it reports anything.
package ps2
