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

// Package hostport accesses a real i8042 controller through the Linux port
// device.
//
// The Device type opens /dev/port and performs positional reads and writes
// at the controller's register addresses. This requires root, or at least
// the CAP_SYS_RAWIO capability, and a kernel built with CONFIG_DEVPORT.
//
// Driving the controller out from under an operating system that is also
// driving it will confuse both parties. The package is intended for
// development against real hardware from a console, not for use inside a
// desktop session.
//
// On platforms other than Linux the package compiles but NewDevice always
// fails.
package hostport
