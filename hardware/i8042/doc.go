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

// Package i8042 is a software twin of the PC keyboard controller. It
// implements the ps2.Port interface with an emulated keyboard and an
// emulated mouse attached, so the decode pipeline can run without any real
// hardware underneath it.
//
// The emulation covers what the driver exercises. Config byte access, the
// self test and interface test commands, auxiliary channel enable/disable
// and the CmdWriteAux routing prefix. The attached mouse honours the set
// defaults, scaling, resolution, sample rate, streaming enable and identify
// commands, acknowledging each one the way the real device does. The
// attached keyboard acknowledges device commands and otherwise exists to
// carry injected scancodes.
//
// The controller comes up the way a real machine leaves it after boot. The
// keyboard interrupt is enabled and works immediately, while the auxiliary
// clock is disabled until the mouse initialisation sequence runs.
//
// Host input enters through InjectScancode, MouseMotion and MouseButton.
// These are safe to call from any goroutine, which is what separates this
// type from the core decoders. A function registered with SetNotify is
// called whenever a byte is available and the interrupt enable bit for its
// device is set. It stands in for the interrupt line. Notifications can
// repeat for the same byte so the receiver should treat them as a level
// trigger, draining until the status register reports empty.
package i8042
