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

// Package driver connects a PS/2 port to the decoders.
//
// A Driver owns one keyboard decoder and one mouse packet assembler and
// feeds them from the port, one byte at a time, routing each byte by the
// auxiliary bit of the status register. Decoded events are forwarded to a
// single input.Handler.
//
// The drain loop in Service() reads until the status register reports the
// output buffer empty, capped by the drain guard preference so that a
// controller with a stuck status bit cannot hang the loop. Service() must
// always run to an empty buffer before the loop sleeps; a byte left behind
// would otherwise wait for an unrelated wakeup.
//
// Run() wraps Service() in a wait loop. The wait is satisfied by the Wake()
// method, which a byte source can call from any goroutine, or by a short
// ticker for ports that have no way of signalling, such as the real
// hardware backend. Everything except Wake() belongs to the goroutine that
// calls Run().
package driver
