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

// Package mouse assembles the auxiliary channel byte stream produced by a
// PS/2 mouse in streaming mode into motion and button events.
//
// A mouse report is three bytes. The first byte carries the button bitmap,
// the overflow bits and a fixed alignment bit. The second and third are the
// X and Y movement deltas since the previous report, as signed 8-bit values.
// Y increases away from the user, so consumers working in screen coordinates
// must invert it.
//
// The stream is unframed and shares a single hardware FIFO with the
// keyboard channel, so the alignment bit in the first byte is the only
// synchronisation mechanism there is. A dropped interrupt can leave the
// assembler mid-packet indefinitely. The Assembler resynchronises
// automatically by discarding bytes until one with the alignment bit set
// arrives in the first position.
//
// An Assembler instance is owned by a single driver goroutine. It is not
// safe for concurrent use.
package mouse
