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

// Package keyboard decodes the scancode set 1 byte stream produced by a PS/2
// keyboard into input.KeyEvent values.
//
// Each physical key has a fixed one byte scancode. The top bit of the byte
// distinguishes a key release (break) from a key press (make). The Decoder
// tracks the held state of the shift, ctrl and alt keys and the toggled state
// of caps lock, and translates every other make code through one of two
// fixed tables (US layout). Releases and scancodes with no character
// representation never produce an event.
//
// A small number of keys (the cursor and navigation cluster, the right hand
// ctrl and alt keys, and others) send a two byte sequence beginning with the
// 0xe0 prefix. By default the Decoder discards the byte that follows the
// prefix, meaning those keys produce no events at all. This under-decoding
// is a known limitation of the set 1 decoder and not an error condition.
//
// Setting the DecodeExtended field relaxes the limitation for the navigation
// cluster only. The byte following the prefix is then matched against the
// known navigation codes and reported as a KeyEvent with a Special value and
// no character. Keys outside the navigation cluster are still discarded, so
// the right hand ctrl and alt keys remain indistinguishable from nothing at
// all.
//
// A Decoder instance is owned by a single driver goroutine. It is not safe
// for concurrent use.
package keyboard
