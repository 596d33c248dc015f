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

package recorder

// transcript file header format
// -----------------------------
//
// <magic>
// <version>

const (
	lineMagic int = iota
	lineVersion
	numHeaderLines
)

const (
	magic   = "atom transcript"
	version = "v1.0"
)

// every entry line carries three fields. write entries leave the status
// field at zero.
const (
	fieldOp int = iota
	fieldStatus
	fieldData
	numFields
)

const fieldSep = ", "

// entry operations.
const (
	opRead    = "r"
	opWrite   = "w"
	opCommand = "c"
)
