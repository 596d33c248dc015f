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

// Package logger is the central log for the entire application. There is only
// one log and it is accessible through the package level functions, most
// often Log() and Logf().
//
// Both functions take a tag string as their first argument. The tag is the
// name of the sub-system the entry originates from, "mouse" or "i8042" for
// instance. Keep tags short. Identical consecutive entries are not added
// to the log repeatedly; instead, the repetition is noted on the existing
// entry.
//
// The contents of the log can be written to an io.Writer with the Write()
// and Tail() functions. Alternatively, the log can echo every new entry to a
// writer registered with SetEcho(), which is how the -log flag of the
// command line modes is implemented.
package logger
