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

// Package test gathers the small assertions the rest of the tests lean on,
// so that the repetitive if/Errorf shapes live in one place.
//
// Equate() compares two like-typed values. A handful of numeric types can
// also be compared against a plain int so that literals do not need casting.
// The list of handled types is deliberately short; see the function
// documentation.
//
// ExpectedSuccess() and ExpectedFailure() assert on the outcome of an
// operation, accepting either a bool or an error. Note that a nil value is
// read as success in both functions. That reading is forced by Go error
// convention, where nil is the no-error case.
//
// CompareWriter captures anything written to it. Point a type's output at
// one and use Compare() to check what came out.
package test
