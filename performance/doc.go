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

// Package performance contains helper functions relating to performance.
//
// Check() runs the driver flat out against a synthetic byte source for a
// fixed duration of time and reports the decoded event rate. It will
// optionally generate profiling information.
//
// ProfileCPU() and ProfileMem() are the profiling helpers used by Check().
// They are also useful on their own for more real-world situations.
//
// StateDump() writes a graph of everything reachable from the driver in
// graphviz DOT format. Useful when studying queue and latch state.
package performance
