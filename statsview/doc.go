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

// Package statsview serves live runtime statistics over a local http
// server, using the charting provided by "github.com/go-echarts/statsview".
// Once launched the graphs are viewable at:
//
//	localhost:12042/debug/statsview
//
// and the standard Go pprof endpoints at:
//
//	localhost:12042/debug/pprof/
//
// The server is only built when the statsview build constraint is present.
// Without the constraint the package compiles to a stub and Available()
// returns false.
package statsview
