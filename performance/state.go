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

package performance

import (
	"os"

	"github.com/fpedrolucas95/Atom/curated"

	"github.com/bradleyjkemp/memviz"
)

// StateDump writes a graph of everything reachable from the supplied values
// to the named file, in graphviz DOT format.
func StateDump(outFilename string, state ...interface{}) error {
	f, err := os.Create(outFilename)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	memviz.Map(f, state...)

	return nil
}
