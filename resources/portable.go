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

package resources

import (
	"os"
)

// the path used when the portable directory is found in the current working
// directory.
const portablePath = ".atom"

// checkPortable returns true if the portable path is present in the current
// working directory. if it is then it is used in preference to the path
// returned by resourcePath().
func checkPortable() bool {
	nfo, err := os.Stat(portablePath)
	if err != nil {
		return false
	}
	return nfo.IsDir()
}
