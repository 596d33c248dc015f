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
	"runtime"
	"runtime/pprof"

	"github.com/fpedrolucas95/Atom/curated"
)

// ProfileCPU runs the supplied function, recording a cpu profile of it in
// the named file.
func ProfileCPU(outFilename string, run func() error) error {
	f, err := os.Create(outFilename)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// ProfileMem writes a snapshot of the memory allocation state to the named
// file.
func ProfileMem(outFilename string) error {
	f, err := os.Create(outFilename)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	runtime.GC()

	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
