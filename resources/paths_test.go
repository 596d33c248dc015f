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

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fpedrolucas95/Atom/resources"
	"github.com/fpedrolucas95/Atom/test"
)

// run from a throwaway directory. JoinPath creates the directories it
// returns, which should not happen in the source tree.
func tmpWorkingDir(t *testing.T) {
	t.Helper()

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Cleanup(func() {
		_ = os.Chdir(cwd)
	})
}

func TestJoinPath(t *testing.T) {
	tmpWorkingDir(t)

	pth, err := resources.JoinPath("foo/bar", "baz")
	test.Equate(t, err, nil)
	test.Equate(t, pth, filepath.Join(".atom", "foo", "bar", "baz"))

	pth, err = resources.JoinPath("foo")
	test.Equate(t, err, nil)
	test.Equate(t, pth, filepath.Join(".atom", "foo"))

	pth, err = resources.JoinPath()
	test.Equate(t, err, nil)
	test.Equate(t, pth, ".atom")

	// the base path is not prepended a second time
	pth, err = resources.JoinPath(".atom", "baz")
	test.Equate(t, err, nil)
	test.Equate(t, pth, filepath.Join(".atom", "baz"))
}

func TestJoinPathCreatesDirectories(t *testing.T) {
	tmpWorkingDir(t)

	pth, err := resources.JoinPath("prefs", "atom.prefs")
	test.Equate(t, err, nil)

	// every directory up to the file exists afterwards
	nfo, err := os.Stat(filepath.Dir(pth))
	test.Equate(t, err, nil)
	test.Equate(t, nfo.IsDir(), true)

	// the file itself is not created
	_, err = os.Stat(pth)
	test.Equate(t, os.IsNotExist(err), true)
}
