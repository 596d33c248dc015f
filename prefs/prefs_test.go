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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fpedrolucas95/Atom/curated"
	"github.com/fpedrolucas95/Atom/prefs"
	"github.com/fpedrolucas95/Atom/test"
)

// prefsFile returns a path inside a throwaway directory. the directory and
// anything written to it are removed when the test ends.
func prefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "prefs")
}

// cmpPrefsFile fails the test unless the file consists of the boilerplate
// warning followed by the expected entries.
func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("error reading prefs file: %v", err)
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	if string(data) != expected {
		t.Errorf("prefs file entries do not match\nexpected:\n%s\nin file:\n%s", expected, string(data))
	}
}

func TestBool(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	err = dsk.Add("first", &v)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("second", &w)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("third", &x)
	test.ExpectedSuccess(t, err)

	err = v.Set(true)
	test.ExpectedSuccess(t, err)

	// strings are accepted too. anything other than "true" means false
	err = w.Set("foo")
	test.ExpectedSuccess(t, err)
	err = x.Set("true")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Fatalf("error saving disk: %v", err)
	}

	cmpPrefsFile(t, fn, "first :: true\nsecond :: false\nthird :: true\n")
}

func TestString(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var v prefs.String
	err = dsk.Add("layout", &v)
	test.ExpectedSuccess(t, err)

	err = v.Set("uk")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Fatalf("error saving disk: %v", err)
	}

	cmpPrefsFile(t, fn, "layout :: uk\n")
}

func TestInt(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var v prefs.Int
	var w prefs.Int
	err = dsk.Add("delay", &v)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("rate", &w)
	test.ExpectedSuccess(t, err)

	err = v.Set(250)
	test.ExpectedSuccess(t, err)

	// strings holding a number are converted
	err = w.Set("30")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Fatalf("error saving disk: %v", err)
	}

	cmpPrefsFile(t, fn, "delay :: 250\nrate :: 30\n")

	// values that cannot possibly be an int are rejected
	err = v.Set("---")
	test.ExpectedFailure(t, err)

	err = v.Set(1.0)
	test.ExpectedFailure(t, err)
}

func TestSaveLoad(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var b prefs.Bool
	var n prefs.Int
	var s prefs.String
	err = dsk.Add("enabled", &b)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("interval", &n)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("label", &s)
	test.ExpectedSuccess(t, err)

	err = b.Set(true)
	test.ExpectedSuccess(t, err)
	err = n.Set(100)
	test.ExpectedSuccess(t, err)
	err = s.Set("console")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Fatalf("error saving disk: %v", err)
	}

	// reset the live values and reload them from disk
	err = dsk.Reset()
	test.ExpectedSuccess(t, err)
	test.Equate(t, b.Get().(bool), false)
	test.Equate(t, n.Get().(int), 0)
	test.Equate(t, s.Get().(string), "")

	err = dsk.Load(false)
	if err != nil {
		t.Fatalf("error loading disk: %v", err)
	}

	test.Equate(t, b.Get().(bool), true)
	test.Equate(t, n.Get().(int), 100)
	test.Equate(t, s.Get().(string), "console")
}

// saving from a second Disk instance must not clobber entries written by the
// first instance.
func TestBoolAndString(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var v prefs.Bool
	err = dsk.Add("mouse", &v)
	test.ExpectedSuccess(t, err)

	err = v.Set(true)
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Fatalf("error saving disk: %v", err)
	}

	// a new disk instance on the same file, with a different entry
	dsk, err = prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var s prefs.String
	err = dsk.Add("layout", &s)
	test.ExpectedSuccess(t, err)

	err = s.Set("us")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Fatalf("error saving disk: %v", err)
	}

	// the file should hold the entries from both instances
	cmpPrefsFile(t, fn, "layout :: us\nmouse :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var s prefs.String
	err = dsk.Add("banner", &s)
	test.ExpectedSuccess(t, err)
	err = s.Set("123456789")
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "123456789")

	// setting a maximum length crops the existing string
	s.SetMaxLen(5)
	test.Equate(t, s.String(), "12345")

	// removing the limit does not bring the cropped information back
	s.SetMaxLen(0)
	test.Equate(t, s.String(), "12345")

	// strings set while a limit is in place are cropped on the way in
	s.SetMaxLen(3)
	err = s.Set("abcdefghi")
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "abc")
}

// a missing prefs file is indicated with the NoPrefsFile sentinal.
func TestNoPrefsFile(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var v prefs.Bool
	err = dsk.Add("mouse", &v)
	test.ExpectedSuccess(t, err)

	err = dsk.Load(false)
	test.ExpectedFailure(t, err)
	if !curated.Is(err, prefs.NoPrefsFile) {
		t.Errorf("expected NoPrefsFile error (got %v)", err)
	}
}
