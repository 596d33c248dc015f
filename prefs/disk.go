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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fpedrolucas95/Atom/curated"
)

// DefaultPrefsFile is the default filename of the main preferences file.
const DefaultPrefsFile = "atom.prefs"

// WarningBoilerPlate is the first line in a prefs file. Files without this
// line will not be parsed.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep is the string that separates the key from the value in a prefs file
// entry.
const KeySep = " :: "

// Sentinal error returned by Load() if prefs file does not exist.
const NoPrefsFile = "prefs: no prefs file (%s)"

// Disk represents preference values that are stored to disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path argument is the path to the preferences file. The file does not need
// to exist; it will be created on the first call to Save().
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to disk registry. The key argument must not contain
// the KeySep string or leading/trailing white space.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return curated.Errorf("prefs: %v", fmt.Errorf("key is empty"))
	}
	if strings.Contains(key, KeySep) {
		return curated.Errorf("prefs: %v", fmt.Errorf("key contains %q (%s)", KeySep, key))
	}
	dsk.entries[key] = p
	return nil
}

// String returns all the current values in the disk registry.
func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.sortedKeys() {
		s.WriteString(fmt.Sprintf("%s%s%v\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

// the registered keys in a stable order. disk files are written in this order
// so that files do not churn between saves.
func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// read the prefs file and return the key/value pairs found in it. entries
// listed as defunct are dropped.
func (dsk *Disk) readFile() (map[string]string, error) {
	existing := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return existing, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return existing, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line for the boiler plate
	// warning
	scanner.Scan()
	if len(scanner.Text()) > 0 && scanner.Text() != WarningBoilerPlate {
		return existing, curated.Errorf("prefs: %v", fmt.Errorf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), KeySep, 2)

		// ignore lines that haven't been split successfully
		if len(spt) != 2 {
			continue
		}

		if isDefunct(spt[0]) {
			continue
		}

		existing[spt[0]] = spt[1]
	}

	return existing, nil
}

// Save current preference values to disk.
//
// Values in the prefs file that have not been registered with this Disk
// instance are preserved, allowing the same file to be shared by many Disk
// instances.
func (dsk *Disk) Save() error {
	// load any existing entries from the file, taking care to keep entries
	// that are not registered with this instance
	existing, err := dsk.readFile()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
	}

	// update the entries we know about with the live values
	for k, p := range dsk.entries {
		existing[k] = p.String()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	// write boiler plate warning
	_, err = fmt.Fprintln(f, WarningBoilerPlate)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	// write entries in a stable order
	keys := make([]string, 0, len(existing))
	for k := range existing {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		_, err = fmt.Fprintf(f, "%s%s%s\n", k, KeySep, existing[k])
		if err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}

	return nil
}

// Load preference values from disk.
//
// Values on the command line stack take precedence over values in the prefs
// file. See PushCommandLineStack().
//
// The saveOnLoad flag instructs the function to save the preferences
// immediately after the load has completed. This is useful on program
// startup, when the file may be missing entries for recently added
// preferences.
func (dsk *Disk) Load(saveOnLoad bool) error {
	existing, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := existing[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}

		// check for command line override
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	if saveOnLoad {
		return dsk.Save()
	}

	return nil
}

// Reset all preferences registered with this Disk instance to their zero
// values. The reset values are not saved to disk.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}
