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
	"fmt"
	"sort"
	"strings"
)

// preference values given on the command line override values loaded from
// disk. overrides are held in groups arranged as a stack, one group per
// session.
var overrideStack []map[string]Value

// the group currently in effect, or nil when the stack is empty.
func topOverrides() map[string]Value {
	if len(overrideStack) == 0 {
		return nil
	}
	return overrideStack[len(overrideStack)-1]
}

// PushCommandLineStack opens a new group of overrides. The string is a list
// of key/value pairs in the form:
//
//	key::value; key::value
//
// Entries that do not fit the form are dropped silently.
func PushCommandLineStack(prefs string) {
	group := make(map[string]Value)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			group[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	overrideStack = append(overrideStack, group)
}

// PopCommandLineStack discards the group most recently added by
// PushCommandLineStack().
//
// The return value lists the overrides in the group that were never asked
// for, in the same form they were given. Anything in there at the end of a
// session is most likely a misspelled key.
func PopCommandLineStack() string {
	popped := topOverrides()
	if popped == nil {
		return ""
	}
	overrideStack = overrideStack[:len(overrideStack)-1]

	// reassemble what is left of the group, sorted for predictability
	keys := make([]string, 0, len(popped))
	for k := range popped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s::%v; ", k, popped[k]))
	}

	return strings.TrimSuffix(s.String(), "; ")
}

// GetCommandLinePref returns the override for a key in the current group.
// The override is deleted from the group as it is returned. The first
// return value is false when the key has no override.
func GetCommandLinePref(key string) (bool, Value) {
	cl := topOverrides()
	if cl == nil {
		return false, nil
	}

	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, nil
}
