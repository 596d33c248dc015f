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
	"testing"

	"github.com/fpedrolucas95/Atom/prefs"
	"github.com/fpedrolucas95/Atom/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.Equate(t, prefs.PopCommandLineStack(), "")

	// a single override survives the round trip
	prefs.PushCommandLineStack("rate::30")
	test.Equate(t, prefs.PopCommandLineStack(), "rate::30")

	// stray space around key or value is trimmed
	prefs.PushCommandLineStack("   rate:: 30 ")
	test.Equate(t, prefs.PopCommandLineStack(), "rate::30")

	// several overrides in one group. the reassembled string is sorted
	// by key
	prefs.PushCommandLineStack("rate::30; delay::250")
	test.Equate(t, prefs.PopCommandLineStack(), "delay::250; rate::30")

	// a malformed entry leaves nothing behind
	prefs.PushCommandLineStack("rate_30")
	test.Equate(t, prefs.PopCommandLineStack(), "")

	// a malformed entry does not hurt its neighbours
	prefs.PushCommandLineStack("rate_30;delay::250")
	test.Equate(t, prefs.PopCommandLineStack(), "delay::250")

	// a key buried in a malformed entry cannot be retrieved
	prefs.PushCommandLineStack("rate::30;delay_250")
	ok, _ := prefs.GetCommandLinePref("delay")
	test.ExpectedFailure(t, ok)
	test.Equate(t, prefs.PopCommandLineStack(), "rate::30")
}

func TestCommandLineStackGroups(t *testing.T) {
	// empty on start
	test.Equate(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("rate::30")

	// a second group hides the first
	prefs.PushCommandLineStack("delay::250")
	test.Equate(t, prefs.PopCommandLineStack(), "delay::250")

	// the first group is still there
	test.Equate(t, prefs.PopCommandLineStack(), "rate::30")
}

func TestCommandLineConsumed(t *testing.T) {
	prefs.PushCommandLineStack("rate::30; delay::250")

	ok, v := prefs.GetCommandLinePref("rate")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v.(string), "30")

	// the override was deleted as it was returned. only the unasked-for
	// override remains
	test.Equate(t, prefs.PopCommandLineStack(), "delay::250")
}
