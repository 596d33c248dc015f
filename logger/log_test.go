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

package logger_test

import (
	"testing"

	"github.com/fpedrolucas95/Atom/logger"
	"github.com/fpedrolucas95/Atom/test"
)

func TestWrite(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare(""))

	logger.Log("test", "this is a test")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\n"))

	logger.Logf("test", "this is a %s", "formatted test")
	tw.Clear()
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\ntest: this is a formatted test\n"))
}

func TestRepeats(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Log("test", "same entry")
	logger.Log("test", "same entry")
	logger.Log("test", "same entry")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: same entry (repeat x3)\n"))

	// a different tag breaks the repetition
	logger.Log("other", "same entry")
	tw.Clear()
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: same entry (repeat x3)\nother: same entry\n"))
}

func TestTail(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Log("test", "entry one")
	logger.Log("test", "entry two")
	logger.Log("test", "entry three")

	logger.Tail(tw, 2)
	test.ExpectedSuccess(t, tw.Compare("test: entry two\ntest: entry three\n"))

	// a tail longer than the log is the whole log
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectedSuccess(t, tw.Compare("test: entry one\ntest: entry two\ntest: entry three\n"))
}

func TestEcho(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.SetEcho(tw)
	logger.Log("test", "echoed entry")
	test.ExpectedSuccess(t, tw.Compare("test: echoed entry\n"))

	// echo of a repeated entry includes the repeat count
	logger.Log("test", "echoed entry")
	test.ExpectedSuccess(t, tw.Compare("test: echoed entry\ntest: echoed entry (repeat x2)\n"))

	logger.SetEcho(nil)
	logger.Log("test", "not echoed")
	test.ExpectedSuccess(t, tw.Compare("test: echoed entry\ntest: echoed entry (repeat x2)\n"))
}
