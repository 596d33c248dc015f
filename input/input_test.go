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

package input_test

import (
	"testing"

	"github.com/fpedrolucas95/Atom/input"
	"github.com/fpedrolucas95/Atom/test"
)

func TestEventStrings(t *testing.T) {
	ev := input.KeyEvent{Rune: 'a'}
	test.Equate(t, ev.String(), "'a'")

	ev = input.KeyEvent{Rune: 'A', Shift: true}
	test.Equate(t, ev.String(), "'A' +shift")

	ev = input.KeyEvent{Special: input.UpArrow, Ctrl: true}
	test.Equate(t, ev.String(), "UpArrow +ctrl")

	mv := input.MouseMotionEvent{DX: 5, DY: -5}
	test.Equate(t, mv.String(), "dx=5 dy=-5 (none)")

	mb := input.MouseButtonEvent{Button: input.ButtonLeft, Pressed: true}
	test.Equate(t, mb.String(), "left down")
}

func TestButtons(t *testing.T) {
	b := input.ButtonLeft | input.ButtonMiddle
	test.Equate(t, b.String(), "left middle")
	test.Equate(t, input.Buttons(0).String(), "none")
}

func TestQueue(t *testing.T) {
	q := input.NewQueue(2)

	err := q.HandleInput(input.KeyEvent{Rune: 'a'})
	test.ExpectedSuccess(t, err)
	err = q.HandleInput(input.KeyEvent{Rune: 'b'})
	test.ExpectedSuccess(t, err)

	// queue is full. this event will be dropped
	err = q.HandleInput(input.KeyEvent{Rune: 'c'})
	test.ExpectedSuccess(t, err)
	test.Equate(t, q.Dropped(), 1)

	ev := <-q.Events()
	kv, ok := ev.(input.KeyEvent)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, kv.Rune, 'a')

	ev = <-q.Events()
	kv, ok = ev.(input.KeyEvent)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, kv.Rune, 'b')
}

func TestSource(t *testing.T) {
	var ev input.Event

	ev = input.KeyEvent{Rune: 'a'}
	test.Equate(t, string(ev.Source()), "Keyboard")

	ev = input.MouseMotionEvent{}
	test.Equate(t, string(ev.Source()), "Mouse")

	ev = input.MouseButtonEvent{}
	test.Equate(t, string(ev.Source()), "Mouse")
}
