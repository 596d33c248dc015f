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

package mouse_test

import (
	"testing"

	"github.com/fpedrolucas95/Atom/hardware/ps2/mouse"
	"github.com/fpedrolucas95/Atom/input"
	"github.com/fpedrolucas95/Atom/test"
)

// feed a sequence of bytes to the assembler, collecting every event.
func feed(asm *mouse.Assembler, data ...uint8) []input.Event {
	ev := make([]input.Event, 0, len(data))
	for _, b := range data {
		ev = append(ev, asm.Feed(b)...)
	}
	return ev
}

func TestMotion(t *testing.T) {
	asm := mouse.NewAssembler()

	// aligned flags byte, dx=5, dy=-5
	ev := feed(asm, 0x08, 0x05, 0xfb)
	test.Equate(t, len(ev), 1)

	mot, ok := ev[0].(input.MouseMotionEvent)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, mot.DX, 5)
	test.Equate(t, mot.DY, -5)
	test.Equate(t, int(mot.Buttons), 0)
}

func TestIdempotence(t *testing.T) {
	asm := mouse.NewAssembler()

	// the same packet twice yields two identical events. nothing leaks from
	// one packet to the next
	first := feed(asm, 0x08, 0x05, 0xfb)
	second := feed(asm, 0x08, 0x05, 0xfb)
	test.Equate(t, len(first), 1)
	test.Equate(t, len(second), 1)
	test.ExpectedSuccess(t, first[0] == second[0])
}

func TestMisalignment(t *testing.T) {
	asm := mouse.NewAssembler()

	// bytes without the alignment bit are discarded. the cycle does not
	// advance
	ev := feed(asm, 0x00, 0x05, 0x02)
	test.Equate(t, len(ev), 0)

	// the stream recovers as soon as an aligned byte arrives in the first
	// position
	ev = feed(asm, 0x08, 0x05, 0xfb)
	test.Equate(t, len(ev), 1)

	mot, ok := ev[0].(input.MouseMotionEvent)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, mot.DX, 5)
	test.Equate(t, mot.DY, -5)
}

func TestOverflow(t *testing.T) {
	asm := mouse.NewAssembler()

	// x overflow, y overflow and both together. each packet is dropped whole
	ev := feed(asm, 0x48, 0x7f, 0x7f)
	test.Equate(t, len(ev), 0)
	ev = feed(asm, 0x88, 0x7f, 0x7f)
	test.Equate(t, len(ev), 0)
	ev = feed(asm, 0xc8, 0x7f, 0x7f)
	test.Equate(t, len(ev), 0)

	// the cycle has been reset each time. a good packet still decodes
	ev = feed(asm, 0x08, 0x01, 0x01)
	test.Equate(t, len(ev), 1)
}

func TestButtons(t *testing.T) {
	asm := mouse.NewAssembler()

	// left button down with no motion. the transition is reported before
	// the motion event
	ev := feed(asm, 0x09, 0x00, 0x00)
	test.Equate(t, len(ev), 2)

	btn, ok := ev[0].(input.MouseButtonEvent)
	test.ExpectedSuccess(t, ok)
	test.ExpectedSuccess(t, btn.Button == input.ButtonLeft)
	test.Equate(t, btn.Pressed, true)

	mot, ok := ev[1].(input.MouseMotionEvent)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, mot.DX, 0)
	test.Equate(t, mot.DY, 0)
	test.ExpectedSuccess(t, mot.Buttons == input.ButtonLeft)

	// the button is still down in the next packet. no transition this time
	ev = feed(asm, 0x09, 0x01, 0x00)
	test.Equate(t, len(ev), 1)
	mot, ok = ev[0].(input.MouseMotionEvent)
	test.ExpectedSuccess(t, ok)
	test.ExpectedSuccess(t, mot.Buttons == input.ButtonLeft)

	// release
	ev = feed(asm, 0x08, 0x00, 0x00)
	test.Equate(t, len(ev), 2)
	btn, ok = ev[0].(input.MouseButtonEvent)
	test.ExpectedSuccess(t, ok)
	test.ExpectedSuccess(t, btn.Button == input.ButtonLeft)
	test.Equate(t, btn.Pressed, false)

	// all three buttons at once. transitions are reported left, right,
	// middle
	ev = feed(asm, 0x0f, 0x01, 0xff)
	test.Equate(t, len(ev), 4)
	test.ExpectedSuccess(t, ev[0].(input.MouseButtonEvent).Button == input.ButtonLeft)
	test.ExpectedSuccess(t, ev[1].(input.MouseButtonEvent).Button == input.ButtonRight)
	test.ExpectedSuccess(t, ev[2].(input.MouseButtonEvent).Button == input.ButtonMiddle)
	mot, ok = ev[3].(input.MouseMotionEvent)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, mot.DX, 1)
	test.Equate(t, mot.DY, -1)
}

func TestButtonsAcrossOverflow(t *testing.T) {
	asm := mouse.NewAssembler()

	ev := feed(asm, 0x09, 0x00, 0x00)
	test.Equate(t, len(ev), 2)

	// an overflowed packet with the button released is dropped whole. it
	// must not update button state
	ev = feed(asm, 0x48, 0x00, 0x00)
	test.Equate(t, len(ev), 0)

	// the release is reported by the next good packet
	ev = feed(asm, 0x08, 0x00, 0x00)
	test.Equate(t, len(ev), 2)
	btn, ok := ev[0].(input.MouseButtonEvent)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, btn.Pressed, false)
}

func TestReset(t *testing.T) {
	asm := mouse.NewAssembler()

	// a part received packet and a held button
	_ = feed(asm, 0x09, 0x00, 0x00)
	_ = feed(asm, 0x09, 0x05)

	asm.Reset()

	// the pending packet has been abandoned. the held button has been
	// forgotten so the next press is a fresh transition
	ev := feed(asm, 0x09, 0x00, 0x00)
	test.Equate(t, len(ev), 2)
	btn, ok := ev[0].(input.MouseButtonEvent)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, btn.Pressed, true)
}
