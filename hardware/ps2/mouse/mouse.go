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

package mouse

import (
	"fmt"

	"github.com/fpedrolucas95/Atom/input"
)

// Bits of the flags byte, the first byte of every motion packet. The button
// bits share their assignment with the input.Buttons type.
const (
	FlagButtonLeft   = 0x01
	FlagButtonRight  = 0x02
	FlagButtonMiddle = 0x04
	FlagAlign        = 0x08
	FlagXOverflow    = 0x40
	FlagYOverflow    = 0x80
)

// Assembler reassembles the auxiliary channel byte stream into three byte
// motion packets. Bytes must be fed in arrival order, one at a time.
type Assembler struct {
	// how many bytes of the current packet have been accepted
	cycle int

	packet [3]uint8

	// buttons from the previous completed packet, for transition reporting
	buttons input.Buttons
}

// NewAssembler is the preferred method of initialisation for the Assembler
// type.
func NewAssembler() *Assembler {
	return &Assembler{}
}

func (asm *Assembler) String() string {
	return fmt.Sprintf("cycle=%d buttons=%s", asm.cycle, asm.buttons)
}

// Reset returns the assembler to its power-on state. A part received packet
// is abandoned and held buttons are forgotten, meaning no release events
// will be seen for them.
func (asm *Assembler) Reset() {
	asm.cycle = 0
	asm.buttons = 0x00
}

// Feed processes a single byte from the auxiliary channel. Most bytes return
// no events. The byte that completes a packet returns a MouseMotionEvent,
// preceded by a MouseButtonEvent for every button whose state differs from
// the previous packet.
func (asm *Assembler) Feed(data uint8) []input.Event {
	switch asm.cycle {
	case 0:
		// the alignment bit is the only synchronisation mechanism for the
		// stream. a first byte without it is a misaligned remnant and is
		// dropped where it stands
		if data&FlagAlign == 0x00 {
			return nil
		}
		asm.packet[0] = data
		asm.cycle = 1
	case 1:
		asm.packet[1] = data
		asm.cycle = 2
	case 2:
		asm.packet[2] = data
		asm.cycle = 0
		return asm.complete()
	default:
		// impossible unless the assembler memory has been corrupted. never
		// emit from a packet we cannot trust
		asm.cycle = 0
	}

	return nil
}

// a packet has been fully received. decide what events it amounts to.
func (asm *Assembler) complete() []input.Event {
	flags := asm.packet[0]

	// a delta too large for one packet sets an overflow bit. the delta bytes
	// are useless in that case and the packet is dropped whole, buttons
	// included
	if flags&(FlagXOverflow|FlagYOverflow) != 0x00 {
		return nil
	}

	events := make([]input.Event, 0, 4)

	// button transitions are reported before the motion event so that a
	// consumer has seen the press by the time motion carries it
	buttons := input.Buttons(flags & (FlagButtonLeft | FlagButtonRight | FlagButtonMiddle))
	for _, b := range []input.Buttons{input.ButtonLeft, input.ButtonRight, input.ButtonMiddle} {
		if buttons&b != asm.buttons&b {
			events = append(events, input.MouseButtonEvent{
				Button:  b,
				Pressed: buttons&b == b,
			})
		}
	}
	asm.buttons = buttons

	// the delta bytes are signed 8-bit values. the sign extension bits in
	// the flags byte are not consulted
	events = append(events, input.MouseMotionEvent{
		DX:      int(int8(asm.packet[1])),
		DY:      int(int8(asm.packet[2])),
		Buttons: buttons,
	})

	return events
}
