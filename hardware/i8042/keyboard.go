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

package i8042

import (
	"github.com/fpedrolucas95/Atom/hardware/ps2"
	"github.com/fpedrolucas95/Atom/logger"
)

// how many bytes the emulated keyboard will buffer before dropping input.
const keyboardQueueLen = 64

// the emulated keyboard. all access is made through the Controller, with
// the controller lock held.
type keyboardDevice struct {
	queue []uint8
}

func (kb *keyboardDevice) reset() {
	kb.queue = kb.queue[:0]
}

// append a byte to the device queue, dropping it if the queue is full.
func (kb *keyboardDevice) push(data uint8) {
	if len(kb.queue) >= keyboardQueueLen {
		logger.Logf("i8042", "keyboard queue full, dropping %#02x", data)
		return
	}
	kb.queue = append(kb.queue, data)
}

// a device command written through the data register. the driver never
// commands the keyboard so responses here exist for completeness. anything
// not recognised is acknowledged and forgotten.
func (kb *keyboardDevice) command(data uint8) {
	switch data {
	case 0xff:
		// reset. acknowledge then report the self test as passed
		kb.reset()
		kb.push(ps2.Acknowledge)
		kb.push(0xaa)
	case 0xf2:
		// identify as an MF2 keyboard
		kb.push(ps2.Acknowledge)
		kb.push(0xab)
		kb.push(0x83)
	default:
		kb.push(ps2.Acknowledge)
	}
}
