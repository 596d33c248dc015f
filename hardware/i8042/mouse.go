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
	"github.com/fpedrolucas95/Atom/hardware/ps2/mouse"
	"github.com/fpedrolucas95/Atom/input"
	"github.com/fpedrolucas95/Atom/logger"
)

// how many bytes the emulated mouse will buffer before dropping packets.
const mouseQueueLen = 192

// sign extension bits of the flags byte. the emulated device sets them the
// way a real one would although the packet assembler never consults them.
const (
	flagXSign = 0x10
	flagYSign = 0x20
)

// the device id reported by a plain three button mouse.
const mouseID = 0x00

// the emulated mouse. all access is made through the Controller, with the
// controller lock held.
type mouseDevice struct {
	queue []uint8

	streaming  bool
	scaling11  bool
	resolution uint8
	sampleRate uint8

	// a command waiting for its argument byte, or zero
	expecting uint8

	// host button state. tracked even when the device cannot transmit
	buttons input.Buttons
}

func (ms *mouseDevice) reset() {
	ms.queue = ms.queue[:0]
	ms.expecting = 0x00
	ms.buttons = 0x00
	ms.defaults()
}

// apply the power-on settings. also the response to the set defaults
// command. streaming always starts disabled.
func (ms *mouseDevice) defaults() {
	ms.streaming = false
	ms.scaling11 = true
	ms.resolution = 0x02
	ms.sampleRate = 100
}

// append a byte to the device queue, dropping it if the queue is full.
func (ms *mouseDevice) push(data uint8) {
	if len(ms.queue) >= mouseQueueLen {
		logger.Logf("i8042", "mouse queue full, dropping %#02x", data)
		return
	}
	ms.queue = append(ms.queue, data)
}

// a device command routed through the CmdWriteAux prefix.
func (ms *mouseDevice) command(data uint8) {
	// an argument byte for the previous command
	if ms.expecting != 0x00 {
		switch ms.expecting {
		case ps2.MouseSetResolution:
			ms.resolution = data
		case ps2.MouseSetSampleRate:
			ms.sampleRate = data
		}
		ms.expecting = 0x00
		ms.push(ps2.Acknowledge)
		return
	}

	switch data {
	case ps2.MouseSetDefaults:
		ms.defaults()
		ms.push(ps2.Acknowledge)
	case ps2.MouseEnableStream:
		ms.streaming = true
		ms.push(ps2.Acknowledge)
	case ps2.MouseSetScaling11:
		ms.scaling11 = true
		ms.push(ps2.Acknowledge)
	case ps2.MouseSetResolution, ps2.MouseSetSampleRate:
		ms.expecting = data
		ms.push(ps2.Acknowledge)
	case ps2.MouseIdentify:
		ms.push(ps2.Acknowledge)
		ms.push(mouseID)
	default:
		ms.push(ps2.Resend)
	}
}

// queue a motion packet carrying the current button state. nothing is
// transmitted unless streaming is enabled.
func (ms *mouseDevice) motion(dx int, dy int) {
	if !ms.streaming {
		return
	}

	// a partial packet would desynchronise the byte stream so the packet is
	// queued whole or not at all
	if len(ms.queue)+3 > mouseQueueLen {
		logger.Logf("i8042", "mouse queue full, dropping packet (%d,%d)", dx, dy)
		return
	}

	flags := mouse.FlagAlign | uint8(ms.buttons)
	if dx < 0 {
		flags |= flagXSign
	}
	if dy < 0 {
		flags |= flagYSign
	}

	ms.queue = append(ms.queue, flags, clampDelta(dx), clampDelta(dy))
}

// update button state. when transmit is true a zero motion packet reports
// the change, subject to the streaming gate.
func (ms *mouseDevice) button(button input.Buttons, pressed bool, transmit bool) {
	if pressed {
		ms.buttons |= button
	} else {
		ms.buttons &^= button
	}

	if transmit {
		ms.motion(0, 0)
	}
}

// reduce a host delta to the signed 8-bit range of a packet byte.
func clampDelta(v int) uint8 {
	if v > 127 {
		v = 127
	}
	if v < -128 {
		v = -128
	}
	return uint8(int8(v))
}
