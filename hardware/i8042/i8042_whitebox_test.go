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
	"testing"

	"github.com/fpedrolucas95/Atom/hardware/ps2"
	"github.com/fpedrolucas95/Atom/hardware/ps2/mouse"
	"github.com/fpedrolucas95/Atom/input"
	"github.com/fpedrolucas95/Atom/test"
)

// read until the output buffer reports empty.
func drainAll(con *Controller) []uint8 {
	var data []uint8
	for {
		status, _ := con.ReadStatus()
		if status&ps2.StatusOutputFull == 0x00 {
			return data
		}
		d, _ := con.ReadData()
		data = append(data, d)
	}
}

func TestTuningState(t *testing.T) {
	con := NewController()
	drv := ps2.NewController(con)
	drv.PollBudget = 10

	err := drv.InitMouse(ps2.MouseSetup{
		Scaling11:  true,
		Resolution: 3,
		SampleRate: 40,
	})
	if err != nil {
		t.Fatal(err)
	}

	// the handshake reaches all the way into the device
	test.ExpectedSuccess(t, con.mouse.streaming)
	test.ExpectedSuccess(t, con.mouse.scaling11)
	test.Equate(t, con.mouse.resolution, 3)
	test.Equate(t, con.mouse.sampleRate, 40)
	test.Equate(t, con.mouse.expecting, 0x00)
	test.Equate(t, con.config, ps2.ConfigKeyboardInterrupt|ps2.ConfigAuxInterrupt)
}

func TestOfflineButtonState(t *testing.T) {
	con := NewController()

	con.MouseButton(input.ButtonLeft, true)
	con.MouseButton(input.ButtonMiddle, true)

	// tracked but not transmitted
	test.ExpectedSuccess(t, con.mouse.buttons == input.ButtonLeft|input.ButtonMiddle)
	test.ExpectedSuccess(t, !con.outputFull)
	test.Equate(t, len(con.mouse.queue), 0)
}

func TestKeyboardQueueCap(t *testing.T) {
	con := NewController()

	var inject []uint8
	for i := 0; i < keyboardQueueLen+6; i++ {
		inject = append(inject, uint8(i))
	}
	con.InjectScancode(inject...)

	// one byte has moved to the latch leaving a full queue. the excess was
	// dropped
	test.Equate(t, len(con.keyboard.queue), keyboardQueueLen-1)
	test.Equate(t, len(drainAll(con)), keyboardQueueLen)
}

func TestMousePacketAtomicity(t *testing.T) {
	con := NewController()
	drv := ps2.NewController(con)
	drv.PollBudget = 10

	err := drv.InitMouse(ps2.MouseSetup{Resolution: -1, SampleRate: -1})
	if err != nil {
		t.Fatal(err)
	}

	// saturate the queue. packets are dropped whole so the stream stays
	// aligned however much is lost
	for i := 0; i < 70; i++ {
		con.MouseMotion(1, 1)
	}

	// the latch frees one queue slot so the total works out at exactly the
	// queue length
	data := drainAll(con)
	test.Equate(t, len(data), mouseQueueLen)
	test.Equate(t, len(data)%3, 0)

	asm := mouse.NewAssembler()
	events := 0
	for _, d := range data {
		events += len(asm.Feed(d))
	}
	test.Equate(t, events, len(data)/3)
}
