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

package ps2_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fpedrolucas95/Atom/curated"
	"github.com/fpedrolucas95/Atom/hardware/ps2"
	"github.com/fpedrolucas95/Atom/test"
)

// mockPort is a minimal scripted controller. It reacts to the commands used
// by the handshake with canned responses and records the transaction order.
type mockPort struct {
	// response bytes waiting to be read
	out []uint8

	// the config byte returned for CmdReadConfig and replaced by
	// CmdWriteConfig
	cfg uint8

	// response pushed for every byte routed to the aux device. Acknowledge
	// unless overridden by a test
	auxResponse uint8

	// routing state for the next data write
	auxRouted bool
	cfgWrite  bool

	// condensed transcript of the writes seen by the port
	trace []string

	// a dead controller. the input buffer never clears and the output
	// buffer never fills
	dead bool

	// number of status reads
	statusReads int
}

func newMockPort() *mockPort {
	return &mockPort{auxResponse: ps2.Acknowledge}
}

func (p *mockPort) ReadStatus() (uint8, error) {
	p.statusReads++
	if p.dead {
		return ps2.StatusInputFull, nil
	}

	var status uint8
	if len(p.out) > 0 {
		status |= ps2.StatusOutputFull
	}
	return status, nil
}

func (p *mockPort) ReadData() (uint8, error) {
	if len(p.out) == 0 {
		return 0, fmt.Errorf("read of empty output buffer")
	}
	d := p.out[0]
	p.out = p.out[1:]
	return d, nil
}

func (p *mockPort) WriteData(data uint8) error {
	if p.auxRouted {
		p.auxRouted = false
		p.trace = append(p.trace, fmt.Sprintf("aux %02x", data))
		p.out = append(p.out, p.auxResponse)
		if data == ps2.MouseIdentify && p.auxResponse == ps2.Acknowledge {
			p.out = append(p.out, 0x00)
		}
		return nil
	}

	if p.cfgWrite {
		p.cfgWrite = false
		p.cfg = data
	}

	p.trace = append(p.trace, fmt.Sprintf("dat %02x", data))
	return nil
}

func (p *mockPort) WriteCommand(cmd uint8) error {
	p.trace = append(p.trace, fmt.Sprintf("cmd %02x", cmd))
	switch cmd {
	case ps2.CmdReadConfig:
		p.out = append(p.out, p.cfg)
	case ps2.CmdWriteConfig:
		p.cfgWrite = true
	case ps2.CmdWriteAux:
		p.auxRouted = true
	}
	return nil
}

func (p *mockPort) traceString() string {
	return strings.Join(p.trace, ", ")
}

func TestInitMouse(t *testing.T) {
	// aux clock disabled at power on. the handshake must clear the disable
	// bit and set both interrupt enables
	p := newMockPort()
	p.cfg = 0x20

	con := ps2.NewController(p)
	err := con.InitMouse(ps2.MouseSetup{Resolution: -1, SampleRate: -1})
	test.ExpectedSuccess(t, err)

	test.Equate(t, p.traceString(),
		"cmd a8, cmd 20, cmd 60, dat 03, cmd d4, aux f6, cmd d4, aux f4")
	test.Equate(t, p.cfg, 0x03)
}

func TestInitMouseTuning(t *testing.T) {
	p := newMockPort()

	con := ps2.NewController(p)
	err := con.InitMouse(ps2.MouseSetup{
		Scaling11:  true,
		Resolution: 2,
		SampleRate: 100,
		Identify:   true,
	})
	test.ExpectedSuccess(t, err)

	// tuning commands are applied after set-defaults and before
	// streaming-enable. the identify probe comes last
	test.Equate(t, p.traceString(),
		"cmd a8, cmd 20, cmd 60, dat 03, "+
			"cmd d4, aux f6, "+
			"cmd d4, aux e6, "+
			"cmd d4, aux e8, cmd d4, aux 02, "+
			"cmd d4, aux f3, cmd d4, aux 64, "+
			"cmd d4, aux f4, "+
			"cmd d4, aux f2")
}

func TestInitMouseNoAcknowledge(t *testing.T) {
	// 0xfe is the resend request. the handshake must treat anything that
	// isn't an acknowledge as a failure and must not retry
	p := newMockPort()
	p.auxResponse = 0xfe

	con := ps2.NewController(p)
	err := con.InitMouse(ps2.MouseSetup{Resolution: -1, SampleRate: -1})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Has(err, ps2.NoAcknowledge))

	// one failed set-defaults and nothing after it
	test.Equate(t, p.traceString(),
		"cmd a8, cmd 20, cmd 60, dat 03, cmd d4, aux f6")
}

func TestDeadPort(t *testing.T) {
	p := newMockPort()
	p.dead = true

	con := ps2.NewController(p)
	con.PollBudget = 10

	err := con.InitMouse(ps2.MouseSetup{Resolution: -1, SampleRate: -1})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Has(err, ps2.PollExpired))

	// a dead controller must fail within the poll budget, not hang. the
	// drain pass reads the status once and the first command wait accounts
	// for the rest
	test.Equate(t, p.statusReads, 11)
}

func TestDrain(t *testing.T) {
	p := newMockPort()
	p.out = []uint8{0x01, 0x02, 0x03}

	con := ps2.NewController(p)
	err := con.Drain()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(p.out), 0)
}

func TestAuxCommand(t *testing.T) {
	p := newMockPort()

	con := ps2.NewController(p)
	err := con.AuxCommand(ps2.MouseSetDefaults)
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.traceString(), "cmd d4, aux f6")

	p.auxResponse = 0x00
	err = con.AuxCommand(ps2.MouseEnableStream)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, ps2.NoAcknowledge))
}
