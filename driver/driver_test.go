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

package driver_test

import (
	"testing"

	"github.com/fpedrolucas95/Atom/curated"
	"github.com/fpedrolucas95/Atom/driver"
	"github.com/fpedrolucas95/Atom/hardware/i8042"
	"github.com/fpedrolucas95/Atom/hardware/ps2"
	"github.com/fpedrolucas95/Atom/input"
	"github.com/fpedrolucas95/Atom/test"
)

func newDriver(t *testing.T) (*i8042.Controller, *driver.Driver, *input.Queue) {
	t.Helper()

	con := i8042.NewController()
	q := input.NewQueue(64)

	drv, err := driver.NewDriver(con, q, nil)
	if err != nil {
		t.Fatal(err)
	}

	return con, drv, q
}

// empty the queue of everything that has been forwarded so far.
func collect(q *input.Queue) []input.Event {
	var ev []input.Event
	for {
		select {
		case e := <-q.Events():
			ev = append(ev, e)
		default:
			return ev
		}
	}
}

// a port with a stuck status bit. reads never fail and never run dry.
type wedgedPort struct {
	reads int
}

func (p *wedgedPort) ReadStatus() (uint8, error) {
	return ps2.StatusOutputFull, nil
}

func (p *wedgedPort) ReadData() (uint8, error) {
	p.reads++
	return 0x00, nil
}

func (p *wedgedPort) WriteData(data uint8) error {
	return nil
}

func (p *wedgedPort) WriteCommand(cmd uint8) error {
	return nil
}

func TestKeyboardService(t *testing.T) {
	con, drv, q := newDriver(t)

	con.InjectScancode(0x1e, 0x9e)
	test.ExpectedSuccess(t, drv.Service())

	ev := collect(q)
	test.Equate(t, len(ev), 1)
	ke, ok := ev[0].(input.KeyEvent)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, ke.Rune, 'a')

	// nothing left over for the next pass
	test.ExpectedSuccess(t, drv.Service())
	test.Equate(t, len(collect(q)), 0)
}

func TestMouseService(t *testing.T) {
	con, drv, q := newDriver(t)

	test.ExpectedSuccess(t, drv.InitMouse())

	con.MouseMotion(3, -4)
	test.ExpectedSuccess(t, drv.Service())

	ev := collect(q)
	test.Equate(t, len(ev), 1)
	me, ok := ev[0].(input.MouseMotionEvent)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, me.DX, 3)
	test.Equate(t, me.DY, -4)
}

func TestInterleavedService(t *testing.T) {
	con, drv, q := newDriver(t)
	test.ExpectedSuccess(t, drv.InitMouse())

	// a keyboard byte arrives in the middle of a mouse packet. the status
	// bit keeps the two streams apart
	con.MouseMotion(2, 0)
	con.InjectScancode(0x1e)
	test.ExpectedSuccess(t, drv.Service())

	ev := collect(q)
	test.Equate(t, len(ev), 2)
	_, ok := ev[0].(input.KeyEvent)
	test.ExpectedSuccess(t, ok)
	me, ok := ev[1].(input.MouseMotionEvent)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, me.DX, 2)
}

func TestExtendedDecode(t *testing.T) {
	con, drv, q := newDriver(t)
	drv.Keyboard.DecodeExtended = true

	con.InjectScancode(0xe0, 0x48, 0xe0, 0xc8)
	test.ExpectedSuccess(t, drv.Service())

	ev := collect(q)
	test.Equate(t, len(ev), 1)
	ke, ok := ev[0].(input.KeyEvent)
	test.ExpectedSuccess(t, ok)
	test.ExpectedSuccess(t, ke.Special == input.UpArrow)
}

func TestDrainGuard(t *testing.T) {
	p := &wedgedPort{}

	drv, err := driver.NewDriver(p, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	test.ExpectedSuccess(t, drv.Prefs.DrainGuard.Set(25))

	// the pass ends despite the port never running dry
	test.ExpectedSuccess(t, drv.Service())
	test.Equate(t, p.reads, 25)
}

func TestInitMouseFailure(t *testing.T) {
	p := &wedgedPort{}

	drv, err := driver.NewDriver(p, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	test.ExpectedSuccess(t, drv.Prefs.PollBudget.Set(100))

	// a port that cannot be drained fails the handshake within the poll
	// budget
	err = drv.InitMouse()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Has(err, ps2.PollExpired))
}

func TestReset(t *testing.T) {
	con, drv, q := newDriver(t)

	// half a shift sequence then a reset. the modifier must not leak into
	// the next press
	con.InjectScancode(0x2a)
	test.ExpectedSuccess(t, drv.Service())
	drv.Reset()

	con.InjectScancode(0x1e)
	test.ExpectedSuccess(t, drv.Service())

	ev := collect(q)
	test.Equate(t, len(ev), 1)
	ke, ok := ev[0].(input.KeyEvent)
	test.ExpectedSuccess(t, ok)
	test.ExpectedSuccess(t, !ke.Shift)
	test.Equate(t, ke.Rune, 'a')
}

func TestRun(t *testing.T) {
	con, drv, q := newDriver(t)

	con.SetNotify(drv.Wake)
	con.InjectScancode(0x1e)

	// the loop makes progress from the wake notification alone and stops as
	// soon as the event arrives
	err := drv.Run(func() (bool, error) {
		return len(collect(q)) == 0, nil
	})
	test.ExpectedSuccess(t, err)
}

func TestPreferenceDefaults(t *testing.T) {
	prf, err := driver.NewPreferences()
	if err != nil {
		t.Fatal(err)
	}

	// the load in NewPreferences picks up whatever is on disk. return to a
	// known state before checking values
	prf.SetDefaults()

	test.Equate(t, prf.PollBudget.Get().(int), ps2.DefaultPollBudget)
	test.Equate(t, prf.SampleRate.Get().(int), -1)
	test.Equate(t, prf.Resolution.Get().(int), -1)
	test.ExpectedSuccess(t, !prf.Scaling11.Get().(bool))
	test.ExpectedSuccess(t, !prf.Identify.Get().(bool))
	test.Equate(t, prf.DrainGuard.Get().(int), 100)
}
