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

package driver

import (
	"fmt"
	"time"

	"github.com/fpedrolucas95/Atom/curated"
	"github.com/fpedrolucas95/Atom/hardware/ps2"
	"github.com/fpedrolucas95/Atom/hardware/ps2/keyboard"
	"github.com/fpedrolucas95/Atom/hardware/ps2/mouse"
	"github.com/fpedrolucas95/Atom/input"
	"github.com/fpedrolucas95/Atom/logger"
	"github.com/fpedrolucas95/Atom/recorder"
)

// WakeInterval is the fallback polling period of the Run() loop. The wake
// channel makes draining immediate when a notification source is wired; the
// ticker covers ports that have no way of signalling.
const WakeInterval = 2 * time.Millisecond

// Driver connects a PS/2 port to the decoders and forwards decoded events
// to a single handler.
type Driver struct {
	Prefs *Preferences

	// raw register access for the drain loop
	port ps2.Port

	// command level access to the same port, used for the handshake
	con *ps2.Controller

	// the decoders may be configured up until the Run() loop starts. after
	// that they belong to the loop
	Keyboard *keyboard.Decoder
	Mouse    *mouse.Assembler

	handler input.Handler

	wake chan bool
}

// NewDriver is the preferred method of initialisation for the Driver type.
//
// The preferences instance may be nil, in which case a new one is created.
// A nil handler discards all events.
func NewDriver(port ps2.Port, handler input.Handler, prf *Preferences) (*Driver, error) {
	var err error

	if prf == nil {
		prf, err = NewPreferences()
		if err != nil {
			return nil, curated.Errorf("driver: %v", err)
		}
	}

	drv := &Driver{
		Prefs:    prf,
		port:     port,
		con:      ps2.NewController(port),
		Keyboard: keyboard.NewDecoder(),
		Mouse:    mouse.NewAssembler(),
		handler:  handler,
		wake:     make(chan bool, 1),
	}
	drv.con.PollBudget = prf.PollBudget.Get().(int)

	return drv, nil
}

func (drv *Driver) String() string {
	return fmt.Sprintf("keyboard: %s; mouse: %s", drv.Keyboard, drv.Mouse)
}

// Reset returns both decoders to their initial state. Bytes waiting at the
// port are not touched.
func (drv *Driver) Reset() {
	drv.Keyboard.Reset()
	drv.Mouse.Reset()
}

// InitMouse runs the mouse handshake with the tuning requested by the
// driver preferences. Failure leaves the mouse channel down; the keyboard
// channel works regardless.
func (drv *Driver) InitMouse() error {
	drv.con.PollBudget = drv.Prefs.PollBudget.Get().(int)

	err := drv.con.InitMouse(ps2.MouseSetup{
		Scaling11:  drv.Prefs.Scaling11.Get().(bool),
		Resolution: drv.Prefs.Resolution.Get().(int),
		SampleRate: drv.Prefs.SampleRate.Get().(int),
		Identify:   drv.Prefs.Identify.Get().(bool),
	})
	if err != nil {
		return curated.Errorf("driver: %v", err)
	}

	logger.Log("driver", "mouse streaming enabled")
	return nil
}

// Wake nudges the Run() loop into a drain pass. It never blocks and is safe
// to call from any goroutine. Wire it to the notification callback of the
// byte source.
func (drv *Driver) Wake() {
	select {
	case drv.wake <- true:
	default:
	}
}

// Service drains every byte waiting at the port, feeding each one to the
// decoder for the device it came from and forwarding the decoded events.
//
// The pass ends when the status register reports the output buffer empty or
// when the drain guard expires, whichever is first.
func (drv *Driver) Service() error {
	guard := drv.Prefs.DrainGuard.Get().(int)

	for i := 0; i < guard; i++ {
		status, err := drv.port.ReadStatus()
		if err != nil {
			return err
		}
		if status&ps2.StatusOutputFull == 0x00 {
			return nil
		}

		data, err := drv.port.ReadData()
		if err != nil {
			return err
		}

		if status&ps2.StatusAuxData == ps2.StatusAuxData {
			for _, ev := range drv.Mouse.Feed(data) {
				if err := drv.forward(ev); err != nil {
					return err
				}
			}
		} else {
			if ev, ok := drv.Keyboard.Feed(data); ok {
				if err := drv.forward(ev); err != nil {
					return err
				}
			}
		}
	}

	logger.Logf("driver", "drain guard expired (%d bytes)", guard)
	return nil
}

// Run services the port until continueCheck returns false. A nil
// continueCheck runs the loop forever.
//
// A port that reaches the end of a recorded transcript stops the loop
// cleanly.
func (drv *Driver) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	tick := time.NewTicker(WakeInterval)
	defer tick.Stop()

	for {
		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}

		select {
		case <-drv.wake:
		case <-tick.C:
		}

		if err := drv.Service(); err != nil {
			if curated.Is(err, recorder.EndOfTranscript) {
				logger.Log("driver", "end of transcript")
				return nil
			}
			return err
		}
	}
}

func (drv *Driver) forward(ev input.Event) error {
	if drv.handler == nil {
		return nil
	}
	return drv.handler.HandleInput(ev)
}
