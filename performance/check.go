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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/fpedrolucas95/Atom/curated"
	"github.com/fpedrolucas95/Atom/driver"
	"github.com/fpedrolucas95/Atom/hardware/i8042"
	"github.com/fpedrolucas95/Atom/hardware/ps2/keyboard"
	"github.com/fpedrolucas95/Atom/input"
	"github.com/fpedrolucas95/Atom/logger"
)

// counter is the input handler for Check. It counts decoded events and
// discards them.
type counter struct {
	events int
}

func (ct *counter) HandleInput(_ input.Event) error {
	ct.events++
	return nil
}

// Check is a very rough and ready calculation of the decode pipeline's
// performance. The driver runs flat out against the emulated controller
// for the specified duration, with a key press and a mouse movement being
// injected on every pass of the run loop.
//
// The dump argument requests a graph of the driver state once the run has
// finished.
func Check(output io.Writer, profile bool, dump bool, runTime string) error {
	con := i8042.NewController()

	ct := &counter{}
	drv, err := driver.NewDriver(con, ct, nil)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	con.SetNotify(drv.Wake)

	err = drv.InitMouse()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// parse supplied duration
	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	run := func() error {
		// setup trigger that expires when duration has elapsed
		timesUp := make(chan bool)

		time.AfterFunc(duration, func() {
			timesUp <- true
		})

		// run until specified time elapses
		return drv.Run(func() (bool, error) {
			select {
			case v := <-timesUp:
				return !v, nil
			default:
			}

			// keep the controller saturated. every pass of the loop
			// decodes one key event and one motion event
			con.InjectScancode(0x1e, 0x1e|keyboard.Break)
			con.MouseMotion(1, -1)

			return true, nil
		})
	}

	// launch runner directly or through the cpu profiler, depending on
	// supplied arguments
	if profile {
		err = ProfileCPU("cpu.profile", run)
	} else {
		err = run()
	}
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	rate := float64(ct.events) / duration.Seconds()
	logger.Logf("performance", "%.0f events per second", rate)
	output.Write([]byte(fmt.Sprintf("%.0f events/sec (%d events in %.2f seconds)\n",
		rate, ct.events, duration.Seconds())))

	if dump {
		err = StateDump("state.dot", drv, con)
		if err != nil {
			return err
		}
	}

	if profile {
		return ProfileMem("mem.profile")
	}

	return nil
}
