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
	"fmt"
	"sync"

	"github.com/fpedrolucas95/Atom/hardware/ps2"
	"github.com/fpedrolucas95/Atom/input"
)

// NotifyFunc is called when a byte becomes available for a device whose
// interrupt enable bit is set in the config byte. It stands in for the
// interrupt line of a real controller.
type NotifyFunc func()

// where the next write to the data register is routed.
type dataDestination int

const (
	// data writes go to the keyboard device unless a controller command has
	// redirected the next one
	destKeyboard dataDestination = iota
	destConfig
	destMouse
)

// Controller is an emulated i8042 with a keyboard and a mouse attached.
// Unlike the decoders above it, a Controller is safe for concurrent use.
// Host injection and the drain loop are expected to run on different
// goroutines.
type Controller struct {
	crit sync.Mutex

	keyboard keyboardDevice
	mouse    mouseDevice

	config uint8

	// the single byte output latch presented at the data register
	output     uint8
	outputFull bool
	outputAux  bool

	dest dataDestination

	notify NotifyFunc
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	con := &Controller{}
	con.Reset()
	return con
}

func (con *Controller) String() string {
	con.crit.Lock()
	defer con.crit.Unlock()
	return fmt.Sprintf("config=%#02x output=%#02x full=%v aux=%v", con.config, con.output, con.outputFull, con.outputAux)
}

// Reset returns the controller and both attached devices to their power-on
// state. As on a real machine after boot, the keyboard interrupt is enabled
// and the auxiliary clock is disabled.
func (con *Controller) Reset() {
	con.crit.Lock()
	defer con.crit.Unlock()

	con.config = ps2.ConfigKeyboardInterrupt | ps2.ConfigAuxClockDisable
	con.outputFull = false
	con.outputAux = false
	con.dest = destKeyboard
	con.keyboard.reset()
	con.mouse.reset()
}

// SetNotify attaches the function called when a byte becomes available. The
// function is called with no locks held but possibly from any goroutine
// that feeds the controller, so it must be cheap and must not block. A nil
// function disables notification, leaving the controller usable by polling
// alone.
func (con *Controller) SetNotify(notify NotifyFunc) {
	con.crit.Lock()
	defer con.crit.Unlock()
	con.notify = notify
}

// ReadStatus implements the ps2.Port interface. The input full bit is never
// set because writes are handled synchronously.
func (con *Controller) ReadStatus() (uint8, error) {
	con.crit.Lock()
	defer con.crit.Unlock()

	var status uint8
	if con.outputFull {
		status |= ps2.StatusOutputFull
		if con.outputAux {
			status |= ps2.StatusAuxData
		}
	}
	return status, nil
}

// ReadData implements the ps2.Port interface. Reading an empty output
// buffer returns zero, as the real part does.
func (con *Controller) ReadData() (uint8, error) {
	con.crit.Lock()
	defer con.crit.Unlock()

	if !con.outputFull {
		return 0x00, nil
	}

	data := con.output
	con.outputFull = false
	con.refill()
	return data, nil
}

// WriteCommand implements the ps2.Port interface. Unrecognised commands are
// accepted and ignored.
func (con *Controller) WriteCommand(cmd uint8) error {
	con.crit.Lock()

	switch cmd {
	case ps2.CmdReadConfig:
		con.latch(con.config)
	case ps2.CmdWriteConfig:
		con.dest = destConfig
	case ps2.CmdDisableAux:
		con.config |= ps2.ConfigAuxClockDisable
	case ps2.CmdEnableAux:
		con.config &^= ps2.ConfigAuxClockDisable
	case ps2.CmdSelfTest:
		con.latch(ps2.SelfTestPassed)
	case ps2.CmdTestPort:
		con.latch(ps2.TestPortPassed)
	case ps2.CmdWriteAux:
		con.dest = destMouse
	}

	notify := con.pendingNotify()
	con.crit.Unlock()

	if notify != nil {
		notify()
	}
	return nil
}

// WriteData implements the ps2.Port interface.
func (con *Controller) WriteData(data uint8) error {
	con.crit.Lock()

	switch con.dest {
	case destConfig:
		con.config = data
	case destMouse:
		con.mouse.command(data)
	case destKeyboard:
		con.keyboard.command(data)
	}
	con.dest = destKeyboard

	con.refill()
	notify := con.pendingNotify()
	con.crit.Unlock()

	if notify != nil {
		notify()
	}
	return nil
}

// InjectScancode queues raw scancode bytes from the keyboard, as though the
// keys had been pressed on a real device. Multi-byte sequences can be given
// in one call.
func (con *Controller) InjectScancode(data ...uint8) {
	con.crit.Lock()

	for _, b := range data {
		con.keyboard.push(b)
	}

	con.refill()
	notify := con.pendingNotify()
	con.crit.Unlock()

	if notify != nil {
		notify()
	}
}

// MouseMotion reports host pointer movement to the emulated mouse. A motion
// packet is transmitted only when the auxiliary clock is running and the
// mouse has streaming enabled. Deltas beyond the packet range are clamped.
func (con *Controller) MouseMotion(dx int, dy int) {
	con.crit.Lock()

	if con.config&ps2.ConfigAuxClockDisable == 0x00 {
		con.mouse.motion(dx, dy)
	}

	con.refill()
	notify := con.pendingNotify()
	con.crit.Unlock()

	if notify != nil {
		notify()
	}
}

// MouseButton reports a host button change to the emulated mouse. The
// button state is tracked even while the device cannot transmit, the same
// as physical buttons on an unpowered mouse.
func (con *Controller) MouseButton(button input.Buttons, pressed bool) {
	con.crit.Lock()

	transmit := con.config&ps2.ConfigAuxClockDisable == 0x00
	con.mouse.button(button, pressed, transmit)

	con.refill()
	notify := con.pendingNotify()
	con.crit.Unlock()

	if notify != nil {
		notify()
	}
}

// a controller response pre-empts whatever is in the latch. the real part
// behaves the same way. must be called with the lock held.
func (con *Controller) latch(data uint8) {
	con.output = data
	con.outputFull = true
	con.outputAux = false
}

// move a byte from a device queue into the output latch if the latch is
// empty. keyboard data goes first. must be called with the lock held.
func (con *Controller) refill() {
	if con.outputFull {
		return
	}

	if len(con.keyboard.queue) > 0 {
		con.output = con.keyboard.queue[0]
		con.keyboard.queue = con.keyboard.queue[1:]
		con.outputFull = true
		con.outputAux = false
		return
	}

	if len(con.mouse.queue) > 0 {
		con.output = con.mouse.queue[0]
		con.mouse.queue = con.mouse.queue[1:]
		con.outputFull = true
		con.outputAux = true
	}
}

// the notify function to call once the lock has been released, or nil if
// the latched byte does not warrant a notification under the current
// config. must be called with the lock held.
func (con *Controller) pendingNotify() NotifyFunc {
	if con.notify == nil || !con.outputFull {
		return nil
	}

	if con.outputAux {
		if con.config&ps2.ConfigAuxInterrupt == 0x00 {
			return nil
		}
	} else {
		if con.config&ps2.ConfigKeyboardInterrupt == 0x00 {
			return nil
		}
	}

	return con.notify
}
