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

package ps2

import (
	"github.com/fpedrolucas95/Atom/curated"
	"github.com/fpedrolucas95/Atom/logger"
)

// Sentinal errors returned by the Controller.
const (
	// the status register did not reach the required state within the poll
	// budget
	PollExpired = "poll budget expired"

	// an auxiliary device command was not acknowledged
	NoAcknowledge = "no acknowledge (%#02x)"
)

// DefaultPollBudget is the maximum number of status polls for a single wait.
// The value is generous for real hardware, where the controller responds
// within a handful of polls.
const DefaultPollBudget = 50000

// Controller layers bounded waiting and the command/acknowledge discipline
// on top of a Port.
//
// Every wait is a poll of the status register with a maximum attempt count.
// There is no retry of failed commands anywhere in this type. Retry policy,
// if any, belongs to the caller.
type Controller struct {
	port Port

	// the maximum number of status polls for a single wait. altering this
	// value affects all subsequent waits. tests use a small budget so that
	// failure paths complete quickly
	PollBudget int
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(port Port) *Controller {
	return &Controller{
		port:       port,
		PollBudget: DefaultPollBudget,
	}
}

// the two conditions a poll can wait for.
type pollCondition int

const (
	// a byte is waiting in the output buffer
	pollReadable pollCondition = iota

	// the input buffer is clear and will accept a write
	pollWritable
)

// poll the status register until the condition is met, for at most
// PollBudget attempts. The budget bounds the wait by iteration count, never
// by wall-clock time.
func (con *Controller) poll(c pollCondition) error {
	for i := 0; i < con.PollBudget; i++ {
		status, err := con.port.ReadStatus()
		if err != nil {
			return err
		}

		switch c {
		case pollReadable:
			if status&StatusOutputFull == StatusOutputFull {
				return nil
			}
		case pollWritable:
			if status&StatusInputFull == 0x00 {
				return nil
			}
		}
	}

	return curated.Errorf(PollExpired)
}

// Read a byte from the data register, waiting for the output buffer to fill.
func (con *Controller) Read() (uint8, error) {
	if err := con.poll(pollReadable); err != nil {
		return 0, err
	}
	return con.port.ReadData()
}

// Write a byte to the data register, waiting for the input buffer to clear.
func (con *Controller) Write(data uint8) error {
	if err := con.poll(pollWritable); err != nil {
		return err
	}
	return con.port.WriteData(data)
}

// Command sends a controller command, waiting for the input buffer to clear.
func (con *Controller) Command(cmd uint8) error {
	if err := con.poll(pollWritable); err != nil {
		return err
	}
	return con.port.WriteCommand(cmd)
}

// WriteAux routes a byte to the auxiliary device via the CmdWriteAux prefix.
func (con *Controller) WriteAux(data uint8) error {
	if err := con.Command(CmdWriteAux); err != nil {
		return err
	}
	return con.Write(data)
}

// AuxCommand sends a command byte to the auxiliary device and requires the
// Acknowledge response. A missing or malformed acknowledge fails with the
// NoAcknowledge sentinal; the command is not retried.
func (con *Controller) AuxCommand(cmd uint8) error {
	if err := con.WriteAux(cmd); err != nil {
		return err
	}

	resp, err := con.Read()
	if err != nil {
		return err
	}
	if resp != Acknowledge {
		return curated.Errorf(NoAcknowledge, resp)
	}

	return nil
}

// Drain reads and discards any bytes waiting in the controller's output
// buffer. Used to clear stale data before initialisation. The drain is
// bounded by the poll budget.
func (con *Controller) Drain() error {
	for i := 0; i < con.PollBudget; i++ {
		status, err := con.port.ReadStatus()
		if err != nil {
			return err
		}
		if status&StatusOutputFull == 0x00 {
			return nil
		}
		if _, err := con.port.ReadData(); err != nil {
			return err
		}
	}

	return curated.Errorf(PollExpired)
}

// MouseSetup collates the optional tuning applied during InitMouse().
//
// The zero value requests no tuning at all, except that Resolution and
// SampleRate must be set to -1 to be left at the device default. Tuning
// values the device does not support surface as a no-acknowledge error;
// they are not validated here.
type MouseSetup struct {
	// apply 1:1 scaling (MouseSetScaling11)
	Scaling11 bool

	// resolution code 0 to 3 (MouseSetResolution). -1 leaves the device
	// default
	Resolution int

	// sample rate in reports per second (MouseSetSampleRate). -1 leaves the
	// device default
	SampleRate int

	// probe the device id after initialisation (MouseIdentify). the result
	// is logged and not otherwise acted on
	Identify bool
}

// InitMouse brings the auxiliary channel up and puts the mouse into packet
// streaming mode.
//
// The sequence is strict: drain stale bytes; enable the auxiliary device;
// fix up the config byte (both interrupt enables on, auxiliary clock on);
// set device defaults; apply any tuning from setup; enable streaming. Any
// failure aborts the sequence immediately and is returned to the caller.
// This function never retries.
func (con *Controller) InitMouse(setup MouseSetup) error {
	// stale bytes from before a reboot or a previous run would desynchronise
	// the acknowledge reads below
	if err := con.Drain(); err != nil {
		return curated.Errorf("mouse: %v", err)
	}

	if err := con.Command(CmdEnableAux); err != nil {
		return curated.Errorf("mouse: %v", err)
	}

	// read the config byte, enable both interrupts, make sure the auxiliary
	// clock is running, write it back
	if err := con.Command(CmdReadConfig); err != nil {
		return curated.Errorf("mouse: %v", err)
	}
	cfg, err := con.Read()
	if err != nil {
		return curated.Errorf("mouse: %v", err)
	}
	cfg |= ConfigKeyboardInterrupt | ConfigAuxInterrupt
	cfg &^= ConfigAuxClockDisable
	if err := con.Command(CmdWriteConfig); err != nil {
		return curated.Errorf("mouse: %v", err)
	}
	if err := con.Write(cfg); err != nil {
		return curated.Errorf("mouse: %v", err)
	}

	if err := con.AuxCommand(MouseSetDefaults); err != nil {
		return curated.Errorf("mouse: %v", err)
	}

	if setup.Scaling11 {
		if err := con.AuxCommand(MouseSetScaling11); err != nil {
			return curated.Errorf("mouse: %v", err)
		}
	}

	if setup.Resolution >= 0 {
		if err := con.AuxCommand(MouseSetResolution); err != nil {
			return curated.Errorf("mouse: %v", err)
		}
		if err := con.auxArgument(uint8(setup.Resolution)); err != nil {
			return curated.Errorf("mouse: %v", err)
		}
	}

	if setup.SampleRate >= 0 {
		if err := con.AuxCommand(MouseSetSampleRate); err != nil {
			return curated.Errorf("mouse: %v", err)
		}
		if err := con.auxArgument(uint8(setup.SampleRate)); err != nil {
			return curated.Errorf("mouse: %v", err)
		}
	}

	if err := con.AuxCommand(MouseEnableStream); err != nil {
		return curated.Errorf("mouse: %v", err)
	}

	if setup.Identify {
		if err := con.AuxCommand(MouseIdentify); err != nil {
			return curated.Errorf("mouse: %v", err)
		}
		id, err := con.Read()
		if err != nil {
			return curated.Errorf("mouse: %v", err)
		}
		logger.Logf("mouse", "device id %#02x", id)
	}

	return nil
}

// an argument byte following an auxiliary command. acknowledged in the same
// way as the command itself.
func (con *Controller) auxArgument(arg uint8) error {
	if err := con.WriteAux(arg); err != nil {
		return err
	}

	resp, err := con.Read()
	if err != nil {
		return err
	}
	if resp != Acknowledge {
		return curated.Errorf(NoAcknowledge, resp)
	}

	return nil
}
