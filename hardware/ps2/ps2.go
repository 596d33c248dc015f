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

// Port is the access the PS/2 core has to the i8042 controller. The core
// only ever consumes this interface; it never implements it.
type Port interface {
	// ReadStatus returns the value of the status register.
	ReadStatus() (uint8, error)

	// ReadData returns the value of the data register, removing the byte
	// from the controller's output buffer.
	ReadData() (uint8, error)

	// WriteData writes a byte to the data register.
	WriteData(data uint8) error

	// WriteCommand writes a controller command to the command register.
	WriteCommand(cmd uint8) error
}

// Register addresses on the host bus. The Port interface abstracts these;
// only host backends and the emulated controller care.
const (
	DataRegister   = 0x60
	StatusRegister = 0x64
)

// Status register bits.
const (
	// a byte is waiting in the controller's output buffer
	StatusOutputFull = 0x01

	// the last byte written to the controller has not been accepted yet
	StatusInputFull = 0x02

	// the waiting byte originated from the auxiliary device
	StatusAuxData = 0x20
)

// Controller commands, written to the command register.
const (
	CmdReadConfig  = 0x20
	CmdWriteConfig = 0x60
	CmdDisableAux  = 0xa7
	CmdEnableAux   = 0xa8
	CmdSelfTest    = 0xaa
	CmdTestPort    = 0xab

	// the next byte written to the data register is routed to the auxiliary
	// device
	CmdWriteAux = 0xd4
)

// Config byte bits.
const (
	ConfigKeyboardInterrupt = 0x01
	ConfigAuxInterrupt      = 0x02
	ConfigAuxClockDisable   = 0x20
)

// Auxiliary device commands, sent via CmdWriteAux.
const (
	MouseSetScaling11  = 0xe6
	MouseSetResolution = 0xe8
	MouseIdentify      = 0xf2
	MouseSetSampleRate = 0xf3
	MouseEnableStream  = 0xf4
	MouseSetDefaults   = 0xf6
)

// Response bytes.
const (
	// sent by a device after every accepted command byte
	Acknowledge = 0xfa

	// sent by a device in place of Acknowledge when it wants the last byte
	// again. treated as a failed acknowledge by this driver
	Resend = 0xfe

	// response to CmdSelfTest when the controller is healthy
	SelfTestPassed = 0x55

	// response to CmdTestPort when the port is healthy
	TestPortPassed = 0x00
)
