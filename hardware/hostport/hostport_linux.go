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

//go:build linux
// +build linux

package hostport

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/fpedrolucas95/Atom/curated"
	"github.com/fpedrolucas95/Atom/hardware/ps2"
)

// the Linux device exposing x86 IO ports as file offsets.
const devicePath = "/dev/port"

// Device is a ps2.Port backed by the host machine's real controller.
type Device struct {
	fd int
}

// NewDevice is the preferred method of initialisation for the Device type.
// The port device is opened immediately. An EACCES or EPERM failure almost
// always means a missing root privilege.
func NewDevice() (*Device, error) {
	fd, err := unix.Open(devicePath, unix.O_RDWR, 0)
	if err != nil {
		return nil, curated.Errorf("hostport: %s: %v", devicePath, err)
	}
	return &Device{fd: fd}, nil
}

func (dev *Device) String() string {
	return fmt.Sprintf("%s (fd %d)", devicePath, dev.fd)
}

// Close releases the port device.
func (dev *Device) Close() error {
	if err := unix.Close(dev.fd); err != nil {
		return curated.Errorf("hostport: %v", err)
	}
	return nil
}

// read one byte at a port address.
func (dev *Device) in(port int64) (uint8, error) {
	var b [1]uint8
	n, err := unix.Pread(dev.fd, b[:], port)
	if err != nil {
		return 0, curated.Errorf("hostport: read port %#02x: %v", port, err)
	}
	if n != 1 {
		return 0, curated.Errorf("hostport: read port %#02x: short read", port)
	}
	return b[0], nil
}

// write one byte at a port address.
func (dev *Device) out(port int64, data uint8) error {
	b := [1]uint8{data}
	n, err := unix.Pwrite(dev.fd, b[:], port)
	if err != nil {
		return curated.Errorf("hostport: write port %#02x: %v", port, err)
	}
	if n != 1 {
		return curated.Errorf("hostport: write port %#02x: short write", port)
	}
	return nil
}

// ReadStatus implements the ps2.Port interface.
func (dev *Device) ReadStatus() (uint8, error) {
	return dev.in(ps2.StatusRegister)
}

// ReadData implements the ps2.Port interface.
func (dev *Device) ReadData() (uint8, error) {
	return dev.in(ps2.DataRegister)
}

// WriteData implements the ps2.Port interface.
func (dev *Device) WriteData(data uint8) error {
	return dev.out(ps2.DataRegister, data)
}

// WriteCommand implements the ps2.Port interface. Commands are written at
// the same address the status register is read from.
func (dev *Device) WriteCommand(cmd uint8) error {
	return dev.out(ps2.StatusRegister, cmd)
}
