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

//go:build !linux
// +build !linux

package hostport

import (
	"github.com/fpedrolucas95/Atom/curated"
)

// sentinal error for every operation on this platform.
const notSupported = "hostport: not supported on this platform"

// Device is a ps2.Port backed by the host machine's real controller. Only
// available on Linux.
type Device struct{}

// NewDevice always fails on this platform.
func NewDevice() (*Device, error) {
	return nil, curated.Errorf(notSupported)
}

func (dev *Device) String() string {
	return "not supported"
}

// Close releases the port device.
func (dev *Device) Close() error {
	return nil
}

// ReadStatus implements the ps2.Port interface.
func (dev *Device) ReadStatus() (uint8, error) {
	return 0, curated.Errorf(notSupported)
}

// ReadData implements the ps2.Port interface.
func (dev *Device) ReadData() (uint8, error) {
	return 0, curated.Errorf(notSupported)
}

// WriteData implements the ps2.Port interface.
func (dev *Device) WriteData(data uint8) error {
	return curated.Errorf(notSupported)
}

// WriteCommand implements the ps2.Port interface.
func (dev *Device) WriteCommand(cmd uint8) error {
	return curated.Errorf(notSupported)
}
