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

//go:build windows
// +build windows

package terminal

import (
	"github.com/fpedrolucas95/Atom/curated"
	"github.com/fpedrolucas95/Atom/input"
)

const notSupported = "terminal: not available on windows"

// Terminal is not available under windows.
type Terminal struct {
}

// NewTerminal always fails under windows.
func NewTerminal(inj Injector) (*Terminal, error) {
	return nil, curated.Errorf(notSupported)
}

// Run implements the raw terminal loop. Not available under windows.
func (trm *Terminal) Run() error {
	return curated.Errorf(notSupported)
}

// HandleInput implements the input.Handler interface.
func (trm *Terminal) HandleInput(ev input.Event) error {
	return nil
}
