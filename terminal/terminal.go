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

//go:build !windows
// +build !windows

package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/fpedrolucas95/Atom/curated"
	"github.com/fpedrolucas95/Atom/input"
	"github.com/fpedrolucas95/Atom/logger"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// byte values with special meaning when the terminal is in raw mode.
const (
	keyInterrupt      = 0x03
	keyCarriageReturn = 0x0d
	keyBackspace      = 0x7f
)

// Terminal reads the controlling terminal in raw mode and injects a
// scancode stream for everything typed. It doubles as the input.Handler for
// the session, writing decoded events back to the terminal.
type Terminal struct {
	input  *os.File
	output *os.File
	inj    Injector

	canAttr unix.Termios
	rawAttr unix.Termios
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(inj Injector) (*Terminal, error) {
	trm := &Terminal{
		input:  os.Stdin,
		output: os.Stdout,
		inj:    inj,
	}

	err := termios.Tcgetattr(trm.input.Fd(), &trm.canAttr)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	trm.rawAttr = trm.canAttr
	termios.Cfmakeraw(&trm.rawAttr)

	return trm, nil
}

// Run puts the terminal into raw mode and reads it until ctrl-c is pressed
// or the input ends. The previous terminal state is restored on return.
func (trm *Terminal) Run() error {
	err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.rawAttr)
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	defer func() {
		_ = termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.canAttr)
	}()

	b := make([]uint8, 1)
	for {
		n, err := trm.input.Read(b)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("terminal: %v", err)
		}
		if n == 0 {
			continue
		}

		r := rune(b[0])
		switch r {
		case keyInterrupt:
			return nil

		case keyCarriageReturn:
			// raw mode reports the return key as a carriage return and the
			// backspace key as a delete. normalise both to the characters
			// the scancode tables know about
			r = '\n'

		case keyBackspace:
			r = '\x08'
		}

		seq, ok := Sequence(r)
		if !ok {
			continue
		}
		trm.inj.InjectScancode(seq...)
	}
}

// HandleInput implements the input.Handler interface. Decoded events are
// written back to the terminal and recorded in the log.
func (trm *Terminal) HandleInput(ev input.Event) error {
	logger.Logf("terminal", "%s", ev)

	// the terminal is in raw mode while events arrive. the carriage return
	// keeps the output column stable
	_, err := trm.output.WriteString(fmt.Sprintf("%s\r\n", ev))
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}

	return nil
}
