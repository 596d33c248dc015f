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

package recorder

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fpedrolucas95/Atom/curated"
	"github.com/fpedrolucas95/Atom/hardware/ps2"
	"github.com/fpedrolucas95/Atom/logger"
)

// Tap wraps a ps2.Port and records the session passing through it. The
// wrapped port sees every operation unchanged.
type Tap struct {
	port   ps2.Port
	output *os.File

	// the most recent status byte seen through the tap. recorded alongside
	// every data byte so a replay can reproduce the routing
	lastStatus uint8
}

// NewTap is the preferred method of initialisation for the Tap type. The
// transcript file must not already exist.
func NewTap(port ps2.Port, transcript string) (*Tap, error) {
	output, err := os.OpenFile(transcript, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	tap := &Tap{
		port:   port,
		output: output,
	}

	if err := tap.writeHeader(); err != nil {
		return nil, err
	}

	logger.Logf("recorder", "recording to %s", transcript)

	return tap, nil
}

// End closes the transcript file. The Tap must not be used once it has
// ended.
func (tap *Tap) End() error {
	if err := tap.output.Close(); err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}

func (tap *Tap) writeHeader() error {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magic
	lines[lineVersion] = version

	line := strings.Join(lines, "\n") + "\n"

	n, err := io.WriteString(tap.output, line)
	if err != nil {
		tap.output.Close()
		return curated.Errorf("recorder: %v", err)
	}
	if n != len(line) {
		tap.output.Close()
		return curated.Errorf("recorder: output truncated")
	}

	return nil
}

func (tap *Tap) writeEntry(op string, status uint8, data uint8) error {
	line := fmt.Sprintf("%s%s%#04x%s%#04x\n", op, fieldSep, status, fieldSep, data)

	n, err := io.WriteString(tap.output, line)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	if n != len(line) {
		return curated.Errorf("recorder: output truncated")
	}

	return nil
}

// ReadStatus implements the ps2.Port interface. Status polls are passed
// through unrecorded.
func (tap *Tap) ReadStatus() (uint8, error) {
	status, err := tap.port.ReadStatus()
	if err != nil {
		return status, err
	}
	tap.lastStatus = status
	return status, nil
}

// ReadData implements the ps2.Port interface.
func (tap *Tap) ReadData() (uint8, error) {
	data, err := tap.port.ReadData()
	if err != nil {
		return data, err
	}
	if err := tap.writeEntry(opRead, tap.lastStatus, data); err != nil {
		return data, err
	}
	return data, nil
}

// WriteData implements the ps2.Port interface.
func (tap *Tap) WriteData(data uint8) error {
	if err := tap.port.WriteData(data); err != nil {
		return err
	}
	return tap.writeEntry(opWrite, 0x00, data)
}

// WriteCommand implements the ps2.Port interface.
func (tap *Tap) WriteCommand(cmd uint8) error {
	if err := tap.port.WriteCommand(cmd); err != nil {
		return err
	}
	return tap.writeEntry(opCommand, 0x00, cmd)
}
