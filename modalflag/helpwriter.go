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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter captures everything the flag package would print so that it can
// be reshaped before it reaches the user.
type helpWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface. All output is buffered.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

// Clear the buffered output.
func (hw *helpWriter) Clear() {
	hw.buffer = hw.buffer[:0]
}

// Help composes the buffered flag output, the list of sub-modes and any
// additional help text into the message the user sees.
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	s := strings.Builder{}
	buf := string(hw.buffer)
	lines := strings.Split(buf, "\n")

	// nothing to say when there are no flags and no sub-modes
	if buf == "Usage:\n" && len(subModes) == 0 {
		s.WriteString("No help available")
		if banner != "" {
			s.WriteString(fmt.Sprintf(" for %s", banner))
		}
		s.WriteString("\n")
		io.WriteString(output, s.String())
		return
	}

	// the first line is the usage banner from the flag package. extend it
	// with the mode path when there is one
	if banner != "" {
		s.WriteString(fmt.Sprintf("%s for %s mode\n", lines[0], banner))
	} else {
		s.WriteString(lines[0])
		s.WriteString("\n")
	}

	// the rest of the flag package output is used as it is
	if len(lines) > 1 {
		s.WriteString(strings.Join(lines[1:], "\n"))
	}

	if len(subModes) > 0 {
		// separate the sub-mode information from any flag information
		if len(lines) > 2 {
			s.WriteString("\n")
		}

		s.WriteString(fmt.Sprintf("  available sub-modes: %s\n", strings.Join(subModes, ", ")))
		s.WriteString(fmt.Sprintf("    default: %s\n", subModes[0]))
	}

	if additionalHelp != "" {
		s.WriteString("\n")
		s.WriteString(additionalHelp)
		s.WriteString("\n")
	}

	io.WriteString(output, s.String())
}
