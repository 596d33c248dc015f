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
	"strconv"
	"strings"

	"github.com/fpedrolucas95/Atom/curated"
	"github.com/fpedrolucas95/Atom/logger"
)

// Sentinal errors returned by Playback.
const (
	// every port operation returns this once the transcript is exhausted
	EndOfTranscript = "end of transcript"

	// the replayed session diverged from the recording
	PlaybackMismatch = "playback: line %d: unexpected %s"
)

type playbackEntry struct {
	op     string
	status uint8
	data   uint8

	// the line in the transcript the entry appears on
	line int
}

// Playback replays a transcript as a ps2.Port.
//
// Reads are served in recorded order. Writes are checked against the
// recording; a byte the recorded session never wrote fails the replay.
type Playback struct {
	transcript string

	sequence []playbackEntry
	seqCt    int
}

// NewPlayback is the preferred method of initialisation for the Playback
// type.
func NewPlayback(transcript string) (*Playback, error) {
	plb := &Playback{
		transcript: transcript,
		sequence:   make([]playbackEntry, 0),
	}

	tf, err := os.Open(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	buffer, err := io.ReadAll(tf)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	err = tf.Close()
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	lines := strings.Split(string(buffer), "\n")

	if len(lines) < numHeaderLines || lines[lineMagic] != magic {
		return nil, curated.Errorf("playback: %s is not a transcript", transcript)
	}
	if lines[lineVersion] != version {
		return nil, curated.Errorf("playback: unsupported transcript version (%s)", lines[lineVersion])
	}

	for i := numHeaderLines; i < len(lines)-1; i++ {
		toks := strings.Split(lines[i], fieldSep)
		if len(toks) != numFields {
			return nil, curated.Errorf("playback: expected %d fields at line %d", numFields, i+1)
		}

		entry := playbackEntry{
			op:   toks[fieldOp],
			line: i + 1,
		}

		switch entry.op {
		case opRead, opWrite, opCommand:
		default:
			return nil, curated.Errorf("playback: unknown operation (%s) at line %d", entry.op, i+1)
		}

		v, err := strconv.ParseUint(toks[fieldStatus], 0, 8)
		if err != nil {
			return nil, curated.Errorf("playback: %v at line %d", err, i+1)
		}
		entry.status = uint8(v)

		v, err = strconv.ParseUint(toks[fieldData], 0, 8)
		if err != nil {
			return nil, curated.Errorf("playback: %v at line %d", err, i+1)
		}
		entry.data = uint8(v)

		plb.sequence = append(plb.sequence, entry)
	}

	logger.Logf("playback", "%s (%d entries)", transcript, len(plb.sequence))

	return plb, nil
}

func (plb *Playback) String() string {
	if len(plb.sequence) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.seqCt, len(plb.sequence),
		100*(float64(plb.seqCt)/float64(len(plb.sequence))))
}

// the next unconsumed entry, or nil once the transcript is exhausted.
func (plb *Playback) next() *playbackEntry {
	if plb.seqCt >= len(plb.sequence) {
		return nil
	}
	return &plb.sequence[plb.seqCt]
}

// ReadStatus implements the ps2.Port interface.
//
// While a read entry is pending the recorded status byte is returned, so
// the replayed drain routes the byte the same way the live one did. While a
// write entry is pending the status reports writable.
func (plb *Playback) ReadStatus() (uint8, error) {
	e := plb.next()
	if e == nil {
		return 0, curated.Errorf(EndOfTranscript)
	}
	if e.op == opRead {
		return e.status, nil
	}
	return 0x00, nil
}

// ReadData implements the ps2.Port interface.
func (plb *Playback) ReadData() (uint8, error) {
	e := plb.next()
	if e == nil {
		return 0, curated.Errorf(EndOfTranscript)
	}
	if e.op != opRead {
		return 0, curated.Errorf(PlaybackMismatch, e.line, "data read")
	}
	plb.seqCt++
	return e.data, nil
}

// WriteData implements the ps2.Port interface.
func (plb *Playback) WriteData(data uint8) error {
	e := plb.next()
	if e == nil {
		return curated.Errorf(EndOfTranscript)
	}
	if e.op != opWrite || e.data != data {
		return curated.Errorf(PlaybackMismatch, e.line, fmt.Sprintf("data write %#04x", data))
	}
	plb.seqCt++
	return nil
}

// WriteCommand implements the ps2.Port interface.
func (plb *Playback) WriteCommand(cmd uint8) error {
	e := plb.next()
	if e == nil {
		return curated.Errorf(EndOfTranscript)
	}
	if e.op != opCommand || e.data != cmd {
		return curated.Errorf(PlaybackMismatch, e.line, fmt.Sprintf("command %#04x", cmd))
	}
	plb.seqCt++
	return nil
}
