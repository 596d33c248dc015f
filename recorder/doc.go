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

// Package recorder captures and replays the byte traffic of a PS/2 session.
//
// A Tap wraps any ps2.Port and records the session passing through it to a
// plain text transcript. Recorded are the bytes read from the data register,
// together with the status byte that routed them, and every byte written to
// the controller. Status polls themselves are not recorded, which keeps a
// transcript independent of how often the driver happened to poll.
//
// A Playback replays a transcript as a ps2.Port. Reads are served in
// recorded order; writes are checked against the recording and a divergence
// fails the replay. Once the transcript is exhausted every port operation
// returns the EndOfTranscript sentinal, which the driver treats as a clean
// stop.
//
// A session recorded against real hardware thereby becomes a regression
// fixture, replayable anywhere.
package recorder
