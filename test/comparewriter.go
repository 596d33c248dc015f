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

package test

// CompareWriter is an io.Writer that keeps everything written to it, for
// comparison against an expected string.
type CompareWriter struct {
	buffer []byte
}

func (w *CompareWriter) Write(p []byte) (n int, err error) {
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Clear forgets everything written so far.
func (w *CompareWriter) Clear() {
	w.buffer = w.buffer[:0]
}

// Compare the captured output against the expected string.
func (w *CompareWriter) Compare(s string) bool {
	return s == string(w.buffer)
}

// String returns the captured output.
func (w *CompareWriter) String() string {
	return string(w.buffer)
}
