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

package mouse

import (
	"testing"

	"github.com/fpedrolucas95/Atom/test"
)

func TestCorruptCycle(t *testing.T) {
	asm := NewAssembler()
	asm.cycle = 7

	// a cycle value outside the valid range is treated as corruption. it is
	// forced back to zero without emitting and the byte is sacrificed
	ev := asm.Feed(0x08)
	test.Equate(t, len(ev), 0)
	test.Equate(t, asm.cycle, 0)

	// the assembler is usable again
	ev = asm.Feed(0x08)
	test.Equate(t, len(ev), 0)
	ev = asm.Feed(0x05)
	test.Equate(t, len(ev), 0)
	ev = asm.Feed(0xfb)
	test.Equate(t, len(ev), 1)
}
