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

import (
	"testing"
)

// Equate fails the test unless value equals expectedValue. The two arguments
// must normally be of the same type but when value is a uint8 or an int32
// the expected value may be given as a plain int. Number literals are typed
// int, so this allows:
//
//	var b uint8
//	b = someFunction()
//	test.Equate(t, b, 0xfa)
//
// without a cast cluttering the call site.
//
// Only the types that the tests in this repository actually compare are
// handled. Anything else stops the test immediately.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	case nil:
		if expectedValue != nil {
			t.Errorf("%T comparison failed: %v (wanted nil)", v, v)
		}

	case int:
		switch ev := expectedValue.(type) {
		case int:
			if v != ev {
				t.Errorf("%T comparison failed: %d (wanted %d)", v, v, ev)
			}
		default:
			t.Fatalf("cannot compare %T with %T in Equate()", v, expectedValue)
		}

	case int32:
		// int32 is the rune type so an int expected value is allowed, as
		// it is for uint8
		switch ev := expectedValue.(type) {
		case int:
			if v != int32(ev) {
				t.Errorf("%T comparison failed: %d (wanted %d)", v, v, ev)
			}
		case int32:
			if v != ev {
				t.Errorf("%T comparison failed: %q (wanted %q)", v, v, ev)
			}
		default:
			t.Fatalf("cannot compare %T with %T in Equate()", v, ev)
		}

	case uint8:
		switch ev := expectedValue.(type) {
		case int:
			if v != uint8(ev) {
				t.Errorf("%T comparison failed: %#02x (wanted %#02x)", v, v, ev)
			}
		case uint8:
			if v != ev {
				t.Errorf("%T comparison failed: %#02x (wanted %#02x)", v, v, ev)
			}
		default:
			t.Fatalf("cannot compare %T with %T in Equate()", v, ev)
		}

	case string:
		switch ev := expectedValue.(type) {
		case string:
			if v != ev {
				t.Errorf("%T comparison failed: %s (wanted %s)", v, v, ev)
			}
		default:
			t.Fatalf("cannot compare %T with %T in Equate()", v, expectedValue)
		}

	case bool:
		switch ev := expectedValue.(type) {
		case bool:
			if v != ev {
				t.Errorf("%T comparison failed: %v (wanted %v)", v, v, ev)
			}
		default:
			t.Fatalf("cannot compare %T with %T in Equate()", v, expectedValue)
		}

	default:
		t.Fatalf("unhandled type for Equate() function (%T)", v)
	}
}
