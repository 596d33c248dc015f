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

import "testing"

// ExpectedFailure fails the test unless v indicates failure. What failure
// means depends on the type of v: a bool fails when it is false and an error
// fails when it is non-nil. A nil v counts as success, so the test fails.
//
// The return value mirrors whether the expectation held.
func ExpectedFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure but bool is true")
			return false
		}

	case error:
		if v == nil {
			t.Errorf("expected failure but error is nil")
			return false
		}

	case nil:
		t.Errorf("expected failure but value is nil")
		return false

	default:
		t.Fatalf("unhandled type (%T) for expectation testing", v)
		return false
	}

	return true
}

// ExpectedSuccess fails the test unless v indicates success: a true bool or
// a nil error. A nil v counts as success. Interpreting nil this way is
// required for the error type to work as expected, nil being how functions
// say that nothing went wrong.
//
// The return value mirrors whether the expectation held.
func ExpectedSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success but bool is false")
			return false
		}

	case error:
		if v != nil {
			t.Errorf("expected success but error is: %v", v)
			return false
		}

	case nil:
		return true

	default:
		t.Fatalf("unhandled type (%T) for expectation testing", v)
		return false
	}

	return true
}
