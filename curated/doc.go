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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like
// Errorf() in the fmt package, taking a formatting pattern and placeholder
// values, and returning an error.
//
// The Is() function checks whether an error is a curated error with a
// specific pattern. The pattern is what differentiates one curated error from
// another:
//
//	e := curated.Errorf("mouse: no acknowledge (%#02x)", b)
//
//	if curated.Is(e, "mouse: no acknowledge (%#02x)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain, not just at the head:
//
//	f := curated.Errorf("driver: %v", e)
//
//	if curated.Has(f, "mouse: no acknowledge (%#02x)") {
//		fmt.Println("true")
//	}
//
// In that example Is() would return false for error f because the pattern is
// wrapped inside "driver: %v".
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. Put another way, it divides errors into 'curated' and 'uncurated', or
// if you prefer, 'expected' and 'unexpected'.
//
// The Error() function for curated errors normalises the message chain by
// removing duplicate adjacent parts. This means functions can wrap errors
// freely without worrying about ugly repetition in the final message. A chain
// is a message composed of parts separated by the sub-string ': ', as
// suggested on p239 of "The Go Programming Language" (Donovan, Kernighan).
//
// Sentinal errors are achieved by storing the pattern as a const string,
// suitably named and commented, and testing for it with Is() or Has().
package curated
