// This file is part of Gopher101.
//
// Gopher101 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher101 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher101.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a formatting pattern
// and placeholder values in the same way as fmt.Errorf(). The pattern is
// remembered and can be tested for with Is() and Has():
//
//	e := curated.Errorf("romloader: %v", err)
//
//	if curated.Is(e, "romloader: %v") {
//		fmt.Println("true")
//	}
//
// Has() differs from Is() in that the pattern can occur anywhere in the error
// chain:
//
//	f := curated.Errorf("gopher101: %v", e)
//
//	if curated.Has(f, "romloader: %v") {
//		fmt.Println("true")
//	}
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts. A chain that reads "tape: tape: bad header" will be
// printed as "tape: bad header". This means a function can wrap the errors
// returned by a function in the same package without worrying about
// repetition.
//
// Uncurated errors (those created with errors.New() or fmt.Errorf() for
// example) placed in the values of a curated error can be reached with
// errors.Is() and errors.As() because curated errors implement Unwrap().
package curated
