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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failed test with t.Errorf() and allow the
// test to continue. The Demand*() functions report failure with t.Fatalf()
// and should be used when the remainder of the test depends on the value
// being correct.
//
// Success and failure are judged according to the type of the value. For
// bool a success value is true and for error a success value is nil. The nil
// type is considered to be a success because that is how errors usually work.
//
// The writer types implement io.Writer and are used to capture output that
// can then be compared with expected strings.
package test
