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

package instructions_test

import (
	"testing"

	"github.com/gopher101/gopher101/hardware/cpu/instructions"
	"github.com/gopher101/gopher101/test"
)

func TestDocumentedCount(t *testing.T) {
	var n int
	for i := range instructions.Definitions {
		if defn := instructions.Definitions[i]; defn != nil {
			n++
			test.ExpectEquality(t, int(defn.OpCode), i)
		}
	}
	test.ExpectEquality(t, n, 151)
}

func TestBytes(t *testing.T) {
	test.ExpectEquality(t, instructions.Definitions[0xea].Bytes, 1)
	test.ExpectEquality(t, instructions.Definitions[0xa9].Bytes, 2)
	test.ExpectEquality(t, instructions.Definitions[0x00].Bytes, 2)
	test.ExpectEquality(t, instructions.Definitions[0xd0].Bytes, 2)
	test.ExpectEquality(t, instructions.Definitions[0x20].Bytes, 3)
	test.ExpectEquality(t, instructions.Definitions[0x6c].Bytes, 3)
}

func TestPageSensitivity(t *testing.T) {
	// stores never take the page crossing penalty
	for _, op := range []uint8{0x9d, 0x99, 0x91} {
		test.ExpectFailure(t, instructions.Definitions[op].PageSensitive, op)
	}

	// nor do read-modify-write instructions
	for _, op := range []uint8{0x1e, 0x3e, 0x5e, 0x7e, 0xde, 0xfe} {
		test.ExpectFailure(t, instructions.Definitions[op].PageSensitive, op)
	}

	for _, op := range []uint8{0xbd, 0xb9, 0xb1, 0xbe, 0xbc, 0x7d, 0xf1, 0xdd} {
		test.ExpectSuccess(t, instructions.Definitions[op].PageSensitive, op)
	}
}

func TestIllegal(t *testing.T) {
	test.ExpectSuccess(t, instructions.Illegal(0x02))
	test.ExpectSuccess(t, instructions.Illegal(0xff))
	test.ExpectFailure(t, instructions.Illegal(0xea))
	test.ExpectSuccess(t, instructions.Definitions[0xd0].IsBranch())
	test.ExpectFailure(t, instructions.Definitions[0x4c].IsBranch())
}
