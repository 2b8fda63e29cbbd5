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

package cpu_test

import (
	"testing"

	"github.com/gopher101/gopher101/hardware/cpu"
	"github.com/gopher101/gopher101/hardware/cpu/execution"
	"github.com/gopher101/gopher101/test"
)

// mockMem is a flat 64K of RAM.
type mockMem struct {
	internal [0x10000]uint8
}

func newMockMem() *mockMem {
	return &mockMem{}
}

// putInstructions places bytes at origin and returns the address following
// the last byte.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

// setVector stores a little-endian address at the vector address.
func (mem *mockMem) setVector(vector uint16, address uint16) {
	mem.Write(vector, uint8(address))
	mem.Write(vector+1, uint8(address>>8))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if d := mem.Read(address); d != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", d, value, address)
	}
}

// Clear sets all bytes in memory to zero.
func (mem *mockMem) Clear() {
	clear(mem.internal[:])
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

// step executes one instruction and checks the result for consistency.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	mc.ExecuteInstruction()
	err := mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}

// prepare clears memory, points the reset vector at origin and resets the
// CPU.
func prepare(mem *mockMem, mc *cpu.CPU, origin uint16) {
	mem.Clear()
	mem.setVector(0xfffc, origin)
	mc.Reset()
}

func expectRegisters(t *testing.T, mc *cpu.CPU, a, x, y uint8) {
	t.Helper()
	test.ExpectEquality(t, mc.A.Value(), a, "A")
	test.ExpectEquality(t, mc.X.Value(), x, "X")
	test.ExpectEquality(t, mc.Y.Value(), y, "Y")
}
