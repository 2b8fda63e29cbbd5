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

package cpu

import (
	"github.com/gopher101/gopher101/hardware/cpu/instructions"
)

// addressing resolves the effective address of an instruction's operand.
// The PC is advanced past the operand bytes. The crossed return value
// indicates that an indexed address crossed a page boundary, or for relative
// addressing, that the branch target is on a different page to the next
// instruction.
type addressing func(mc *CPU) (address uint16, crossed bool)

// addressing mode resolvers indexed by instructions.AddressingMode
var resolvers = [...]addressing{
	instructions.Implied:          implied,
	instructions.Immediate:        immediate,
	instructions.Relative:         relative,
	instructions.Absolute:         absolute,
	instructions.ZeroPage:         zeroPage,
	instructions.Indirect:         indirect,
	instructions.IndexedIndirect:  indexedIndirect,
	instructions.IndirectIndexed:  indirectIndexed,
	instructions.AbsoluteIndexedX: absoluteIndexedX,
	instructions.AbsoluteIndexedY: absoluteIndexedY,
	instructions.ZeroPageIndexedX: zeroPageIndexedX,
	instructions.ZeroPageIndexedY: zeroPageIndexedY,
}

func pageCrossed(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

func implied(mc *CPU) (uint16, bool) {
	return 0, false
}

// the effective address of an immediate operand is the address of the
// operand itself
func immediate(mc *CPU) (uint16, bool) {
	address := mc.PC.Address()
	mc.LastResult.InstructionData = uint16(mc.read8PC())
	return address, false
}

func relative(mc *CPU) (uint16, bool) {
	offset := mc.read8PC()
	mc.LastResult.InstructionData = uint16(offset)

	// the offset is signed and relative to the address following the
	// branch instruction
	next := mc.PC.Address()
	target := next + uint16(int16(int8(offset)))
	return target, pageCrossed(next, target)
}

func absolute(mc *CPU) (uint16, bool) {
	address := mc.read16PC()
	mc.LastResult.InstructionData = address
	return address, false
}

func zeroPage(mc *CPU) (uint16, bool) {
	zp := mc.read8PC()
	mc.LastResult.InstructionData = uint16(zp)
	return uint16(zp), false
}

// indirect addressing is used only by JMP. the pointer is incremented with
// a 16 bit carry.
func indirect(mc *CPU) (uint16, bool) {
	pointer := mc.read16PC()
	mc.LastResult.InstructionData = pointer
	return mc.read16(pointer), false
}

// (ind,X) adds X to the zero page operand and reads the address from the
// zero page. the addition and the pointer both wrap within the zero page
func indexedIndirect(mc *CPU) (uint16, bool) {
	zp := mc.read8PC()
	mc.LastResult.InstructionData = uint16(zp)
	return mc.read16ZeroPage(zp + mc.X.Value()), false
}

// (ind),Y reads the address from the zero page and adds Y to it
func indirectIndexed(mc *CPU) (uint16, bool) {
	zp := mc.read8PC()
	mc.LastResult.InstructionData = uint16(zp)
	base := mc.read16ZeroPage(zp)
	address := base + mc.Y.Address()
	return address, pageCrossed(base, address)
}

func absoluteIndexedX(mc *CPU) (uint16, bool) {
	base := mc.read16PC()
	mc.LastResult.InstructionData = base
	address := base + mc.X.Address()
	return address, pageCrossed(base, address)
}

func absoluteIndexedY(mc *CPU) (uint16, bool) {
	base := mc.read16PC()
	mc.LastResult.InstructionData = base
	address := base + mc.Y.Address()
	return address, pageCrossed(base, address)
}

func zeroPageIndexedX(mc *CPU) (uint16, bool) {
	zp := mc.read8PC()
	mc.LastResult.InstructionData = uint16(zp)
	return uint16(zp + mc.X.Value()), false
}

func zeroPageIndexedY(mc *CPU) (uint16, bool) {
	zp := mc.read8PC()
	mc.LastResult.InstructionData = uint16(zp)
	return uint16(zp + mc.Y.Value()), false
}
