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
	"strings"
	"testing"

	"github.com/gopher101/gopher101/hardware/cpu"
	"github.com/gopher101/gopher101/hardware/cpu/execution"
	"github.com/gopher101/gopher101/hardware/cpu/instructions"
	"github.com/gopher101/gopher101/logger"
	"github.com/gopher101/gopher101/test"
)

func TestReset(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// mangle registers before reset
	mc.A.Load(0x12)
	mc.X.Load(0x34)
	mc.Y.Load(0x56)
	mc.SP.Load(0x00)
	mc.Status.Carry = true
	mc.Status.DecimalMode = true

	mem.setVector(0xfffc, 0xff00)
	mem.Write(0x0200, 0x99)
	mc.Reset()

	test.ExpectEquality(t, mc.String(), "PC=0xff00 A=0x00 X=0x00 Y=0x00 SP=0xfd SR=sv--dIZc")

	// memory is not affected by reset
	mem.assert(t, 0x0200, 0x99)

	// reset is idempotent
	mc.Reset()
	test.ExpectEquality(t, mc.String(), "PC=0xff00 A=0x00 X=0x00 Y=0x00 SP=0xfd SR=sv--dIZc")
}

func TestStatusInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin := mem.putInstructions(0x0200, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "sv--dIZC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "sv--dIZc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "sv--diZc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "sv--dIZc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "sv--DIZc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "sv--dIZc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "sv--dIZc")

	// PHP; PLP
	mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)

	// break and unused bits are set in the pushed value
	mem.assert(t, 0x01fd, 0x36)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.String(), "sv--dIZc")
}

func TestLoadAndStore(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// LDA #$80; LDX #$01; LDY #$00; STA $10; STX $11,Y; STY $1234
	mem.putInstructions(0x0200, 0xa9, 0x80, 0xa2, 0x01, 0xa0, 0x00, 0x85, 0x10, 0x96, 0x11, 0x8c, 0x34, 0x12)
	step(t, mc) // LDA #$80
	test.ExpectEquality(t, mc.Status.String(), "Sv--dIzc")
	step(t, mc) // LDX #$01
	test.ExpectEquality(t, mc.Status.String(), "sv--dIzc")
	step(t, mc) // LDY #$00
	test.ExpectEquality(t, mc.Status.String(), "sv--dIZc")
	expectRegisters(t, mc, 0x80, 0x01, 0x00)

	step(t, mc) // STA $10
	mem.assert(t, 0x0010, 0x80)
	step(t, mc) // STX $11,Y
	mem.assert(t, 0x0011, 0x01)
	mem.Write(0x1234, 0xff)
	step(t, mc) // STY $1234
	mem.assert(t, 0x1234, 0x00)

	// stores do not affect flags
	test.ExpectEquality(t, mc.Status.String(), "sv--dIZc")
}

func TestRegisterArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// LDA #$50; ADC #$50
	origin := mem.putInstructions(0x0200, 0xa9, 0x50, 0x69, 0x50)
	step(t, mc) // LDA #$50
	step(t, mc) // ADC #$50
	test.ExpectEquality(t, mc.A.Value(), 0xa0)
	test.ExpectEquality(t, mc.Status.String(), "SV--dIzc")

	// SEC; SBC #$a1
	origin = mem.putInstructions(origin, 0x38, 0xe9, 0xa1)
	step(t, mc) // SEC
	step(t, mc) // SBC #$a1
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "Sv--dIzc")

	// CLC; LDA #$ff; ADC #$01
	mem.putInstructions(origin, 0x18, 0xa9, 0xff, 0x69, 0x01)
	step(t, mc) // CLC
	step(t, mc) // LDA #$ff
	step(t, mc) // ADC #$01
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.String(), "sv--dIZC")
}

func TestDecimalArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// SED; CLC; LDA #$19; ADC #$09
	origin := mem.putInstructions(0x0200, 0xf8, 0x18, 0xa9, 0x19, 0x69, 0x09)
	step(t, mc) // SED
	step(t, mc) // CLC
	step(t, mc) // LDA #$19
	step(t, mc) // ADC #$09
	test.ExpectEquality(t, mc.A.Value(), 0x28)
	test.ExpectFailure(t, mc.Status.Carry)

	// SEC; SBC #$29
	mem.putInstructions(origin, 0x38, 0xe9, 0x29)
	step(t, mc) // SEC
	step(t, mc) // SBC #$29
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)
}

func TestLogical(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// LDA #$f0; AND #$3c; ORA #$01; EOR #$ff
	origin := mem.putInstructions(0x0200, 0xa9, 0xf0, 0x29, 0x3c, 0x09, 0x01, 0x49, 0xff)
	step(t, mc) // LDA #$f0
	step(t, mc) // AND #$3c
	test.ExpectEquality(t, mc.A.Value(), 0x30)
	step(t, mc) // ORA #$01
	test.ExpectEquality(t, mc.A.Value(), 0x31)
	step(t, mc) // EOR #$ff
	test.ExpectEquality(t, mc.A.Value(), 0xce)
	test.ExpectSuccess(t, mc.Status.Sign)

	// BIT $10
	mem.Write(0x0010, 0xc0)
	mem.putInstructions(origin, 0x24, 0x10)
	step(t, mc) // BIT $10
	test.ExpectEquality(t, mc.Status.String(), "SV--dIzc")
	test.ExpectEquality(t, mc.A.Value(), 0xce)
}

func TestShifts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// LDA #$81; ASL A; ROL A; LSR A; ROR A
	origin := mem.putInstructions(0x0200, 0xa9, 0x81, 0x0a, 0x2a, 0x4a, 0x6a)
	step(t, mc) // LDA #$81
	step(t, mc) // ASL A
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc) // ROL A
	test.ExpectEquality(t, mc.A.Value(), 0x05)
	test.ExpectFailure(t, mc.Status.Carry)
	step(t, mc) // LSR A
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc) // ROR A
	test.ExpectEquality(t, mc.A.Value(), 0x81)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)

	// ASL $20; INC $21; DEC $22
	mem.Write(0x0020, 0x40)
	mem.Write(0x0021, 0xff)
	mem.Write(0x0022, 0x00)
	mem.putInstructions(origin, 0x06, 0x20, 0xe6, 0x21, 0xc6, 0x22)
	step(t, mc) // ASL $20
	mem.assert(t, 0x0020, 0x80)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Carry)
	step(t, mc) // INC $21
	mem.assert(t, 0x0021, 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc) // DEC $22
	mem.assert(t, 0x0022, 0xff)
	test.ExpectSuccess(t, mc.Status.Sign)

	// accumulator unchanged by memory operations
	test.ExpectEquality(t, mc.A.Value(), 0x81)
}

func TestCompare(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// LDA #$40; CMP #$40; CMP #$41; LDX #$10; CPX #$01; LDY #$00; CPY #$01
	mem.putInstructions(0x0200, 0xa9, 0x40, 0xc9, 0x40, 0xc9, 0x41, 0xa2, 0x10, 0xe0, 0x01, 0xa0, 0x00, 0xc0, 0x01)
	step(t, mc) // LDA #$40
	step(t, mc) // CMP #$40
	test.ExpectEquality(t, mc.Status.String(), "sv--dIZC")
	step(t, mc) // CMP #$41
	test.ExpectEquality(t, mc.Status.String(), "Sv--dIzc")
	step(t, mc) // LDX #$10
	step(t, mc) // CPX #$01
	test.ExpectEquality(t, mc.Status.String(), "sv--dIzC")
	step(t, mc) // LDY #$00
	step(t, mc) // CPY #$01
	test.ExpectEquality(t, mc.Status.String(), "Sv--dIzc")
}

func TestTransfers(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// LDA #$80; TAX; TAY; LDX #$00; TXS; TSX; INX; DEY; TYA; TXA
	mem.putInstructions(0x0200, 0xa9, 0x80, 0xaa, 0xa8, 0xa2, 0x00, 0x9a, 0xba, 0xe8, 0x88, 0x98, 0x8a)
	step(t, mc) // LDA #$80
	step(t, mc) // TAX
	step(t, mc) // TAY
	expectRegisters(t, mc, 0x80, 0x80, 0x80)
	step(t, mc) // LDX #$00
	step(t, mc) // TXS
	test.ExpectEquality(t, mc.SP.Value(), 0x00)

	// TXS does not affect flags
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc) // TSX
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc) // INX
	step(t, mc) // DEY
	expectRegisters(t, mc, 0x80, 0x01, 0x7f)
	step(t, mc) // TYA
	test.ExpectEquality(t, mc.A.Value(), 0x7f)
	step(t, mc) // TXA
	test.ExpectEquality(t, mc.A.Value(), 0x01)
}

func TestStack(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// LDA #$aa; PHA; LDA #$00; PLA
	mem.putInstructions(0x0200, 0xa9, 0xaa, 0x48, 0xa9, 0x00, 0x68)
	step(t, mc) // LDA #$aa
	step(t, mc) // PHA
	mem.assert(t, 0x01fd, 0xaa)
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)
	step(t, mc) // LDA #$00
	step(t, mc) // PLA
	test.ExpectEquality(t, mc.A.Value(), 0xaa)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectSuccess(t, mc.Status.Sign)

	// the stack pointer wraps within page one
	prepare(mem, mc, 0x0200)
	mc.SP.Load(0x00)
	mem.putInstructions(0x0200, 0x48, 0x68)
	step(t, mc) // PHA
	mem.assert(t, 0x0100, 0x00)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	step(t, mc) // PLA
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
}

func TestSubroutine(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// JSR $0300 ... $0300: RTS
	mem.putInstructions(0x0200, 0x20, 0x00, 0x03)
	mem.putInstructions(0x0300, 0x60)

	r := step(t, mc) // JSR $0300
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0300)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)

	// return address minus one is pushed high byte first
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x02)

	r = step(t, mc) // RTS
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0203)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestJumps(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// JMP $0300
	mem.putInstructions(0x0200, 0x4c, 0x00, 0x03)
	step(t, mc) // JMP $0300
	test.ExpectEquality(t, mc.PC.Address(), 0x0300)

	// JMP ($10ff). the pointer crosses a page and the high byte is read
	// from $1100
	mem.putInstructions(0x0300, 0x6c, 0xff, 0x10)
	mem.Write(0x10ff, 0x34)
	mem.Write(0x1100, 0x12)
	mem.Write(0x1000, 0x56)
	r := step(t, mc) // JMP ($10ff)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, r.Cycles, 5)
}

func TestBranching(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// BNE (not taken because Z is set on reset)
	mem.putInstructions(0x0200, 0xd0, 0x10)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x0202)

	// BEQ +$10 (taken, same page)
	mem.putInstructions(0x0202, 0xf0, 0x10)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectSuccess(t, r.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), 0x0214)

	// BEQ -$20 (taken, to previous page)
	mem.putInstructions(0x0214, 0xf0, 0xe0)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, mc.PC.Address(), 0x01f6)

	// page crossing is measured from the address after the branch. a
	// branch at $02fd with offset zero lands on $02ff, the same page
	prepare(mem, mc, 0x02fd)
	mem.putInstructions(0x02fd, 0xf0, 0x00)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x02ff)

	// a branch at $02fe with offset zero lands on $0300, the same page as
	// the next instruction
	prepare(mem, mc, 0x02fe)
	mem.putInstructions(0x02fe, 0xf0, 0x00)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x0300)

	// a branch at $02fd with offset one lands on $0300, a different page to
	// the next instruction at $02ff
	prepare(mem, mc, 0x02fd)
	mem.putInstructions(0x02fd, 0xf0, 0x01)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), 0x0300)
}

func TestAddressingModes(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// LDX #$01; LDA $ff,X wraps to $00
	mem.Write(0x0000, 0x11)
	mem.Write(0x0100, 0x22)
	mem.putInstructions(0x0200, 0xa2, 0x01, 0xb5, 0xff)
	step(t, mc)      // LDX #$01
	r := step(t, mc) // LDA $ff,X
	test.ExpectEquality(t, mc.A.Value(), 0x11)
	test.ExpectEquality(t, r.Cycles, 4)

	// LDY #$02; LDX $ff,Y wraps to $01
	mem.Write(0x0001, 0x33)
	mem.putInstructions(0x0204, 0xa0, 0x02, 0xb6, 0xff)
	step(t, mc) // LDY #$02
	step(t, mc) // LDX $ff,Y
	test.ExpectEquality(t, mc.X.Value(), 0x33)

	// (ind,X) with the pointer bytes split between $ff and $00
	prepare(mem, mc, 0x0200)
	mem.Write(0x00ff, 0x00)
	mem.Write(0x0000, 0x40)
	mem.Write(0x4000, 0x5a)
	mem.putInstructions(0x0200, 0xa2, 0xfe, 0xa1, 0x01)
	step(t, mc)     // LDX #$fe
	r = step(t, mc) // LDA ($01,X)
	test.ExpectEquality(t, mc.A.Value(), 0x5a)
	test.ExpectEquality(t, r.Cycles, 6)

	// (ind),Y with the pointer bytes split between $ff and $00
	prepare(mem, mc, 0x0200)
	mem.Write(0x00ff, 0x10)
	mem.Write(0x0000, 0x40)
	mem.Write(0x4012, 0xa5)
	mem.putInstructions(0x0200, 0xa0, 0x02, 0xb1, 0xff)
	step(t, mc)     // LDY #$02
	r = step(t, mc) // LDA ($ff),Y
	test.ExpectEquality(t, mc.A.Value(), 0xa5)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectFailure(t, r.PageFault)
}

func TestPageFaults(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// LDX #$01; LDA $10ff,X
	mem.Write(0x1100, 0x77)
	mem.putInstructions(0x0200, 0xa2, 0x01, 0xbd, 0xff, 0x10)
	step(t, mc)      // LDX #$01
	r := step(t, mc) // LDA $10ff,X
	test.ExpectEquality(t, mc.A.Value(), 0x77)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectSuccess(t, r.PageFault)

	// STA $10ff,X. stores always take the same time
	mem.putInstructions(0x0205, 0x9d, 0xff, 0x10)
	r = step(t, mc) // STA $10ff,X
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectFailure(t, r.PageFault)

	// INC $10ff,X. so do read-modify-write instructions
	mem.putInstructions(0x0208, 0xfe, 0xff, 0x10)
	r = step(t, mc) // INC $10ff,X
	test.ExpectEquality(t, r.Cycles, 7)
	mem.assert(t, 0x1100, 0x78)

	// LDY #$ff; LDA ($20),Y
	mem.Write(0x0020, 0x01)
	mem.Write(0x0021, 0x30)
	mem.Write(0x3100, 0x99)
	mem.putInstructions(0x020b, 0xa0, 0xff, 0xb1, 0x20)
	step(t, mc)     // LDY #$ff
	r = step(t, mc) // LDA ($20),Y
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	test.ExpectEquality(t, r.Cycles, 6)

	// STA ($20),Y
	mem.putInstructions(0x020f, 0x91, 0x20)
	r = step(t, mc) // STA ($20),Y
	test.ExpectEquality(t, r.Cycles, 6)

	// LDX $30ff,Y
	mem.putInstructions(0x0211, 0xbe, 0xff, 0x30)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)

	// absolute indexed addressing wraps at the top of memory
	mem.Write(0x0000, 0x42)
	mem.putInstructions(0x0214, 0xa2, 0x01, 0xbd, 0xff, 0xff)
	step(t, mc)     // LDX #$01
	r = step(t, mc) // LDA $ffff,X
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, r.Cycles, 5)
}

// every documented opcode takes its base number of cycles when no page is
// crossed and no branch is taken
func TestBaseCycles(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	for op, defn := range instructions.Definitions {
		if defn == nil {
			continue
		}

		// zeroed operands never cross a page with zeroed index registers
		prepare(mem, mc, 0x0200)
		mem.setVector(0xfffe, 0x0400)
		mem.putInstructions(0x0200, uint8(op), 0x00, 0x00)

		// make sure no branch is taken
		switch defn.Mnemonic {
		case "BEQ":
			mc.Status.Zero = false
		case "BCS":
			mc.Status.Carry = false
		case "BVS":
			mc.Status.Overflow = false
		case "BMI":
			mc.Status.Sign = false
		case "BNE", "BCC", "BVC", "BPL":
			mc.Status.Zero = true
			mc.Status.Carry = true
			mc.Status.Overflow = true
			mc.Status.Sign = true
		}

		cycles := mc.ExecuteInstruction()
		test.ExpectEquality(t, cycles, defn.Cycles, defn.Mnemonic, defn.AddressingMode)
		test.ExpectSuccess(t, mc.LastResult.IsValid(), defn.Mnemonic)
	}
}

func TestIRQ(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)
	mem.setVector(0xfffe, 0x0400)

	// CLI; NOP
	mem.putInstructions(0x0200, 0x58, 0xea)

	// interrupts are disabled after reset
	mc.SetIRQ(true)
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.PC.Address(), 0x0201)

	// IRQ is serviced instead of NOP
	r := step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.IRQ)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x0400)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
	test.ExpectEquality(t, mc.SP.Value(), 0xfa)
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x01)

	// break bit is clear in the pushed status
	mem.assert(t, 0x01fb, 0x22)

	// the line is still asserted but interrupts are now disabled. RTI
	// restores the status register, enabling interrupts again
	mem.putInstructions(0x0400, 0xea, 0x40)
	step(t, mc) // NOP
	step(t, mc) // RTI
	test.ExpectEquality(t, mc.PC.Address(), 0x0201)
	test.ExpectFailure(t, mc.Status.InterruptDisable)

	// level triggered so the interrupt happens again
	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.IRQ)

	// release the line
	mc.SetIRQ(false)
	mem.putInstructions(0x0400, 0x40)
	step(t, mc)     // RTI
	r = step(t, mc) // NOP
	test.ExpectEquality(t, r.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.PC.Address(), 0x0202)
}

func TestNMI(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)
	mem.setVector(0xfffa, 0x0500)
	mem.setVector(0xfffe, 0x0400)

	mem.putInstructions(0x0200, 0xea, 0xea)
	mem.putInstructions(0x0500, 0x40)

	// NMI ignores the interrupt disable flag and takes priority over IRQ
	mc.SetIRQ(true)
	mc.TriggerNMI()
	mc.TriggerNMI()
	r := step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.NMI)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x0500)

	// edge triggered so two triggers are serviced once
	mc.SetIRQ(false)
	step(t, mc) // RTI
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)
	r = step(t, mc) // NOP
	test.ExpectEquality(t, r.Interrupt, execution.NoInterrupt)

	// reset discards a pending NMI
	mc.TriggerNMI()
	mc.Reset()
	r = step(t, mc) // NOP
	test.ExpectEquality(t, r.Interrupt, execution.NoInterrupt)
}

func TestBRK(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)
	mem.setVector(0xfffe, 0x0400)

	// BRK; padding; NOP
	mem.putInstructions(0x0200, 0x00, 0xff, 0xea)
	mem.putInstructions(0x0400, 0x40)

	r := step(t, mc) // BRK
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x0400)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// the padding byte is skipped and the break bit is set in the pushed
	// status
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fb, 0x36)

	step(t, mc) // RTI
	test.ExpectEquality(t, mc.PC.Address(), 0x0202)
	test.ExpectEquality(t, mc.Status.String(), "sv--dIZc")
}

func TestIllegalOpcode(t *testing.T) {
	logger.Clear()

	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	// LDA #$01; TAX; illegal
	mem.putInstructions(0x0200, 0xa9, 0x01, 0xaa, 0x02)
	step(t, mc) // LDA #$01
	step(t, mc) // TAX

	r := step(t, mc)
	test.ExpectSuccess(t, r.Illegal)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, r.Address, 0x0203)
	test.ExpectEquality(t, mc.IllegalOpcodes, 1)

	// the CPU has been reset
	test.ExpectEquality(t, mc.String(), "PC=0x0200 A=0x00 X=0x00 Y=0x00 SP=0xfd SR=sv--dIZc")

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "cpu: illegal opcode 0x02 at 0x0203\n")
}

func TestResultString(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	prepare(mem, mc, 0x0200)

	mem.putInstructions(0x0200, 0xa9, 0x41, 0x8d, 0x01, 0xf0, 0x0a, 0xb1, 0x20, 0xf0, 0xfe)
	test.ExpectEquality(t, step(t, mc).String(), "0x0200 LDA #$41")
	test.ExpectEquality(t, step(t, mc).String(), "0x0202 STA $f001")
	test.ExpectEquality(t, step(t, mc).String(), "0x0205 ASL A")
	test.ExpectEquality(t, step(t, mc).String(), "0x0206 LDA ($20),Y")
	test.ExpectEquality(t, step(t, mc).String(), "0x0208 BEQ $0208")
}
