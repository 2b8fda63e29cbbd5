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
	"github.com/gopher101/gopher101/hardware/cpu/registers"
	"github.com/gopher101/gopher101/hardware/memory/cpubus"
)

func (mc *CPU) setZeroSign(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// load operations

func lda(mc *CPU, address uint16) {
	mc.A.Load(mc.read(address))
	mc.setZeroSign(mc.A)
}

func ldx(mc *CPU, address uint16) {
	mc.X.Load(mc.read(address))
	mc.setZeroSign(mc.X)
}

func ldy(mc *CPU, address uint16) {
	mc.Y.Load(mc.read(address))
	mc.setZeroSign(mc.Y)
}

// store operations

func sta(mc *CPU, address uint16) {
	mc.write(address, mc.A.Value())
}

func stx(mc *CPU, address uint16) {
	mc.write(address, mc.X.Value())
}

func sty(mc *CPU, address uint16) {
	mc.write(address, mc.Y.Value())
}

// register transfers. TXS is the only transfer that does not affect the
// flags

func tax(mc *CPU, _ uint16) {
	mc.X.Load(mc.A.Value())
	mc.setZeroSign(mc.X)
}

func tay(mc *CPU, _ uint16) {
	mc.Y.Load(mc.A.Value())
	mc.setZeroSign(mc.Y)
}

func tsx(mc *CPU, _ uint16) {
	mc.X.Load(mc.SP.Value())
	mc.setZeroSign(mc.X)
}

func txa(mc *CPU, _ uint16) {
	mc.A.Load(mc.X.Value())
	mc.setZeroSign(mc.A)
}

func txs(mc *CPU, _ uint16) {
	mc.SP.Load(mc.X.Value())
}

func tya(mc *CPU, _ uint16) {
	mc.A.Load(mc.Y.Value())
	mc.setZeroSign(mc.A)
}

// stack operations

func pha(mc *CPU, _ uint16) {
	mc.push(mc.A.Value())
}

func php(mc *CPU, _ uint16) {
	mc.push(mc.Status.Value() | registers.FlagBreak)
}

func pla(mc *CPU, _ uint16) {
	mc.A.Load(mc.pull())
	mc.setZeroSign(mc.A)
}

func plp(mc *CPU, _ uint16) {
	mc.Status.FromValue(mc.pull())
}

// logical operations

func and(mc *CPU, address uint16) {
	mc.A.AND(mc.read(address))
	mc.setZeroSign(mc.A)
}

func eor(mc *CPU, address uint16) {
	mc.A.EOR(mc.read(address))
	mc.setZeroSign(mc.A)
}

func ora(mc *CPU, address uint16) {
	mc.A.ORA(mc.read(address))
	mc.setZeroSign(mc.A)
}

func bit(mc *CPU, address uint16) {
	v := registers.NewAnonRegister(mc.read(address))
	mc.Status.Sign = v.IsNegative()
	mc.Status.Overflow = v.IsBitV()
	v.AND(mc.A.Value())
	mc.Status.Zero = v.IsZero()
}

// arithmetic operations

func adc(mc *CPU, address uint16) {
	v := mc.read(address)
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(v, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
	mc.setZeroSign(mc.A)
}

func sbc(mc *CPU, address uint16) {
	v := mc.read(address)
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(v, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
	mc.setZeroSign(mc.A)
}

func (mc *CPU) compare(r registers.Register, address uint16) {
	mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = r.Compare(mc.read(address))
}

func cmp(mc *CPU, address uint16) {
	mc.compare(mc.A, address)
}

func cpx(mc *CPU, address uint16) {
	mc.compare(mc.X, address)
}

func cpy(mc *CPU, address uint16) {
	mc.compare(mc.Y, address)
}

// increments and decrements

func inc(mc *CPU, address uint16) {
	mc.acc8.Load(mc.read(address) + 1)
	mc.write(address, mc.acc8.Value())
	mc.setZeroSign(mc.acc8)
}

func dec(mc *CPU, address uint16) {
	mc.acc8.Load(mc.read(address) - 1)
	mc.write(address, mc.acc8.Value())
	mc.setZeroSign(mc.acc8)
}

func inx(mc *CPU, _ uint16) {
	mc.X.Load(mc.X.Value() + 1)
	mc.setZeroSign(mc.X)
}

func iny(mc *CPU, _ uint16) {
	mc.Y.Load(mc.Y.Value() + 1)
	mc.setZeroSign(mc.Y)
}

func dex(mc *CPU, _ uint16) {
	mc.X.Load(mc.X.Value() - 1)
	mc.setZeroSign(mc.X)
}

func dey(mc *CPU, _ uint16) {
	mc.Y.Load(mc.Y.Value() - 1)
	mc.setZeroSign(mc.Y)
}

// shifts and rotates. the accumulator form of each instruction uses the
// implied addressing mode

func (mc *CPU) shift(address uint16, f func(r *registers.Register) bool) {
	if mc.LastResult.Defn.AddressingMode == instructions.Implied {
		mc.Status.Carry = f(&mc.A)
		mc.setZeroSign(mc.A)
		return
	}
	mc.acc8.Load(mc.read(address))
	mc.Status.Carry = f(&mc.acc8)
	mc.write(address, mc.acc8.Value())
	mc.setZeroSign(mc.acc8)
}

func asl(mc *CPU, address uint16) {
	mc.shift(address, (*registers.Register).ASL)
}

func lsr(mc *CPU, address uint16) {
	mc.shift(address, (*registers.Register).LSR)
}

func rol(mc *CPU, address uint16) {
	carry := mc.Status.Carry
	mc.shift(address, func(r *registers.Register) bool { return r.ROL(carry) })
}

func ror(mc *CPU, address uint16) {
	carry := mc.Status.Carry
	mc.shift(address, func(r *registers.Register) bool { return r.ROR(carry) })
}

// flag operations

func clc(mc *CPU, _ uint16) { mc.Status.Carry = false }
func cld(mc *CPU, _ uint16) { mc.Status.DecimalMode = false }
func cli(mc *CPU, _ uint16) { mc.Status.InterruptDisable = false }
func clv(mc *CPU, _ uint16) { mc.Status.Overflow = false }
func sec(mc *CPU, _ uint16) { mc.Status.Carry = true }
func sed(mc *CPU, _ uint16) { mc.Status.DecimalMode = true }
func sei(mc *CPU, _ uint16) { mc.Status.InterruptDisable = true }

func nop(mc *CPU, _ uint16) {}

// flow control

func (mc *CPU) branch(condition bool, address uint16) {
	if condition {
		mc.LastResult.BranchSuccess = true
		mc.PC.Load(address)
	}
}

func bcc(mc *CPU, address uint16) { mc.branch(!mc.Status.Carry, address) }
func bcs(mc *CPU, address uint16) { mc.branch(mc.Status.Carry, address) }
func beq(mc *CPU, address uint16) { mc.branch(mc.Status.Zero, address) }
func bmi(mc *CPU, address uint16) { mc.branch(mc.Status.Sign, address) }
func bne(mc *CPU, address uint16) { mc.branch(!mc.Status.Zero, address) }
func bpl(mc *CPU, address uint16) { mc.branch(!mc.Status.Sign, address) }
func bvc(mc *CPU, address uint16) { mc.branch(!mc.Status.Overflow, address) }
func bvs(mc *CPU, address uint16) { mc.branch(mc.Status.Overflow, address) }

func jmp(mc *CPU, address uint16) {
	mc.PC.Load(address)
}

// JSR pushes the address of the last byte of the instruction, not the
// address of the next instruction. RTS adds one to the pulled address.
func jsr(mc *CPU, address uint16) {
	ret := mc.PC.Address() - 1
	mc.push(uint8(ret >> 8))
	mc.push(uint8(ret))
	mc.PC.Load(address)
}

func rts(mc *CPU, _ uint16) {
	lo := mc.pull()
	hi := mc.pull()
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
	mc.PC.Add(1)
}

// the padding byte following BRK has already been skipped by the immediate
// addressing mode
func brk(mc *CPU, _ uint16) {
	mc.push(mc.PC.Hi())
	mc.push(mc.PC.Lo())
	mc.push(mc.Status.Value() | registers.FlagBreak)
	mc.Status.InterruptDisable = true
	mc.LoadPCIndirect(cpubus.IRQ)
}

func rti(mc *CPU, _ uint16) {
	mc.Status.FromValue(mc.pull())
	lo := mc.pull()
	hi := mc.pull()
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
}
