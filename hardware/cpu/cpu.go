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
	"fmt"
	"sync/atomic"

	"github.com/gopher101/gopher101/hardware/cpu/execution"
	"github.com/gopher101/gopher101/hardware/cpu/registers"
	"github.com/gopher101/gopher101/hardware/memory/cpubus"
	"github.com/gopher101/gopher101/logger"
)

// the number of cycles taken by an interrupt sequence
const interruptCycles = 7

// the number of cycles charged for an illegal opcode. the CPU is reset so
// the value is nominal but it must be non-zero for the pacing loop to make
// progress
const illegalCycles = 2

// the value loaded into the status register on reset. the interrupt disable
// and zero flags are set
const resetStatus = 0x36

// CPU implements the NMOS 6502 found in the UK101. Register logic is
// implemented by the Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// read-modify-write instructions operate on memory through this register
	acc8 registers.Register

	mem cpubus.Memory

	// the IRQ line is a level. the NMI line is an edge latched until it is
	// serviced
	irq atomic.Bool
	nmi atomic.Bool

	// LastResult of the most recent call to ExecuteInstruction()
	LastResult execution.Result

	// the number of illegal opcodes encountered since the CPU was created
	IllegalOpcodes int
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU must be Reset() before use.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:  mem,
		PC:   registers.NewProgramCounter(0),
		A:    registers.NewRegister(0, "A"),
		X:    registers.NewRegister(0, "X"),
		Y:    registers.NewRegister(0, "Y"),
		SP:   registers.NewRegister(0, "SP"),
		acc8: registers.NewAnonRegister(0),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC from the reset vector.
// Memory is not touched. The state of the IRQ line is not changed because
// it is controlled externally but a pending NMI is discarded.
func (mc *CPU) Reset() {
	mc.LastResult = execution.Result{}
	mc.nmi.Store(false)

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.FromValue(resetStatus)
	mc.LoadPCIndirect(cpubus.Reset)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	mc.PC.Load(mc.read16(indirectAddress))
}

// SetIRQ sets the level of the IRQ line. The line stays at that level until
// it is changed by another call to SetIRQ().
func (mc *CPU) SetIRQ(asserted bool) {
	mc.irq.Store(asserted)
}

// TriggerNMI signals a falling edge on the NMI line. The interrupt is
// serviced at the start of the next call to ExecuteInstruction(), regardless
// of the interrupt disable flag. Multiple triggers before that are serviced
// once.
func (mc *CPU) TriggerNMI() {
	mc.nmi.Store(true)
}

// ExecuteInstruction steps CPU forward one instruction, or services one
// pending interrupt. Returns the number of cycles taken.
func (mc *CPU) ExecuteInstruction() int {
	mc.LastResult = execution.Result{Address: mc.PC.Address()}

	if mc.nmi.Swap(false) {
		return mc.interrupt(cpubus.NMI, execution.NMI)
	}

	if mc.irq.Load() && !mc.Status.InterruptDisable {
		return mc.interrupt(cpubus.IRQ, execution.IRQ)
	}

	opcode := mc.read8PC()
	mc.LastResult.OpCode = opcode

	e := &dispatch[opcode]
	if e.defn == nil {
		return mc.illegal(opcode)
	}
	mc.LastResult.Defn = e.defn

	address, crossed := e.resolve(mc)
	mc.LastResult.EffectiveAddress = address

	e.operate(mc, address)

	cycles := e.defn.Cycles
	if mc.LastResult.BranchSuccess {
		cycles++
		if crossed {
			cycles++
			mc.LastResult.PageFault = true
		}
	} else if crossed && e.defn.PageSensitive {
		cycles++
		mc.LastResult.PageFault = true
	}

	mc.LastResult.Cycles = cycles
	return cycles
}

// interrupt performs the interrupt sequence common to IRQ and NMI.
func (mc *CPU) interrupt(vector uint16, kind execution.Interrupt) int {
	mc.push(mc.PC.Hi())
	mc.push(mc.PC.Lo())
	mc.push(mc.Status.Value())
	mc.Status.InterruptDisable = true
	mc.LoadPCIndirect(vector)

	mc.LastResult.Interrupt = kind
	mc.LastResult.Cycles = interruptCycles
	return interruptCycles
}

func (mc *CPU) illegal(opcode uint8) int {
	address := mc.LastResult.Address
	mc.IllegalOpcodes++
	logger.Logf(logger.Allow, "cpu", "illegal opcode %#02x at %#04x", opcode, address)

	mc.Reset()

	mc.LastResult = execution.Result{
		Address: address,
		OpCode:  opcode,
		Illegal: true,
		Cycles:  illegalCycles,
	}
	return illegalCycles
}

func (mc *CPU) read(address uint16) uint8 {
	return mc.mem.Read(address)
}

func (mc *CPU) write(address uint16, data uint8) {
	mc.mem.Write(address, data)
}

// read16 reads a little-endian address. the second byte is read from the
// next address with a 16 bit carry.
func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.read(address)
	hi := mc.read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read16ZeroPage reads a little-endian address from the zero page. the
// second byte wraps around to the start of the zero page.
func (mc *CPU) read16ZeroPage(address uint8) uint16 {
	lo := mc.read(uint16(address))
	hi := mc.read(uint16(address + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// read8PC reads the byte at the PC and advances the PC.
func (mc *CPU) read8PC() uint8 {
	v := mc.read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// read16PC reads the address at the PC and advances the PC.
func (mc *CPU) read16PC() uint16 {
	lo := mc.read8PC()
	hi := mc.read8PC()
	return uint16(hi)<<8 | uint16(lo)
}

// push a byte onto the stack. the stack is always in page one and the stack
// pointer wraps.
func (mc *CPU) push(data uint8) {
	mc.write(0x0100|mc.SP.Address(), data)
	mc.SP.Load(mc.SP.Value() - 1)
}

// pull a byte from the stack.
func (mc *CPU) pull() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.read(0x0100 | mc.SP.Address())
}
