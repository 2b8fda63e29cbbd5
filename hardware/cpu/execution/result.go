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

package execution

import (
	"fmt"

	"github.com/gopher101/gopher101/hardware/cpu/instructions"
)

// Interrupt identifies the interrupt sequence serviced instead of an
// instruction.
type Interrupt int

// List of valid Interrupt values.
const (
	NoInterrupt Interrupt = iota
	IRQ
	NMI
)

func (i Interrupt) String() string {
	switch i {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	}
	return ""
}

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the opcode read from Address
	OpCode uint8

	// the instruction definition. nil for an illegal opcode or for an
	// interrupt sequence
	Defn *instructions.Definition

	// the operand as read from memory. for two byte instructions only the
	// low byte is used
	InstructionData uint16

	// the effective address after the addressing mode was resolved
	EffectiveAddress uint16

	// the number of bytes read from memory during the decode
	ByteCount int

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of page faults and branches this value
	// may be larger
	Cycles int

	// whether an extra cycle was required because an indexed address crossed
	// a page boundary or because a taken branch landed on a different page
	PageFault bool

	// whether the branch condition was met
	BranchSuccess bool

	// the interrupt sequence serviced, if any
	Interrupt Interrupt

	// the opcode was not part of the documented instruction set and the CPU
	// has been reset
	Illegal bool
}

func (r Result) String() string {
	return fmt.Sprintf("%#04x %s", r.Address, r.Instruction())
}

// Instruction returns the mnemonic and operand of the instruction, without
// the address.
func (r Result) Instruction() string {
	switch {
	case r.Interrupt != NoInterrupt:
		return r.Interrupt.String()
	case r.Illegal || r.Defn == nil:
		return fmt.Sprintf("??? (%#02x)", r.OpCode)
	}

	var operand string

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		if r.Defn.Effect == instructions.RMW {
			operand = "A"
		}
	case instructions.Immediate:
		operand = fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		operand = fmt.Sprintf("$%04x", r.EffectiveAddress)
	case instructions.Absolute:
		operand = fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		operand = fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indirect:
		operand = fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		operand = fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		operand = fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf("$%02x,Y", r.InstructionData)
	}

	// BRK is decoded as an immediate instruction to skip the padding byte
	// but the padding byte is not an operand
	if r.Defn.Effect == instructions.Interrupt {
		operand = ""
	}

	if operand == "" {
		return r.Defn.Mnemonic
	}
	return fmt.Sprintf("%s %s", r.Defn.Mnemonic, operand)
}
