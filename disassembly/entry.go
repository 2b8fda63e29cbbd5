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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/gopher101/gopher101/hardware/cpu/execution"
)

// Entry is a single disassembled instruction.
type Entry struct {
	// the address of the first byte of the instruction
	Address uint16

	// the bytes making up the instruction, including the opcode
	Bytes []uint8

	// result of decoding the instruction. the Illegal field is true if the
	// opcode at Address is not a valid instruction
	Result execution.Result
}

// widest bytecode field is three bytes
const bytecodeWidth = 8

// Bytecode returns the bytes of the instruction as a space separated string
// of hex values.
func (e Entry) Bytecode() string {
	s := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

// Instruction returns the mnemonic and operand. Bytes that are not valid
// opcodes are shown as a .byte directive.
func (e Entry) Instruction() string {
	if e.Result.Illegal || e.Result.Defn == nil {
		return fmt.Sprintf(".byte $%02x", e.Result.OpCode)
	}
	return e.Result.Instruction()
}

func (e Entry) String() string {
	return fmt.Sprintf("%#04x  %-*s  %s", e.Address, bytecodeWidth, e.Bytecode(), e.Instruction())
}
