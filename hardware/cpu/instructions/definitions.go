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

package instructions

// Definitions is the instruction table indexed by opcode. Entries for
// undocumented opcodes are nil.
var Definitions [256]*Definition

// the documented instruction set. bytes are filled in from the addressing
// mode during init()
var documented = []Definition{
	{OpCode: 0x69, Mnemonic: "ADC", Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x65, Mnemonic: "ADC", Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x75, Mnemonic: "ADC", Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x6d, Mnemonic: "ADC", Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x7d, Mnemonic: "ADC", Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x79, Mnemonic: "ADC", Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0x61, Mnemonic: "ADC", Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x71, Mnemonic: "ADC", Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},

	{OpCode: 0x29, Mnemonic: "AND", Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x25, Mnemonic: "AND", Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x35, Mnemonic: "AND", Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x2d, Mnemonic: "AND", Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x3d, Mnemonic: "AND", Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x39, Mnemonic: "AND", Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0x21, Mnemonic: "AND", Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x31, Mnemonic: "AND", Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},

	{OpCode: 0x0a, Mnemonic: "ASL", Cycles: 2, AddressingMode: Implied, Effect: RMW},
	{OpCode: 0x06, Mnemonic: "ASL", Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x16, Mnemonic: "ASL", Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x0e, Mnemonic: "ASL", Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x1e, Mnemonic: "ASL", Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},

	{OpCode: 0x90, Mnemonic: "BCC", Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xb0, Mnemonic: "BCS", Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xf0, Mnemonic: "BEQ", Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x30, Mnemonic: "BMI", Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xd0, Mnemonic: "BNE", Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x10, Mnemonic: "BPL", Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x50, Mnemonic: "BVC", Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x70, Mnemonic: "BVS", Cycles: 2, AddressingMode: Relative, Effect: Flow},

	{OpCode: 0x24, Mnemonic: "BIT", Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x2c, Mnemonic: "BIT", Cycles: 4, AddressingMode: Absolute, Effect: Read},

	// BRK is followed by a padding byte that is skipped
	{OpCode: 0x00, Mnemonic: "BRK", Cycles: 7, AddressingMode: Immediate, Effect: Interrupt},

	{OpCode: 0x18, Mnemonic: "CLC", Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xd8, Mnemonic: "CLD", Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x58, Mnemonic: "CLI", Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xb8, Mnemonic: "CLV", Cycles: 2, AddressingMode: Implied, Effect: Read},

	{OpCode: 0xc9, Mnemonic: "CMP", Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xc5, Mnemonic: "CMP", Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xd5, Mnemonic: "CMP", Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xcd, Mnemonic: "CMP", Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xdd, Mnemonic: "CMP", Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xd9, Mnemonic: "CMP", Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xc1, Mnemonic: "CMP", Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xd1, Mnemonic: "CMP", Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},

	{OpCode: 0xe0, Mnemonic: "CPX", Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xe4, Mnemonic: "CPX", Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xec, Mnemonic: "CPX", Cycles: 4, AddressingMode: Absolute, Effect: Read},

	{OpCode: 0xc0, Mnemonic: "CPY", Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xc4, Mnemonic: "CPY", Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xcc, Mnemonic: "CPY", Cycles: 4, AddressingMode: Absolute, Effect: Read},

	{OpCode: 0xc6, Mnemonic: "DEC", Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0xd6, Mnemonic: "DEC", Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0xce, Mnemonic: "DEC", Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0xde, Mnemonic: "DEC", Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},

	{OpCode: 0xca, Mnemonic: "DEX", Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x88, Mnemonic: "DEY", Cycles: 2, AddressingMode: Implied, Effect: Read},

	{OpCode: 0x49, Mnemonic: "EOR", Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x45, Mnemonic: "EOR", Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x55, Mnemonic: "EOR", Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x4d, Mnemonic: "EOR", Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x5d, Mnemonic: "EOR", Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x59, Mnemonic: "EOR", Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0x41, Mnemonic: "EOR", Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x51, Mnemonic: "EOR", Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},

	{OpCode: 0xe6, Mnemonic: "INC", Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0xf6, Mnemonic: "INC", Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0xee, Mnemonic: "INC", Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0xfe, Mnemonic: "INC", Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},

	{OpCode: 0xe8, Mnemonic: "INX", Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xc8, Mnemonic: "INY", Cycles: 2, AddressingMode: Implied, Effect: Read},

	{OpCode: 0x4c, Mnemonic: "JMP", Cycles: 3, AddressingMode: Absolute, Effect: Flow},
	{OpCode: 0x6c, Mnemonic: "JMP", Cycles: 5, AddressingMode: Indirect, Effect: Flow},

	{OpCode: 0x20, Mnemonic: "JSR", Cycles: 6, AddressingMode: Absolute, Effect: Subroutine},

	{OpCode: 0xa9, Mnemonic: "LDA", Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa5, Mnemonic: "LDA", Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xb5, Mnemonic: "LDA", Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xad, Mnemonic: "LDA", Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xbd, Mnemonic: "LDA", Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xb9, Mnemonic: "LDA", Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xa1, Mnemonic: "LDA", Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xb1, Mnemonic: "LDA", Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},

	{OpCode: 0xa2, Mnemonic: "LDX", Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa6, Mnemonic: "LDX", Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xb6, Mnemonic: "LDX", Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Read},
	{OpCode: 0xae, Mnemonic: "LDX", Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xbe, Mnemonic: "LDX", Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},

	{OpCode: 0xa0, Mnemonic: "LDY", Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa4, Mnemonic: "LDY", Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xb4, Mnemonic: "LDY", Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xac, Mnemonic: "LDY", Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xbc, Mnemonic: "LDY", Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},

	{OpCode: 0x4a, Mnemonic: "LSR", Cycles: 2, AddressingMode: Implied, Effect: RMW},
	{OpCode: 0x46, Mnemonic: "LSR", Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x56, Mnemonic: "LSR", Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x4e, Mnemonic: "LSR", Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x5e, Mnemonic: "LSR", Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},

	{OpCode: 0xea, Mnemonic: "NOP", Cycles: 2, AddressingMode: Implied, Effect: Read},

	{OpCode: 0x09, Mnemonic: "ORA", Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x05, Mnemonic: "ORA", Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x15, Mnemonic: "ORA", Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x0d, Mnemonic: "ORA", Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x1d, Mnemonic: "ORA", Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x19, Mnemonic: "ORA", Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0x01, Mnemonic: "ORA", Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x11, Mnemonic: "ORA", Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},

	{OpCode: 0x48, Mnemonic: "PHA", Cycles: 3, AddressingMode: Implied, Effect: Write},
	{OpCode: 0x08, Mnemonic: "PHP", Cycles: 3, AddressingMode: Implied, Effect: Write},
	{OpCode: 0x68, Mnemonic: "PLA", Cycles: 4, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x28, Mnemonic: "PLP", Cycles: 4, AddressingMode: Implied, Effect: Read},

	{OpCode: 0x2a, Mnemonic: "ROL", Cycles: 2, AddressingMode: Implied, Effect: RMW},
	{OpCode: 0x26, Mnemonic: "ROL", Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x36, Mnemonic: "ROL", Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x2e, Mnemonic: "ROL", Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x3e, Mnemonic: "ROL", Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},

	{OpCode: 0x6a, Mnemonic: "ROR", Cycles: 2, AddressingMode: Implied, Effect: RMW},
	{OpCode: 0x66, Mnemonic: "ROR", Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x76, Mnemonic: "ROR", Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x6e, Mnemonic: "ROR", Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x7e, Mnemonic: "ROR", Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},

	{OpCode: 0x40, Mnemonic: "RTI", Cycles: 6, AddressingMode: Implied, Effect: Interrupt},
	{OpCode: 0x60, Mnemonic: "RTS", Cycles: 6, AddressingMode: Implied, Effect: Subroutine},

	{OpCode: 0xe9, Mnemonic: "SBC", Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xe5, Mnemonic: "SBC", Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xf5, Mnemonic: "SBC", Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xed, Mnemonic: "SBC", Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xfd, Mnemonic: "SBC", Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xf9, Mnemonic: "SBC", Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xe1, Mnemonic: "SBC", Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xf1, Mnemonic: "SBC", Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},

	{OpCode: 0x38, Mnemonic: "SEC", Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xf8, Mnemonic: "SED", Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x78, Mnemonic: "SEI", Cycles: 2, AddressingMode: Implied, Effect: Read},

	{OpCode: 0x85, Mnemonic: "STA", Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x95, Mnemonic: "STA", Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	{OpCode: 0x8d, Mnemonic: "STA", Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x9d, Mnemonic: "STA", Cycles: 5, AddressingMode: AbsoluteIndexedX, Effect: Write},
	{OpCode: 0x99, Mnemonic: "STA", Cycles: 5, AddressingMode: AbsoluteIndexedY, Effect: Write},
	{OpCode: 0x81, Mnemonic: "STA", Cycles: 6, AddressingMode: IndexedIndirect, Effect: Write},
	{OpCode: 0x91, Mnemonic: "STA", Cycles: 6, AddressingMode: IndirectIndexed, Effect: Write},

	{OpCode: 0x86, Mnemonic: "STX", Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x96, Mnemonic: "STX", Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Write},
	{OpCode: 0x8e, Mnemonic: "STX", Cycles: 4, AddressingMode: Absolute, Effect: Write},

	{OpCode: 0x84, Mnemonic: "STY", Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x94, Mnemonic: "STY", Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	{OpCode: 0x8c, Mnemonic: "STY", Cycles: 4, AddressingMode: Absolute, Effect: Write},

	{OpCode: 0xaa, Mnemonic: "TAX", Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xa8, Mnemonic: "TAY", Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xba, Mnemonic: "TSX", Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x8a, Mnemonic: "TXA", Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x9a, Mnemonic: "TXS", Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x98, Mnemonic: "TYA", Cycles: 2, AddressingMode: Implied, Effect: Read},
}

func init() {
	for i := range documented {
		defn := &documented[i]
		defn.Bytes = defn.AddressingMode.Bytes()
		if Definitions[defn.OpCode] != nil {
			panic("instructions: duplicate opcode in definitions table")
		}
		Definitions[defn.OpCode] = defn
	}
}

// Illegal returns true if the opcode is not part of the documented
// instruction set.
func Illegal(opcode uint8) bool {
	return Definitions[opcode] == nil
}
