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

	"github.com/gopher101/gopher101/hardware/cpu/instructions"
)

// operation performs the instruction on the resolved effective address.
type operation func(mc *CPU, address uint16)

// entry in the dispatch table. the defn field is nil for illegal opcodes.
type entry struct {
	defn    *instructions.Definition
	resolve addressing
	operate operation
}

// the dispatch table is built once and never changed.
var dispatch [256]entry

var operations = map[string]operation{
	"ADC": adc, "AND": and, "ASL": asl, "BCC": bcc, "BCS": bcs, "BEQ": beq,
	"BIT": bit, "BMI": bmi, "BNE": bne, "BPL": bpl, "BRK": brk, "BVC": bvc,
	"BVS": bvs, "CLC": clc, "CLD": cld, "CLI": cli, "CLV": clv, "CMP": cmp,
	"CPX": cpx, "CPY": cpy, "DEC": dec, "DEX": dex, "DEY": dey, "EOR": eor,
	"INC": inc, "INX": inx, "INY": iny, "JMP": jmp, "JSR": jsr, "LDA": lda,
	"LDX": ldx, "LDY": ldy, "LSR": lsr, "NOP": nop, "ORA": ora, "PHA": pha,
	"PHP": php, "PLA": pla, "PLP": plp, "ROL": rol, "ROR": ror, "RTI": rti,
	"RTS": rts, "SBC": sbc, "SEC": sec, "SED": sed, "SEI": sei, "STA": sta,
	"STX": stx, "STY": sty, "TAX": tax, "TAY": tay, "TSX": tsx, "TXA": txa,
	"TXS": txs, "TYA": tya,
}

func init() {
	for i, defn := range instructions.Definitions {
		if defn == nil {
			continue
		}

		op, ok := operations[defn.Mnemonic]
		if !ok {
			panic(fmt.Sprintf("cpu: no operation for %s", defn.Mnemonic))
		}

		dispatch[i] = entry{
			defn:    defn,
			resolve: resolvers[defn.AddressingMode],
			operate: op,
		}
	}
}
