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
	"github.com/gopher101/gopher101/curated"
	"github.com/gopher101/gopher101/hardware/cpu"
	"github.com/gopher101/gopher101/hardware/cpu/execution"
	"github.com/gopher101/gopher101/hardware/cpu/instructions"
	"github.com/gopher101/gopher101/hardware/memory/cpubus"
)

// sandbox presents memory to the disassembling CPU. reads are peeks and
// writes are dropped.
type sandbox struct {
	mem cpubus.DebuggerBus
}

func (s sandbox) Read(address uint16) uint8 {
	return s.mem.Peek(address)
}

func (s sandbox) Write(_ uint16, _ uint8) {}

// Disassembly is the result of a linear disassembly.
type Disassembly struct {
	Entries []Entry
}

// FromMemory disassembles memory from the first address to the last
// address, inclusive. An instruction starting at the last address is decoded
// in full even though its operand lies beyond the last address.
func FromMemory(mem cpubus.DebuggerBus, from uint16, to uint16) (*Disassembly, error) {
	if to < from {
		return nil, curated.Errorf("disassembly: bad range (%#04x to %#04x)", from, to)
	}

	mc := cpu.NewCPU(sandbox{mem: mem})
	mc.Reset()

	dsm := &Disassembly{}

	// counting with a wider type so that disassembling to 0xffff terminates
	address := uint32(from)
	for address <= uint32(to) {
		origin := uint16(address)
		opcode := mem.Peek(origin)

		var r execution.Result
		if instructions.Illegal(opcode) {
			// executing an illegal opcode resets the CPU and logs the event.
			// neither is wanted for disassembly
			r = execution.Result{
				Address:   origin,
				OpCode:    opcode,
				ByteCount: 1,
				Illegal:   true,
			}
		} else {
			mc.PC.Load(origin)
			mc.ExecuteInstruction()
			r = mc.LastResult
		}

		e := Entry{
			Address: origin,
			Bytes:   make([]uint8, r.ByteCount),
			Result:  r,
		}
		for i := range e.Bytes {
			e.Bytes[i] = mem.Peek(origin + uint16(i))
		}
		dsm.Entries = append(dsm.Entries, e)

		address += uint32(r.ByteCount)
	}

	return dsm, nil
}
