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

// Package cpu emulates the NMOS 6502 microprocessor found in the UK101. The
// CPU executes instructions according to the single byte value read from an
// address pointed to by the program counter. This single byte is the opcode
// and is looked up in the dispatch table. The dispatch table entry names the
// instruction definition, the addressing mode and the operation that moves
// execution of the program forward.
//
// The instance of the CPU type requires an implementation of cpubus.Memory
// as the sole argument. The Memory interface defines the memory operations
// required by the CPU.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// It executes a single instruction and returns the number of cycles that the
// instruction took. Let's assume mem is an instance of cpubus.Memory loaded
// with a 6502 program.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	numCycles := 0
//	for numCycles < 20000 {
//		numCycles += mc.ExecuteInstruction()
//	}
//
// Only the number of cycles is emulated. Memory accesses happen in the order
// the instruction requires but not on the cycle they would occur in real
// hardware.
//
// Interrupts are checked at the start of every call to ExecuteInstruction().
// The IRQ line is level triggered and is controlled with SetIRQ(). NMI is
// edge triggered and is signalled with TriggerNMI(). Both functions can be
// called from any goroutine.
//
// Undocumented opcodes are not emulated. When one is encountered the event
// is logged and the CPU is reset.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
package cpu
