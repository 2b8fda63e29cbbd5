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

// Package disassembly creates a linear disassembly of the UK101 memory.
//
// Linear disassembly decodes every instruction in sequence from the start
// address, stepping forward by the size of the decoded instruction. Bytes
// that are not valid opcodes are shown as data. Data segments will often be
// decoded as valid instructions and so the disassembly is only a guide.
//
// Instructions are decoded by executing them with a private CPU. The memory
// is accessed through the cpubus.DebuggerBus interface and so disassembling
// the ACIA area has no side effects. Writes made by the executed
// instructions are discarded.
package disassembly
