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

// Package cpubus defines the interface between the CPU and the memory
// system. Addresses are the full 16 bit addresses placed on the bus by the
// CPU. Mapping the address to a memory area is the responsibility of the
// implementation.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Bus accesses always complete. Reads of unmapped addresses return the
// open bus value and writes to them are ignored.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// DebuggerBus defines the meta-operations for the memory system. Peek and
// Poke access memory without the side effects a CPU access might have.
type DebuggerBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// OpenBus is the value returned when reading an address that nothing
// responds to.
const OpenBus = uint8(0xff)

// The addresses of the interrupt vectors. Each vector is a little-endian
// address stored in two consecutive bytes.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)
