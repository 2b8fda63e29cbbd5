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

// Package memorymap describes the address space of the UK101 replica. The
// decoding is fixed and total: every 16 bit address maps to exactly one
// area.
//
//	0x0000 - 0x7fff  RAM
//	0x8000 - 0xefff  ROM
//	0xf000 - 0xf7ff  ACIA
//	0xf800 - 0xffff  ROM
//
// The ROM is a single 32K image addressed with the low 15 bits of the
// address. The image bytes that correspond to the ACIA window are never
// visible to the CPU.
package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case ROM:
		return "ROM"
	case ACIA:
		return "ACIA"
	}
	return "undefined"
}

// The different memory areas.
const (
	Undefined Area = iota
	RAM
	ROM
	ACIA
)

// The origin and memory top for each area of memory.
const (
	OriginRAM   = uint16(0x0000)
	MemtopRAM   = uint16(0x7fff)
	OriginROM   = uint16(0x8000)
	MemtopROM   = uint16(0xffff)
	OriginACIA  = uint16(0xf000)
	MemtopACIA  = uint16(0xf7ff)
	ChipSizeRAM = 0x8000
	ChipSizeROM = 0x8000
)

// AddressMask reduces an address to an offset into the RAM or ROM chip.
const AddressMask = uint16(0x7fff)

// MapAddress returns the memory area the address belongs to.
func MapAddress(address uint16) Area {
	// note that the order of these filters is important
	switch {
	case address <= MemtopRAM:
		return RAM
	case address >= OriginACIA && address <= MemtopACIA:
		return ACIA
	}
	return ROM
}
