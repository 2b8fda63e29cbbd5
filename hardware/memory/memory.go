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

package memory

import (
	"github.com/gopher101/gopher101/hardware/memory/cpubus"
	"github.com/gopher101/gopher101/hardware/memory/memorymap"
)

// Peripheral is a memory mapped device. The address given to the device is
// the full bus address. Peek must not have side effects.
type Peripheral interface {
	cpubus.Memory
	Peek(address uint16) uint8
}

// Memory is the bus decoder. It implements cpubus.Memory and
// cpubus.DebuggerBus.
type Memory struct {
	RAM  *RAM
	ROM  *ROM
	ACIA Peripheral
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The peripheral may be nil, in which case the ACIA area is open bus.
func NewMemory(acia Peripheral) *Memory {
	return &Memory{
		RAM:  &RAM{},
		ROM:  &ROM{},
		ACIA: acia,
	}
}

// LoadROM loads the image into the ROM chip.
func (mem *Memory) LoadROM(image []byte) error {
	return mem.ROM.Load(image)
}

// ClearRAM performs a cold clear of RAM.
func (mem *Memory) ClearRAM() {
	mem.RAM.Clear()
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	switch memorymap.MapAddress(address) {
	case memorymap.RAM:
		return mem.RAM.Read(address)
	case memorymap.ROM:
		return mem.ROM.Read(address)
	case memorymap.ACIA:
		if mem.ACIA != nil {
			return mem.ACIA.Read(address)
		}
	}
	return cpubus.OpenBus
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	switch memorymap.MapAddress(address) {
	case memorymap.RAM:
		mem.RAM.Write(address, data)
	case memorymap.ROM:
		mem.ROM.Write(address, data)
	case memorymap.ACIA:
		if mem.ACIA != nil {
			mem.ACIA.Write(address, data)
		}
	}
}

// Peek implements the cpubus.DebuggerBus interface.
func (mem *Memory) Peek(address uint16) uint8 {
	if memorymap.MapAddress(address) == memorymap.ACIA {
		if mem.ACIA != nil {
			return mem.ACIA.Peek(address)
		}
		return cpubus.OpenBus
	}
	return mem.Read(address)
}

// Poke implements the cpubus.DebuggerBus interface. Unlike Write(), poking
// the ROM area changes the ROM image. Pokes to the ACIA area are ignored.
func (mem *Memory) Poke(address uint16, data uint8) {
	switch memorymap.MapAddress(address) {
	case memorymap.RAM:
		mem.RAM.Write(address, data)
	case memorymap.ROM:
		mem.ROM.Poke(address, data)
	}
}
