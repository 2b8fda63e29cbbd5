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
	"github.com/gopher101/gopher101/curated"
	"github.com/gopher101/gopher101/hardware/memory/memorymap"
)

// ROM is the 32K EPROM holding the monitor and BASIC.
type ROM struct {
	data [memorymap.ChipSizeROM]uint8
}

// Load copies the image into the ROM. The image must be exactly the size of
// the chip.
func (rom *ROM) Load(image []byte) error {
	if len(image) != len(rom.data) {
		return curated.Errorf("rom: image is %d bytes (expected %d)", len(image), len(rom.data))
	}
	copy(rom.data[:], image)
	return nil
}

// Read implements the cpubus.Memory interface.
func (rom *ROM) Read(address uint16) uint8 {
	return rom.data[address&memorymap.AddressMask]
}

// Write implements the cpubus.Memory interface. Writes to ROM are ignored.
func (rom *ROM) Write(address uint16, data uint8) {
}

// Poke writes to the ROM image. It is not reachable from the CPU.
func (rom *ROM) Poke(address uint16, data uint8) {
	rom.data[address&memorymap.AddressMask] = data
}
