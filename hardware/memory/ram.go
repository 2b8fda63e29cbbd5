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
	"encoding/hex"

	"github.com/gopher101/gopher101/hardware/memory/memorymap"
)

// RAM is the 32K of static RAM at the bottom of the address space.
type RAM struct {
	data [memorymap.ChipSizeRAM]uint8
}

func (ram *RAM) String() string {
	return hex.Dump(ram.data[:])
}

// Clear sets every byte of RAM to zero.
func (ram *RAM) Clear() {
	clear(ram.data[:])
}

// Read implements the cpubus.Memory interface.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.data[address&memorymap.AddressMask]
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.data[address&memorymap.AddressMask] = data
}
