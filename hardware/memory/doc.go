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

// Package memory implements the memory system of the UK101 replica. The
// Memory type is the bus decoder. It holds references to the RAM and ROM
// chips and to the ACIA, and routes each CPU access to the chip selected by
// the memorymap package.
//
// The decoder owns no data of its own. Reads of an area with nothing
// attached return the open bus value.
//
// RAM survives a CPU reset. It is only cleared on construction or by an
// explicit call to ClearRAM().
package memory
