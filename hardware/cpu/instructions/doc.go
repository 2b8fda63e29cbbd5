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

// Package instructions defines the documented instruction set of the NMOS
// 6502. Each opcode has a Definition describing its mnemonic, addressing
// mode, size in bytes, base cycle count and whether an extra cycle is
// required when an indexed address crosses a page boundary.
//
// Definitions is indexed by opcode. Undocumented opcodes have a nil entry.
// The table is built once when the package is initialised and is never
// changed afterwards.
package instructions
