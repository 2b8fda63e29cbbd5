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

// Package registers implements the three types of register found in the 6502.
// The 8 bit accumulator and index registers are represented by Register, the
// 16 bit program counter by ProgramCounter and the processor flags by
// StatusRegister.
//
// The Register type implements the arithmetic and logical operations of the
// CPU but does not touch the status register. The CPU is expected to update
// the status register from the return values and from the register's value
// afterwards. For example:
//
//	carry, overflow := a.Add(v, sr.Carry)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// The stack pointer is an ordinary Register. Its Address() is an offset into
// page one.
package registers
