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

package registers

// AddDecimal adds value to register as though both are binary coded
// decimal. Returns new carry state, zero, overflow, sign bit information.
//
// The zero flag reflects the binary sum. The sign and overflow flags are
// computed after the low nibble has been adjusted but before the high nibble
// is adjusted. This matches the NMOS 6502.
func (r *Register) AddDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	a := uint16(r.value)
	b := uint16(val)

	lo := a&0x0f + b&0x0f
	if carry {
		lo++
	}
	hi := a&0xf0 + b&0xf0

	zero := (lo+hi)&0xff == 0

	if lo > 0x09 {
		hi += 0x10
		lo += 0x06
	}

	sign := hi&0x80 == 0x80
	overflow := ^(a^b)&(a^hi)&0x80 == 0x80

	if hi > 0x90 {
		hi += 0x60
	}

	r.value = uint8(lo&0x0f | hi&0xf0)

	return hi >= 0x100, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both are binary
// coded decimal. Returns new carry state, zero, overflow, sign bit
// information.
//
// All four flags reflect the binary subtraction. Only the value left in the
// register is decimal adjusted.
func (r *Register) SubtractDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	a := uint16(r.value)
	b := uint16(val)

	// the carry flag is an inverted borrow
	var borrow uint16
	if !carry {
		borrow = 1
	}

	bin := a - b - borrow
	lo := a&0x0f - b&0x0f - borrow
	hi := a&0xf0 - b&0xf0

	if lo&0x10 == 0x10 {
		lo -= 0x06
		hi--
	}

	overflow := (a^b)&(a^bin)&0x80 == 0x80
	rcarry := bin&0xff00 == 0
	zero := bin&0xff == 0
	sign := bin&0x80 == 0x80

	if hi&0x100 == 0x100 {
		hi -= 0x60
	}

	r.value = uint8(lo&0x0f | hi&0xf0)

	return rcarry, zero, overflow, sign
}
