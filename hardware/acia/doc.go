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

// Package acia implements the MC6850 Asynchronous Communications Interface
// Adapter that connects the UK101 to its keyboard and console.
//
// The device occupies the 0xf000 to 0xf7ff area of the address map but only
// responds when address line A11 is clear. Address line A0 selects between
// the two register pairs:
//
//	A0  read             write
//	0   status           control
//	1   receive data     transmit data
//
// Transmission is instantaneous. A byte written to the transmit data register
// is passed to the output immediately and the transmit data register is
// always reported as empty.
//
// Reception is driven by the Input interface. The receive data register full
// bit in the status register is set whenever the status register is read and
// input is ready. Reading the receive data register takes the byte from the
// input and clears the bit.
package acia
