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

package hardware

import (
	"github.com/gopher101/gopher101/hardware/cpu/registers"
)

// State is a copy of the externally visible state of the board. It does not
// include the contents of memory.
type State struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	IllegalOpcodes int

	ACIAControl uint8
	ACIAStatus  uint8

	// the stack page. useful for checking subroutine and interrupt nesting
	Stack [256]uint8

	Batches int
	Cycles  int64
	Turbo   bool
	Replay  bool
}

// Snapshot the state of the board.
func (b *Board) Snapshot() *State {
	s := &State{
		PC:             b.CPU.PC,
		A:              b.CPU.A,
		X:              b.CPU.X,
		Y:              b.CPU.Y,
		SP:             b.CPU.SP,
		Status:         b.CPU.Status,
		IllegalOpcodes: b.CPU.IllegalOpcodes,
		ACIAControl:    b.ACIA.Control(),
		ACIAStatus:     b.ACIA.Status(),
		Batches:        b.batches,
		Cycles:         b.cycles,
		Turbo:          b.Turbo,
		Replay:         b.Input.Replaying(),
	}
	for i := range s.Stack {
		s.Stack[i] = b.Mem.Peek(0x0100 | uint16(i))
	}
	return s
}
