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

package input

import "context"

// Slot is the handoff point for a single byte between the input goroutine and
// the emulation goroutine.
type Slot struct {
	pending chan uint8
}

// NewSlot is the preferred method of initialisation for the Slot type.
func NewSlot() *Slot {
	return &Slot{
		pending: make(chan uint8, 1),
	}
}

// Put a byte into the slot. Blocks while a byte is already pending. Returns
// the context error if the context ends before the byte could be placed.
func (s *Slot) Put(ctx context.Context, b uint8) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case s.pending <- b:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready returns true if a byte is pending.
func (s *Slot) Ready() bool {
	return len(s.pending) > 0
}

// Take the pending byte. Does not block. The boolean return value is false
// if there was nothing to take.
func (s *Slot) Take() (uint8, bool) {
	select {
	case b := <-s.pending:
		return b, true
	default:
		return 0, false
	}
}
