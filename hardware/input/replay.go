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

import (
	"github.com/gopher101/gopher101/logger"
)

// Replay is a pre-recorded stream of input. Replay is not safe for use from
// more than one goroutine.
type Replay struct {
	data []uint8
	pos  int
}

// NewReplay is the preferred method of initialisation for the Replay type.
// The data is not copied.
func NewReplay(data []uint8) *Replay {
	return &Replay{data: data}
}

// Active returns true if there are bytes remaining. A nil Replay is never
// active.
func (r *Replay) Active() bool {
	return r != nil && r.pos < len(r.data)
}

// Remaining returns the number of bytes still to be read.
func (r *Replay) Remaining() int {
	if r == nil {
		return 0
	}
	return len(r.data) - r.pos
}

// Read the next byte of the replay. Returns zero if the replay is not
// active.
func (r *Replay) Read() uint8 {
	if !r.Active() {
		return 0
	}

	b := translate(r.data[r.pos])
	r.pos++

	if r.pos == len(r.data) {
		logger.Logf(logger.Allow, "input", "replay finished after %d bytes", len(r.data))
	}

	return b
}
