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

import "sync/atomic"

// Action is a request made by the input goroutine that must be serviced by
// the emulation goroutine.
type Action int32

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionReset
)

func (act Action) String() string {
	switch act {
	case ActionNone:
		return "none"
	case ActionReset:
		return "reset"
	}
	return "unknown action"
}

// Actions holds the pending action. It is safe to use from more than one
// goroutine. A new request replaces any request that has not been taken.
type Actions struct {
	pending atomic.Int32
}

// Request an action.
func (a *Actions) Request(act Action) {
	a.pending.Store(int32(act))
}

// Take the pending action, leaving ActionNone in its place.
func (a *Actions) Take() Action {
	return Action(a.pending.Swap(int32(ActionNone)))
}
