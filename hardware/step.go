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
	"github.com/gopher101/gopher101/hardware/cpu/execution"
)

// Step the emulation forward one instruction, or one interrupt sequence.
// Pending actions are not serviced and there is no pacing. Returns the result
// of the instruction.
//
// The callback function, if not nil, is called with the result before
// returning. It is useful for tracing.
func (b *Board) Step(callback func(execution.Result)) execution.Result {
	b.CPU.ExecuteInstruction()
	if callback != nil {
		callback(b.CPU.LastResult)
	}
	return b.CPU.LastResult
}
