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
	"context"
	"time"

	"github.com/gopher101/gopher101/hardware/clocks"
)

type pacing struct {
	now   func() time.Time
	sleep func(time.Duration)
}

func realTime() pacing {
	return pacing{
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// RunBatch executes instructions until at least clocks.CyclesPerBatch cycles
// have elapsed. Returns the number of cycles actually taken, which can exceed
// the batch by the length of the final instruction. There is no pacing.
func (b *Board) RunBatch() int {
	var cycles int
	for cycles < clocks.CyclesPerBatch {
		cycles += b.CPU.ExecuteInstruction()
	}
	b.batches++
	b.cycles += int64(cycles)
	return cycles
}

// Run sets the emulation running until the context is cancelled. The context
// is checked between batches.
func (b *Board) Run(ctx context.Context) {
	for ctx.Err() == nil {
		start := b.pacing.now()

		b.RunBatch()
		b.serviceActions()

		if b.Turbo || b.Input.Replaying() {
			continue
		}

		// no attempt is made to catch up if the batch took longer than it
		// should have
		if d := clocks.BatchDuration - b.pacing.now().Sub(start); d > 0 {
			b.pacing.sleep(d)
		}
	}
}

// Batches returns the number of batches run since the board was created.
func (b *Board) Batches() int {
	return b.batches
}

// Cycles returns the number of cycles run in batches since the board was
// created. Instructions run with Step() are not counted.
func (b *Board) Cycles() int64 {
	return b.cycles
}
