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
	"io"

	"github.com/gopher101/gopher101/hardware/acia"
	"github.com/gopher101/gopher101/hardware/cpu"
	"github.com/gopher101/gopher101/hardware/input"
	"github.com/gopher101/gopher101/hardware/memory"
	"github.com/gopher101/gopher101/logger"
)

// the message printed to the console when the CPU is reset by request
const resetMessage = "\n*** CPU Reset ***\n"

// Board is the main container for the emulated components of the UK101.
type Board struct {
	CPU  *cpu.CPU
	Mem  *memory.Memory
	ACIA *acia.ACIA

	// the input as seen by the ACIA and the actions requested by the input
	// goroutine
	Input   *input.Delivery
	Actions *input.Actions

	// turbo disables real-time pacing
	Turbo bool

	console io.Writer

	// the number of batches and cycles run since the board was created
	batches int
	cycles  int64

	// pacing hooks. these are time.Now() and time.Sleep() unless replaced
	// for testing
	pacing pacing
}

// NewBoard creates a new Board and everything associated with the hardware.
// Bytes transmitted by the ACIA are written to the console. The Board must
// be given a ROM with LoadROM() and then Reset() before it is run.
func NewBoard(in *input.Delivery, actions *input.Actions, console io.Writer) *Board {
	b := &Board{
		Input:   in,
		Actions: actions,
		console: console,
		pacing:  realTime(),
	}

	b.ACIA = acia.NewACIA(in, console)
	b.Mem = memory.NewMemory(b.ACIA)
	b.CPU = cpu.NewCPU(b.Mem)

	return b
}

// LoadROM loads the ROM image into memory.
func (b *Board) LoadROM(image []byte) error {
	return b.Mem.LoadROM(image)
}

// Reset the whole board. The ACIA is reset before the CPU. RAM is not
// cleared.
func (b *Board) Reset() {
	b.ACIA.Reset()
	b.CPU.Reset()
	logger.Logf(logger.Allow, "board", "reset: PC=%s", b.CPU.PC)
}

// serviceActions performs any action requested by the input goroutine.
func (b *Board) serviceActions() {
	switch b.Actions.Take() {
	case input.ActionReset:
		if _, err := io.WriteString(b.console, resetMessage); err != nil {
			logger.Log(logger.Allow, "board", err)
		}
		b.CPU.Reset()
		logger.Logf(logger.Allow, "board", "cpu reset by request: PC=%s", b.CPU.PC)
	}
}
