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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gopher101/gopher101/hardware"
	"github.com/gopher101/gopher101/hardware/clocks"
)

// Check the performance of the emulator by running the board for the
// specified duration.
//
// The board is put into turbo mode for the duration of the check and is
// restored afterwards. A cpu or memory profile, a trace (or a combination of
// those) is created as defined by the Profile argument.
func Check(output io.Writer, board *hardware.Board, profile Profile, duration time.Duration) error {
	turbo := board.Turbo
	board.Turbo = true
	defer func() {
		board.Turbo = turbo
	}()

	startCycles := board.Cycles()
	var elapsed time.Duration

	runner := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), duration)
		defer cancel()

		start := time.Now()
		board.Run(ctx)
		elapsed = time.Since(start)
		return nil
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return err
	}

	numCycles := board.Cycles() - startCycles
	mhz, accuracy := CalcMHz(numCycles, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, numCycles, elapsed.Seconds(), accuracy)

	return nil
}

// CalcMHz takes the number of cycles and duration (in seconds) and returns
// the emulated clock speed in MHz and the accuracy of that value as a
// percentage of the real machine's clock.
func CalcMHz(numCycles int64, duration float64) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	mhz = float64(numCycles) / duration / 1000000
	accuracy = 100 * mhz / clocks.MHz
	return mhz, accuracy
}
