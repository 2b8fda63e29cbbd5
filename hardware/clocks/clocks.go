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

// Package clocks defines the constant values that define the speed of the
// main clock in the UK101 replica and the granularity of real-time pacing.
//
// The emulation does not count time per cycle. Instructions are executed in
// batches and the emulation sleeps between batches for whatever remains of
// the time the batch would have taken on real hardware.
package clocks

import "time"

// MHz is the speed of the CPU clock.
const MHz = 1.0

// CyclesPerBatch is the number of CPU cycles executed between each pacing
// point.
const CyclesPerBatch = 20000

// BatchDuration is the real time taken by CyclesPerBatch cycles at the CPU
// clock speed.
const BatchDuration = time.Duration(CyclesPerBatch/MHz) * time.Microsecond
