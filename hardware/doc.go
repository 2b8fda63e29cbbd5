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

// Package hardware is the base package for the UK101 replica emulation. It
// and its sub-packages contain everything required for a headless emulation.
//
// The Board type is the root of the emulation and contains external
// references to all the sub-systems. From here, the emulation can either be
// started to run continuously with Run(), or stepped one instruction at a
// time with Step().
//
// Run() executes instructions in batches of clocks.CyclesPerBatch cycles.
// Between batches any action requested by the input goroutine is serviced
// and the emulation sleeps for the remainder of clocks.BatchDuration, unless
// turbo mode is on or input is being replayed. Time lost by a slow batch is
// not recovered.
package hardware
