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

// Package input coordinates the delivery of keyboard and replay input to the
// emulated machine.
//
// Keyboard input is collected by the Poller. The Poller runs in its own
// goroutine and polls a Source at a fixed interval. Bytes are handed to the
// emulation through a Slot, which holds at most one byte. The Poller blocks
// while the Slot is full so a byte is never dropped or overwritten.
//
// Two keystrokes are intercepted by the Poller and never reach the Slot.
// Ctrl-R requests a reset of the CPU through the Actions type, which the
// emulation services between batches of instructions. Ctrl-X calls the quit
// hook.
//
// Replay input is a pre-recorded stream of bytes, for example a BASIC listing
// or a decoded cassette recording. Every byte of a Replay is ready
// immediately.
//
// The Delivery type is what the ACIA sees. It serves the Replay while it
// lasts and then the Slot.
package input
