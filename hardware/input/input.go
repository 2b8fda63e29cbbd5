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

// Delivery is the source of received bytes for the ACIA. It serves the
// Replay, if there is one, until it ends and then serves the Slot.
//
// Delivery is used by the emulation goroutine only. The Slot it reads from is
// shared with the Poller.
type Delivery struct {
	slot   *Slot
	replay *Replay
}

// NewDelivery is the preferred method of initialisation for the Delivery
// type. The replay argument may be nil.
func NewDelivery(slot *Slot, replay *Replay) *Delivery {
	return &Delivery{
		slot:   slot,
		replay: replay,
	}
}

// Replaying returns true while the Replay is active. Pacing of the emulation
// is disabled while replaying.
func (d *Delivery) Replaying() bool {
	return d.replay.Active()
}

// Ready implements the acia.Input interface.
func (d *Delivery) Ready() bool {
	if d.replay.Active() {
		return true
	}
	return d.slot.Ready()
}

// Read implements the acia.Input interface.
func (d *Delivery) Read() uint8 {
	if d.replay.Active() {
		return d.replay.Read()
	}
	b, _ := d.slot.Take()
	return b
}
