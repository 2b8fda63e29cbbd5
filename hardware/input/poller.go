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
	"context"
	"errors"
	"io"
	"time"

	"github.com/gopher101/gopher101/curated"
)

// PollInterval is the time between each poll of the Source.
const PollInterval = 20 * time.Millisecond

// Keystrokes intercepted by the Poller.
const (
	CtrlR = 0x12
	CtrlX = 0x18
)

// Poller moves bytes from a Source to a Slot.
type Poller struct {
	src     Source
	slot    *Slot
	actions *Actions

	// OnQuit is called when Ctrl-X is received. The Poller stops after
	// calling it. May be nil
	OnQuit func()

	// the interval between polls. PollInterval unless changed for testing
	interval time.Duration
}

// NewPoller is the preferred method of initialisation for the Poller type.
func NewPoller(src Source, slot *Slot, actions *Actions) *Poller {
	return &Poller{
		src:      src,
		slot:     slot,
		actions:  actions,
		interval: PollInterval,
	}
}

// Run the Poller until the context ends, the Source ends or Ctrl-X is
// received. An error is returned only if the Source fails.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		quit, err := p.poll(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return curated.Errorf("input: %v", err)
		}
		if quit {
			return nil
		}
	}
}

// poll drains the Source of all bytes currently available. Returns true if
// Ctrl-X was received.
func (p *Poller) poll(ctx context.Context) (bool, error) {
	for {
		b, ok, err := p.src.Poll()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}

		switch b {
		case CtrlX:
			if p.OnQuit != nil {
				p.OnQuit()
			}
			return true, nil
		case CtrlR:
			p.actions.Request(ActionReset)
		default:
			if err := p.slot.Put(ctx, translate(b)); err != nil {
				return false, err
			}
		}
	}
}

// translate line feed to carriage return. the UK101 monitor and BASIC expect
// the RETURN key to send CR
func translate(b uint8) uint8 {
	if b == '\n' {
		return '\r'
	}
	return b
}
