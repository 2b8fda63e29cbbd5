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

package easyterm

import (
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/gopher101/gopher101/curated"
)

// IsTerminal returns true if the file is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	// Restore() may be called from the input goroutine as well as the main
	// goroutine
	mu  sync.Mutex
	raw bool
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The current attributes of the terminal are noted and will be put
// back by Restore().
func NewTerminal(input *os.File) (*Terminal, error) {
	if input == nil {
		return nil, curated.Errorf("easyterm: %v", "terminal requires an input file")
	}
	if !IsTerminal(input) {
		return nil, curated.Errorf("easyterm: %v", "input is not a terminal")
	}

	pt := &Terminal{
		input: input,
	}

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return nil, curated.Errorf("easyterm: %v", err)
	}

	// raw mode is derived from the current attributes
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	return pt, nil
}

// RawMode puts terminal into raw mode. Keystrokes are available immediately,
// are not echoed and control characters are not interpreted.
func (pt *Terminal) RawMode() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.rawAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	pt.raw = true
	return nil
}

// Restore puts the terminal back into the mode it was in when the Terminal
// was created. It is safe to call Restore() more than once.
func (pt *Terminal) Restore() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if !pt.raw {
		return nil
	}
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	pt.raw = false
	return nil
}

// Pending returns the number of bytes waiting to be read.
func (pt *Terminal) Pending() (int, error) {
	return termios.Tiocinq(pt.input.Fd())
}

// Poll implements the input.Source interface. Returns immediately if no byte
// is waiting.
func (pt *Terminal) Poll() (uint8, bool, error) {
	n, err := pt.Pending()
	if err != nil {
		return 0, false, curated.Errorf("easyterm: %v", err)
	}
	if n == 0 {
		return 0, false, nil
	}

	var b [1]byte
	if _, err := pt.input.Read(b[:]); err != nil {
		return 0, false, curated.Errorf("easyterm: %v", err)
	}
	return b[0], true, nil
}
