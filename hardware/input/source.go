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
	"io"
)

// Source is a non-blocking supplier of keyboard bytes. Poll returns ok false
// if no byte is currently available. An error means the source has failed
// and should not be polled again. io.EOF is returned when the source has
// ended normally.
type Source interface {
	Poll() (b uint8, ok bool, err error)
}

// the number of bytes a ReaderSource can read ahead of the Poller
const readAhead = 4096

// ReaderSource is a Source for input that cannot be polled directly, such as
// a pipe. The reader is read by a background goroutine.
type ReaderSource struct {
	data chan uint8

	// the error that ended the background goroutine. only valid once data
	// has been closed
	err error
}

// NewReaderSource is the preferred method of initialisation for the
// ReaderSource type. Reading begins immediately.
func NewReaderSource(r io.Reader) *ReaderSource {
	src := &ReaderSource{
		data: make(chan uint8, readAhead),
	}
	go src.read(r)
	return src
}

func (src *ReaderSource) read(r io.Reader) {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			src.data <- b
		}
		if err != nil {
			src.err = err
			close(src.data)
			return
		}
	}
}

// Poll implements the Source interface.
func (src *ReaderSource) Poll() (uint8, bool, error) {
	select {
	case b, ok := <-src.data:
		if !ok {
			return 0, false, src.err
		}
		return b, true, nil
	default:
		return 0, false, nil
	}
}
