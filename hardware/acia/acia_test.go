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

package acia_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gopher101/gopher101/hardware/acia"
	"github.com/gopher101/gopher101/logger"
	"github.com/gopher101/gopher101/test"
)

// queue is a simple Input implementation.
type queue struct {
	data  []uint8
	reads int
}

func (q *queue) Ready() bool {
	return len(q.data) > 0
}

func (q *queue) Read() uint8 {
	q.reads++
	if len(q.data) == 0 {
		return 0
	}
	b := q.data[0]
	q.data = q.data[1:]
	return b
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("console gone")
}

func TestReset(t *testing.T) {
	dev := acia.NewACIA(&queue{}, &test.CompareWriter{})
	test.ExpectEquality(t, dev.Status(), 0x0e)
	test.ExpectEquality(t, dev.Control(), 0x00)
	test.ExpectEquality(t, dev.String(), "CR=0x00 SR=0x0e TDR=0x00 RDR=0x00")

	dev.Write(0xf000, 0x11)
	dev.Write(0xf001, 'A')
	dev.Reset()
	test.ExpectEquality(t, dev.String(), "CR=0x00 SR=0x0e TDR=0x00 RDR=0x00")
}

func TestTransmit(t *testing.T) {
	out := &test.CompareWriter{}
	dev := acia.NewACIA(&queue{}, out)

	for _, b := range []byte("HELLO\r\n") {
		dev.Write(0xf001, b)
	}
	test.ExpectSuccess(t, out.Compare("HELLO\r\n"))
	test.ExpectEquality(t, dev.Status()&acia.StatusTDRE, acia.StatusTDRE)

	// any odd address below A11 selects the data register
	dev.Write(0xf7ff, '!')
	test.ExpectSuccess(t, out.Compare("HELLO\r\n!"))
}

func TestControl(t *testing.T) {
	out := &test.CompareWriter{}
	dev := acia.NewACIA(&queue{}, out)

	dev.Write(0xf000, 0x03)
	test.ExpectEquality(t, dev.Control(), 0x03)
	dev.Write(0xf002, 0x11)
	test.ExpectEquality(t, dev.Control(), 0x11)

	// writing to the control register does not transmit anything
	test.ExpectSuccess(t, out.Compare(""))
}

func TestReceive(t *testing.T) {
	in := &queue{}
	dev := acia.NewACIA(in, &test.CompareWriter{})

	// nothing ready
	test.ExpectEquality(t, dev.Read(0xf000), 0x0e)

	in.data = []uint8{'R', 'U'}
	test.ExpectEquality(t, dev.Read(0xf000), 0x0f)

	// peek does not consult the input or change status
	test.ExpectEquality(t, dev.Peek(0xf000), 0x0f)
	test.ExpectEquality(t, dev.Peek(0xf001), 0x00)
	test.ExpectEquality(t, in.reads, 0)

	test.ExpectEquality(t, dev.Read(0xf001), 'R')
	test.ExpectEquality(t, dev.Status()&acia.StatusRDRF, 0x00)
	test.ExpectEquality(t, dev.Peek(0xf001), 'R')

	// the next byte is ready
	test.ExpectEquality(t, dev.Read(0xf000), 0x0f)
	test.ExpectEquality(t, dev.Read(0xf001), 'U')

	// the status register is not updated until it is read
	test.ExpectEquality(t, dev.Status(), 0x0e)
	test.ExpectEquality(t, dev.Read(0xf000), 0x0e)

	// reading the data register with nothing ready
	test.ExpectEquality(t, dev.Read(0xf001), 0x00)
	test.ExpectEquality(t, in.reads, 3)
}

func TestChipSelect(t *testing.T) {
	in := &queue{data: []uint8{'X'}}
	out := &test.CompareWriter{}
	dev := acia.NewACIA(in, out)

	test.ExpectEquality(t, dev.Read(0xf800), 0xff)
	test.ExpectEquality(t, dev.Read(0xf801), 0xff)
	test.ExpectEquality(t, dev.Peek(0xf801), 0xff)

	dev.Write(0xf800, 0x55)
	dev.Write(0xf801, 'A')
	test.ExpectEquality(t, dev.Control(), 0x00)
	test.ExpectSuccess(t, out.Compare(""))

	// input was not touched
	test.ExpectEquality(t, in.reads, 0)
	test.ExpectEquality(t, len(in.data), 1)
}

func TestOutputError(t *testing.T) {
	logger.Clear()

	dev := acia.NewACIA(&queue{}, failWriter{})
	dev.Write(0xf001, 'A')
	test.ExpectEquality(t, dev.Status(), 0x0e)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "acia: console gone\n")
}
