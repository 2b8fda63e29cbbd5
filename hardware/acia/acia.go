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

package acia

import (
	"fmt"
	"io"

	"github.com/gopher101/gopher101/logger"
)

// Bits of the status register.
const (
	StatusRDRF = 0x01 // receive data register full
	StatusTDRE = 0x02 // transmit data register empty
	StatusDCD  = 0x04 // data carrier detect
	StatusCTS  = 0x08 // clear to send
)

// the value of the status register after a reset
const resetStatus = StatusTDRE | StatusDCD | StatusCTS

// the device is selected only when address line A11 is clear
const chipSelect = 0x0800

// Input is the source of received bytes. Read is called only when the
// receive data register is read and should return zero if no byte is ready.
type Input interface {
	Ready() bool
	Read() uint8
}

// ACIA is the serial interface device.
type ACIA struct {
	in  Input
	out io.Writer

	control  uint8
	status   uint8
	transmit uint8
	receive  uint8
}

// NewACIA is the preferred method of initialisation for the ACIA type. The
// device is returned in its reset state.
func NewACIA(in Input, out io.Writer) *ACIA {
	dev := &ACIA{
		in:  in,
		out: out,
	}
	dev.Reset()
	return dev
}

func (dev *ACIA) String() string {
	return fmt.Sprintf("CR=%#02x SR=%#02x TDR=%#02x RDR=%#02x", dev.control, dev.status, dev.transmit, dev.receive)
}

// Reset the device. Output and input are not affected.
func (dev *ACIA) Reset() {
	dev.control = 0
	dev.transmit = 0
	dev.receive = 0
	dev.status = resetStatus
}

// Status returns the status register as it was last read or changed.
func (dev *ACIA) Status() uint8 {
	return dev.status
}

// Control returns the value last written to the control register.
func (dev *ACIA) Control() uint8 {
	return dev.control
}

// Read implements the cpubus.Memory interface.
func (dev *ACIA) Read(address uint16) uint8 {
	if address&chipSelect == chipSelect {
		return 0xff
	}

	if address&0x01 == 0x00 {
		if dev.in.Ready() {
			dev.status |= StatusRDRF
		}
		return dev.status
	}

	dev.receive = dev.in.Read()
	dev.status &^= StatusRDRF
	return dev.receive
}

// Write implements the cpubus.Memory interface.
func (dev *ACIA) Write(address uint16, data uint8) {
	if address&chipSelect == chipSelect {
		return
	}

	if address&0x01 == 0x00 {
		dev.control = data
		return
	}

	dev.transmit = data
	if _, err := dev.out.Write([]byte{data}); err != nil {
		logger.Log(logger.Allow, "acia", err)
	}
	dev.status |= StatusTDRE
}

// Peek returns the value of a register without side effects. The input is
// not consulted.
func (dev *ACIA) Peek(address uint16) uint8 {
	if address&chipSelect == chipSelect {
		return 0xff
	}
	if address&0x01 == 0x00 {
		return dev.status
	}
	return dev.receive
}
