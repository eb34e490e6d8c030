// This file is part of xrambus.
//
// xrambus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// xrambus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with xrambus.  If not, see <https://www.gnu.org/licenses/>.

package input

import (
	"go.bug.st/serial"

	"github.com/jetsetilly/xrambus/curated"
)

// DefaultBaudRate is the baud rate used when opening a serial device.
const DefaultBaudRate = 9600

// Serial is a non-blocking source of bytes read from a host serial device.
type Serial struct {
	*Reader
	port serial.Port
}

// NewSerial is the preferred method of initialisation for the Serial type.
func NewSerial(device string, baud int) (*Serial, error) {
	port, err := serial.Open(device, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, curated.Errorf("serial: %v", err)
	}

	return &Serial{
		Reader: NewReader(port),
		port:   port,
	}, nil
}

// Close the serial device.
func (ser *Serial) Close() error {
	if err := ser.port.Close(); err != nil {
		return curated.Errorf("serial: %v", err)
	}
	return nil
}
