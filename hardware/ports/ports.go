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

package ports

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/xrambus/curated"
)

// Sentinal errors.
const (
	UnknownPort = "ports: unknown port (%s)"
	InvalidLine = "ports: invalid line (%s)"
)

// ID identifies one of the four GPIO ports.
type ID int

// List of valid port IDs.
const (
	A ID = iota
	B
	C
	D
)

// NumPorts is the number of ports monitored by the system.
const NumPorts = 4

func (id ID) String() string {
	switch id {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	}
	return fmt.Sprintf("port(%d)", int(id))
}

// Valid returns true if the ID is one of the four known ports.
func (id ID) Valid() bool {
	return id >= A && id <= D
}

// ParseID converts the name of a port (case insensitive) to an ID.
func ParseID(s string) (ID, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return A, nil
	case "B":
		return B, nil
	case "C":
		return C, nil
	case "D":
		return D, nil
	}
	return A, curated.Errorf(UnknownPort, s)
}

// Reader is implemented by the simulation engine. PortState() returns the
// instantaneous logic levels of the port's pins and must have no side
// effects on the simulation.
type Reader interface {
	PortState(id ID) uint8
}

// Driver is implemented by the simulation engine. SetExternal() drives the
// port's pins from outside the microcontroller. Only the bits set in the
// mask are driven, the other bits are left to the microcontroller.
type Driver interface {
	SetExternal(id ID, value uint8, mask uint8)
}

// Masks used with the Driver interface.
const (
	Driven   uint8 = 0xff
	Tristate uint8 = 0x00
)

// Drive is a value and mask destined for a port's pins.
type Drive struct {
	Port  ID
	Value uint8
	Mask  uint8
}

func (d Drive) String() string {
	if d.Mask == Tristate {
		return fmt.Sprintf("%s: tristate", d.Port)
	}
	return fmt.Sprintf("%s: %02x (mask %02x)", d.Port, d.Value, d.Mask)
}

// Apply the drive using the supplied Driver.
func (d Drive) Apply(drv Driver) {
	drv.SetExternal(d.Port, d.Value, d.Mask)
}
