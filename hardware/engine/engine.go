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

// Package engine defines the interface to the microcontroller simulation
// that the bus controller is attached to. The simulation itself is not part
// of this package.
package engine

import (
	"github.com/jetsetilly/xrambus/hardware/ports"
)

// Status is returned by Engine.Step() and indicates whether the simulation
// can continue.
type Status int

// List of valid Status values.
const (
	Running Status = iota
	Done
	Crashed
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	case Crashed:
		return "crashed"
	}
	return "unknown"
}

// Engine is implemented by the microcontroller simulation.
type Engine interface {
	ports.Reader
	ports.Driver

	// Step executes one instruction
	Step() (Status, error)

	// InjectRx delivers one byte to the receive line of the simulation's
	// serial port
	InjectRx(b uint8)
}
