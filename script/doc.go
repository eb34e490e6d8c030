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

// Package script implements a simulation engine with a Lua script standing
// in for the microcontroller firmware. It is useful for exercising the bus
// controller without a full instruction set simulation.
//
// The script must define a global step() function. It is called once per
// cycle with the cycle number, starting from one, and its return value
// decides the status of the engine:
//
//	nil or true       running
//	false or "done"   done
//	"crash"           crashed
//
// A runtime error in the script is also treated as a crash.
//
// The following tables are available to the script:
//
//	port.set(id, value)     set the port's output register
//	port.get(id)            the pin values, including bits driven from outside
//	port.external(id)       the value and mask driven onto the port from outside
//
//	uart.tx(v)              transmit a byte (number) or a string
//	uart.rx()               the next received byte or nil if there is none
//	uart.available()        the number of received bytes waiting
//
// Ports are identified by name: "A", "B", "C" or "D".
//
// The bus controller samples the output registers. Values it drives onto a
// port, and values driven by hotkeys, are only seen by the script through
// port.get() and port.external().
package script
