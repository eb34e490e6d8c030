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

// Package hardware ties the simulation engine to the bus controller and the
// injector.
//
// The System type owns one of each and advances them together. A cycle is
// one instruction executed by the engine followed by, strictly in this
// order:
//
//	sample the four ports
//	step the bus controller (latch, bank, write, output)
//	record the cycle with the probe, if one is attached
//	give the injector the chance to poll for input
//
// The System stops when the engine reports that it is done or that it has
// crashed. A crash is returned as an error.
package hardware
