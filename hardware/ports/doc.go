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

// Package ports models the four 8-bit GPIO ports of the microcontroller that
// the external memory device is wired to.
//
// The Reader and Driver interfaces are the only way the rest of the system
// touches the simulation's pins. A Sampler takes a Snapshot of all four
// ports once per cycle and every control signal for that cycle is derived
// from that one Snapshot with a Line.
package ports
