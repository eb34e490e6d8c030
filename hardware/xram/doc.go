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

// Package xram implements the bus controller of an external parallel memory
// device attached to the GPIO ports of a microcontroller.
//
// The device is address-latched and bank-switched with a tri-state output.
// Once per simulated cycle the Controller is given a Snapshot of the ports
// and it performs the following, strictly in order:
//
//	latch     the high address byte is captured while the latch strobe is
//	          asserted. the latch is transparent and re-captures on every
//	          cycle the strobe remains asserted
//
//	bank      the bank bit follows the bank select line. it is not latched
//
//	write     if write enable is deasserted and write enable has ever been
//	          asserted, the data port is written to memory
//
//	output    if output enable is asserted the memory at the address is
//	          driven onto the read back port with a full mask. otherwise the
//	          port is tri-stated with an empty mask
//
// The composite address is formed from the bank, the latched high byte and
// the low byte on the address port of the current snapshot:
//
//	bank<<16 | addressHigh<<8 | addressLow
//
// Note that the write enable flag is sticky. After the first assertion it is
// never cleared, so every later cycle with write enable deasserted commits a
// write. This is how the device behaves and the tests document it.
package xram
