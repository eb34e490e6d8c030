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

// Package injector forwards host input to the receive line of the
// simulation's serial port.
//
// The injector only polls its Source once every Interval cycles. The poll
// must never block. A byte that is found is forwarded to the Receiver as is.
// Bytes that match a Hotkey also drive a value onto one of the ports before
// being forwarded.
package injector
