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

// Package memory implements the storage of the external memory device.
//
// The Array type is addressed with a composite address of up to 17 bits.
// When the array is smaller than the address space, the upper address lines
// are not connected and the address is mirrored.
package memory

import (
	"github.com/jetsetilly/xrambus/curated"
)

// Sentinal errors.
const (
	InvalidCapacity = "memory: invalid capacity (%d)"
	OutOfRange      = "memory: address out of range (%#05x)"
)

// Limits on the capacity of an Array.
const (
	MinCapacity = 0x00100
	MaxCapacity = 0x20000
)

// Array is the backing store of the memory device.
type Array struct {
	data []uint8
	mask uint32
}

// NewArray is the preferred method of initialisation for the Array type. The
// capacity must be a power of two between MinCapacity and MaxCapacity.
func NewArray(capacity int) (*Array, error) {
	if capacity < MinCapacity || capacity > MaxCapacity || capacity&(capacity-1) != 0 {
		return nil, curated.Errorf(InvalidCapacity, capacity)
	}

	return &Array{
		data: make([]uint8, capacity),
		mask: uint32(capacity - 1),
	}, nil
}

// Len returns the capacity of the array in bytes.
func (mem *Array) Len() int {
	return len(mem.data)
}

// Normalise an address by removing the address bits that are not connected.
func (mem *Array) Normalise(address uint32) uint32 {
	return address & mem.mask
}

// Read the byte at the address. The address is normalised.
func (mem *Array) Read(address uint32) uint8 {
	return mem.data[mem.Normalise(address)]
}

// Write the byte to the address. The address is normalised.
func (mem *Array) Write(address uint32, data uint8) {
	mem.data[mem.Normalise(address)] = data
}

// Peek is like Read() but the address is not normalised. An address outside
// of the array is an error.
func (mem *Array) Peek(address uint32) (uint8, error) {
	if address > mem.mask {
		return 0, curated.Errorf(OutOfRange, address)
	}
	return mem.data[address], nil
}

// Poke is like Write() but the address is not normalised. An address outside
// of the array is an error.
func (mem *Array) Poke(address uint32, value uint8) error {
	if address > mem.mask {
		return curated.Errorf(OutOfRange, address)
	}
	mem.data[address] = value
	return nil
}

// Reset contents of the array to zero.
func (mem *Array) Reset() {
	clear(mem.data)
}
