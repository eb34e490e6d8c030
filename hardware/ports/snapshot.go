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
)

// Snapshot is the value of every port at one point in time. It is only valid
// for the cycle in which it was sampled.
type Snapshot [NumPorts]uint8

// Value returns the sampled value of the specified port.
func (s Snapshot) Value(id ID) uint8 {
	return s[id]
}

func (s Snapshot) String() string {
	return fmt.Sprintf("A=%02x B=%02x C=%02x D=%02x", s[A], s[B], s[C], s[D])
}

// Sampler reads the four ports from a Reader.
type Sampler struct {
	r Reader
}

// NewSampler is the preferred method of initialisation for the Sampler type.
func NewSampler(r Reader) *Sampler {
	return &Sampler{r: r}
}

// Sample the current state of all four ports. Every signal interpreted in a
// cycle must come from the same Snapshot.
func (smp *Sampler) Sample() Snapshot {
	var s Snapshot
	for id := A; id <= D; id++ {
		s[id] = smp.r.PortState(id)
	}
	return s
}
