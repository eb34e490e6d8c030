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

package xram

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Registers is a copy of the controller's registers, suitable for display.
type Registers struct {
	AddressHigh       uint8
	Bank              uint8
	WriteEverAsserted bool
	LastAddress       uint32
	Commits           int
	Config            Config
}

// Registers returns a copy of the controller's current registers.
func (ctl *Controller) Registers() Registers {
	return Registers{
		AddressHigh:       ctl.addressHigh,
		Bank:              ctl.bank,
		WriteEverAsserted: ctl.writeEverAsserted,
		LastAddress:       ctl.address,
		Commits:           ctl.commits,
		Config:            ctl.cfg,
	}
}

// Visualise writes a graphviz description of the controller's registers to
// the writer.
func (ctl *Controller) Visualise(w io.Writer) {
	r := ctl.Registers()
	memviz.Map(w, &r)
}
