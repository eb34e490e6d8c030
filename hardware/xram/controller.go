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
	"github.com/jetsetilly/xrambus/hardware/ports"
	"github.com/jetsetilly/xrambus/hardware/xram/memory"
	"github.com/jetsetilly/xrambus/logger"
)

// Controller is the state of the bus controller. There should be one
// instance for the lifetime of the simulation and it should only be used
// from the run loop.
type Controller struct {
	cfg Config
	drv ports.Driver
	mem *memory.Array

	// the last value captured by the address latch
	addressHigh uint8

	// the bank bit for the most recent cycle
	bank uint8

	// set on the first cycle that write enable is asserted. never cleared
	writeEverAsserted bool

	// the composite address for the most recent cycle
	address uint32

	// the number of writes committed
	commits int
}

// NewController is the preferred method of initialisation for the Controller
// type. The Driver is used to drive the read back port on every call to
// Step(). It can be nil, in which case the Drive returned by Step() is the
// only output.
func NewController(cfg Config, drv ports.Driver) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mem, err := memory.NewArray(cfg.Capacity)
	if err != nil {
		return nil, err
	}

	ctl := &Controller{
		cfg: cfg,
		drv: drv,
		mem: mem,
	}
	ctl.Reset()

	return ctl, nil
}

// Reset the controller to its power-on state. Memory is cleared.
func (ctl *Controller) Reset() {
	ctl.mem.Reset()
	ctl.addressHigh = ctl.cfg.Sentinel
	ctl.bank = 0
	ctl.writeEverAsserted = false
	ctl.address = 0
	ctl.commits = 0
}

// Config returns a copy of the configuration used by the controller.
func (ctl *Controller) Config() Config {
	return ctl.cfg
}

// AllowLogging implements the logger.Permission interface. Writes are only
// logged if LogWrites is set in the configuration.
func (ctl *Controller) AllowLogging() bool {
	return ctl.cfg.LogWrites
}

// Step the controller by one cycle using the snapshot of the ports taken for
// that cycle. The returned Drive has already been applied to the Driver.
func (ctl *Controller) Step(s ports.Snapshot) ports.Drive {
	ctl.latchAddress(s)
	ctl.selectBank(s)
	ctl.address = ctl.Address(s)
	ctl.detectWrite(s)

	d := ctl.arbitrate(s)
	if ctl.drv != nil {
		d.Apply(ctl.drv)
	}

	return d
}

// LatchStrobe returns true if the latch strobe is asserted in the snapshot.
// Default wiring is bit 3 of port D, active high.
func (ctl *Controller) LatchStrobe(s ports.Snapshot) bool {
	return ctl.cfg.LatchStrobe.Asserted(s)
}

// BankSelect returns true if the bank select line is asserted in the
// snapshot. Default wiring is bit 5 of port A, active high.
func (ctl *Controller) BankSelect(s ports.Snapshot) bool {
	return ctl.cfg.BankSelect.Asserted(s)
}

// WriteEnable returns true if write enable is asserted in the snapshot.
// Default wiring is bit 6 of port D, active high.
func (ctl *Controller) WriteEnable(s ports.Snapshot) bool {
	return ctl.cfg.WriteEnable.Asserted(s)
}

// OutputEnable returns true if output enable is asserted in the snapshot.
// Default wiring is bit 2 of port D, active low.
func (ctl *Controller) OutputEnable(s ports.Snapshot) bool {
	return ctl.cfg.OutputEnable.Asserted(s)
}

// transparent latch. re-captures on every cycle the strobe is asserted
func (ctl *Controller) latchAddress(s ports.Snapshot) {
	if ctl.LatchStrobe(s) {
		ctl.addressHigh = s.Value(ctl.cfg.LatchSource)
	}
}

func (ctl *Controller) selectBank(s ports.Snapshot) {
	if ctl.BankSelect(s) {
		ctl.bank = 1
	} else {
		ctl.bank = 0
	}
}

// the write enable flag is sticky. once set every cycle with write enable
// deasserted will commit a write
func (ctl *Controller) detectWrite(s ports.Snapshot) {
	we := ctl.WriteEnable(s)

	if !we && ctl.writeEverAsserted {
		data := s.Value(ctl.cfg.Data)
		ctl.mem.Write(ctl.address, data)
		ctl.commits++
		logger.Logf(ctl, "xram", "write at %x %x %x (%x)", ctl.bank, ctl.addressHigh, s.Value(ctl.cfg.AddressLow), data)
	}

	ctl.writeEverAsserted = ctl.writeEverAsserted || we
}

func (ctl *Controller) arbitrate(s ports.Snapshot) ports.Drive {
	if ctl.OutputEnable(s) {
		return ports.Drive{
			Port:  ctl.cfg.ReadBack,
			Value: ctl.mem.Read(ctl.address),
			Mask:  ports.Driven,
		}
	}
	return ports.Drive{
		Port: ctl.cfg.ReadBack,
		Mask: ports.Tristate,
	}
}

// Address returns the composite address for the snapshot using the current
// value of the address latch. The bank is taken from the snapshot.
func (ctl *Controller) Address(s ports.Snapshot) uint32 {
	var bank uint32
	if ctl.BankSelect(s) {
		bank = 1
	}
	return bank<<16 | uint32(ctl.addressHigh)<<8 | uint32(s.Value(ctl.cfg.AddressLow))
}

// AddressHigh returns the current value of the address latch.
func (ctl *Controller) AddressHigh() uint8 {
	return ctl.addressHigh
}

// Bank returns the bank bit for the most recent cycle.
func (ctl *Controller) Bank() uint8 {
	return ctl.bank
}

// WriteEverAsserted returns true if write enable has been asserted at any
// point since the last reset.
func (ctl *Controller) WriteEverAsserted() bool {
	return ctl.writeEverAsserted
}

// LastAddress returns the composite address used in the most recent cycle.
func (ctl *Controller) LastAddress() uint32 {
	return ctl.address
}

// Commits returns the number of writes committed since the last reset.
func (ctl *Controller) Commits() int {
	return ctl.commits
}

// Memory returns the backing store of the device.
func (ctl *Controller) Memory() *memory.Array {
	return ctl.mem
}
