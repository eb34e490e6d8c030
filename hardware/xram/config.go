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
	"fmt"
	"strings"

	"github.com/jetsetilly/xrambus/curated"
	"github.com/jetsetilly/xrambus/hardware/ports"
	"github.com/jetsetilly/xrambus/hardware/xram/memory"
)

// InvalidConfig is returned by Config.Validate().
const InvalidConfig = "xram: invalid config: %v"

// Config describes how the device is wired to the ports.
//
// AddressLow and LatchSource are separate roles even though in the default
// wiring they are the same port.
type Config struct {
	// the port supplying the low byte of the composite address
	AddressLow ports.ID

	// the port captured by the address latch
	LatchSource ports.ID

	// the port supplying the byte to be written
	Data ports.ID

	// the port driven by the output arbiter
	ReadBack ports.ID

	LatchStrobe  ports.Line
	BankSelect   ports.Line
	WriteEnable  ports.Line
	OutputEnable ports.Line

	// size of the memory array in bytes
	Capacity int

	// the value of the address latch before the first strobe
	Sentinel uint8

	// log every committed write
	LogWrites bool
}

// DefaultConfig returns the wiring of the reference board.
func DefaultConfig() Config {
	return Config{
		AddressLow:   ports.B,
		LatchSource:  ports.B,
		Data:         ports.C,
		ReadBack:     ports.C,
		LatchStrobe:  ports.Line{Port: ports.D, Bit: 3},
		BankSelect:   ports.Line{Port: ports.A, Bit: 5},
		WriteEnable:  ports.Line{Port: ports.D, Bit: 6},
		OutputEnable: ports.Line{Port: ports.D, Bit: 2, ActiveLow: true},
		Capacity:     memory.MaxCapacity,
		Sentinel:     0xee,
	}
}

// Validate returns an error if any part of the configuration is unusable.
func (cfg Config) Validate() error {
	for _, id := range []ports.ID{cfg.AddressLow, cfg.LatchSource, cfg.Data, cfg.ReadBack} {
		if !id.Valid() {
			return curated.Errorf(InvalidConfig, curated.Errorf(ports.UnknownPort, id))
		}
	}

	for _, l := range []ports.Line{cfg.LatchStrobe, cfg.BankSelect, cfg.WriteEnable, cfg.OutputEnable} {
		if err := l.Valid(); err != nil {
			return curated.Errorf(InvalidConfig, err)
		}
	}

	if _, err := memory.NewArray(cfg.Capacity); err != nil {
		return curated.Errorf(InvalidConfig, err)
	}

	return nil
}

func (cfg Config) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("address low:   %s\n", cfg.AddressLow))
	s.WriteString(fmt.Sprintf("latch source:  %s\n", cfg.LatchSource))
	s.WriteString(fmt.Sprintf("data:          %s\n", cfg.Data))
	s.WriteString(fmt.Sprintf("read back:     %s\n", cfg.ReadBack))
	s.WriteString(fmt.Sprintf("latch strobe:  %s\n", cfg.LatchStrobe))
	s.WriteString(fmt.Sprintf("bank select:   %s\n", cfg.BankSelect))
	s.WriteString(fmt.Sprintf("write enable:  %s\n", cfg.WriteEnable))
	s.WriteString(fmt.Sprintf("output enable: %s\n", cfg.OutputEnable))
	s.WriteString(fmt.Sprintf("capacity:      %d bytes\n", cfg.Capacity))
	s.WriteString(fmt.Sprintf("sentinel:      %#02x\n", cfg.Sentinel))
	return s.String()
}
