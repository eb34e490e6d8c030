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

package injector

import (
	"github.com/jetsetilly/xrambus/curated"
	"github.com/jetsetilly/xrambus/hardware/ports"
	"github.com/jetsetilly/xrambus/logger"
)

// Source is the interactive input. Poll() must not block. It returns false
// if no byte is available.
type Source interface {
	Poll() (uint8, bool, error)
}

// Receiver is the receive line of the simulation's serial port.
type Receiver interface {
	InjectRx(b uint8)
}

// Injector moves bytes from a Source to a Receiver.
type Injector struct {
	cfg Config
	src Source
	rx  Receiver
	drv ports.Driver

	injected int
}

// NewInjector is the preferred method of initialisation for the Injector
// type. The Source can be nil, in which case Cycle() does nothing. The Driver
// is only required if there are hotkeys in the configuration.
func NewInjector(cfg Config, src Source, rx Receiver, drv ports.Driver) (*Injector, error) {
	if cfg.Interval <= 0 {
		return nil, curated.Errorf(InvalidInterval, cfg.Interval)
	}

	return &Injector{
		cfg: cfg,
		src: src,
		rx:  rx,
		drv: drv,
	}, nil
}

// Cycle should be called once per cycle with the cycle count. The first
// cycle is number one. The Source is only polled when the cycle count is a
// multiple of the interval.
func (inj *Injector) Cycle(cycle uint64) error {
	if cycle%uint64(inj.cfg.Interval) != 0 {
		return nil
	}

	if inj.src == nil {
		return nil
	}

	b, ok, err := inj.src.Poll()
	if err != nil {
		return curated.Errorf("injector: %v", err)
	}
	if !ok {
		return nil
	}

	for _, hk := range inj.cfg.Hotkeys {
		if hk.Key == b && inj.drv != nil {
			inj.drv.SetExternal(hk.Port, hk.Value, ports.Driven)
			logger.Logf(logger.Allow, "injector", "hotkey %s", hk)
		}
	}

	inj.rx.InjectRx(b)
	inj.injected++

	return nil
}

// Injected returns the number of bytes forwarded to the Receiver.
func (inj *Injector) Injected() int {
	return inj.injected
}
