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

package hardware

import (
	"github.com/jetsetilly/xrambus/curated"
	"github.com/jetsetilly/xrambus/hardware/engine"
	"github.com/jetsetilly/xrambus/hardware/injector"
	"github.com/jetsetilly/xrambus/hardware/ports"
	"github.com/jetsetilly/xrambus/hardware/xram"
	"github.com/jetsetilly/xrambus/logger"
)

// EngineCrashed is returned by Step() and Run() when the engine reports that
// it has crashed.
const EngineCrashed = "hardware: engine crashed on cycle %d"

// Probe is implemented by types that want to see the result of every cycle.
type Probe interface {
	Record(s ports.Snapshot, d ports.Drive) error
}

// System is the simulation engine with the external memory device attached.
type System struct {
	Engine   engine.Engine
	Sampler  *ports.Sampler
	XRAM     *xram.Controller
	Injector *injector.Injector

	probe Probe

	// the number of cycles completed. the first cycle is number one
	cycle uint64

	// the most recent status returned by the engine
	status engine.Status
}

// NewSystem is the preferred method of initialisation for the System type.
// The source is the input for the injector and can be nil.
func NewSystem(eng engine.Engine, xcfg xram.Config, icfg injector.Config, src injector.Source) (*System, error) {
	ctl, err := xram.NewController(xcfg, eng)
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	inj, err := injector.NewInjector(icfg, src, eng, eng)
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	sys := &System{
		Engine:   eng,
		Sampler:  ports.NewSampler(eng),
		XRAM:     ctl,
		Injector: inj,
		status:   engine.Running,
	}

	return sys, nil
}

// AttachProbe adds a probe to the system. A nil value removes the probe.
func (sys *System) AttachProbe(p Probe) {
	sys.probe = p
}

// Cycle returns the number of cycles completed.
func (sys *System) Cycle() uint64 {
	return sys.cycle
}

// Status returns the status of the engine from the most recent call to
// Step().
func (sys *System) Status() engine.Status {
	return sys.status
}

// Step runs the engine for one instruction and then updates the bus
// controller and the injector. Returns false if the engine is no longer
// running.
func (sys *System) Step() (bool, error) {
	if sys.status != engine.Running {
		return false, nil
	}

	var err error

	sys.status, err = sys.Engine.Step()
	if err != nil {
		return false, curated.Errorf("hardware: %v", err)
	}

	switch sys.status {
	case engine.Done:
		logger.Logf(logger.Allow, "hardware", "engine done after %d cycles", sys.cycle)
		return false, nil
	case engine.Crashed:
		logger.Logf(logger.Allow, "hardware", "engine crashed after %d cycles", sys.cycle)
		return false, curated.Errorf(EngineCrashed, sys.cycle+1)
	}

	sys.cycle++

	s := sys.Sampler.Sample()
	d := sys.XRAM.Step(s)

	if sys.probe != nil {
		err = sys.probe.Record(s, d)
		if err != nil {
			return false, curated.Errorf("hardware: %v", err)
		}
	}

	err = sys.Injector.Cycle(sys.cycle)
	if err != nil {
		return false, curated.Errorf("hardware: %v", err)
	}

	return true, nil
}
