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

package script

import (
	"io"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/xrambus/curated"
	"github.com/jetsetilly/xrambus/hardware/engine"
	"github.com/jetsetilly/xrambus/hardware/ports"
)

// Sentinal errors.
const (
	ScriptError = "script: %v"
	NoStep      = "script: no step() function"
	BadStatus   = "script: step() returned unrecognised status (%s)"
)

type external struct {
	value uint8
	mask  uint8
}

// Engine is an implementation of engine.Engine driven by a Lua script.
type Engine struct {
	L *lua.LState

	step lua.LValue

	// values output by the script on each port
	pins ports.Snapshot

	// values driven onto each port from outside
	ext [ports.NumPorts]external

	// bytes injected into the receive line and not yet read by the script
	rx []uint8

	// bytes transmitted by the script are written here
	tx io.Writer

	cycle uint64
}

// NewEngine is the preferred method of initialisation for the Engine type.
// Bytes transmitted by the script are written to tx, which can be nil.
func NewEngine(tx io.Writer) *Engine {
	e := &Engine{
		L:  lua.NewState(),
		rx: make([]uint8, 0, 16),
		tx: tx,
	}
	e.registerAPI()
	return e
}

// SetTxHook changes where bytes transmitted by the script are written. A nil
// writer sends transmitted bytes to the log.
func (e *Engine) SetTxHook(tx io.Writer) {
	e.tx = tx
}

// Close the Lua state. The engine should not be used after calling Close().
func (e *Engine) Close() {
	e.L.Close()
}

// LoadFile loads and runs the script in the named file.
func (e *Engine) LoadFile(filename string) error {
	if err := e.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return e.findStep()
}

// LoadString loads and runs the script in the string.
func (e *Engine) LoadString(source string) error {
	if err := e.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return e.findStep()
}

func (e *Engine) findStep() error {
	e.step = e.L.GetGlobal("step")
	if e.step.Type() != lua.LTFunction {
		return curated.Errorf(NoStep)
	}
	return nil
}

// Step implements the engine.Engine interface.
func (e *Engine) Step() (engine.Status, error) {
	if e.step == nil {
		return engine.Crashed, curated.Errorf(NoStep)
	}

	e.cycle++

	err := e.L.CallByParam(lua.P{
		Fn:      e.step,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(e.cycle))
	if err != nil {
		return engine.Crashed, curated.Errorf(ScriptError, err)
	}

	ret := e.L.Get(-1)
	e.L.Pop(1)

	switch ret.Type() {
	case lua.LTNil:
		return engine.Running, nil
	case lua.LTBool:
		if lua.LVAsBool(ret) {
			return engine.Running, nil
		}
		return engine.Done, nil
	case lua.LTString:
		switch lua.LVAsString(ret) {
		case "running":
			return engine.Running, nil
		case "done":
			return engine.Done, nil
		case "crash":
			return engine.Crashed, nil
		}
	}

	return engine.Crashed, curated.Errorf(BadStatus, ret.String())
}

// PortState implements the ports.Reader interface. It returns the value the
// script has written to the port's output register. Values driven from
// outside are not included.
func (e *Engine) PortState(id ports.ID) uint8 {
	return e.pins[id]
}

// pinState is the value seen on the port's pins. Bits driven from outside take
// priority over the output register.
func (e *Engine) pinState(id ports.ID) uint8 {
	x := e.ext[id]
	return (e.pins[id] &^ x.mask) | (x.value & x.mask)
}

// SetExternal implements the ports.Driver interface.
func (e *Engine) SetExternal(id ports.ID, value uint8, mask uint8) {
	e.ext[id] = external{value: value, mask: mask}
}

// InjectRx implements the injector.Receiver interface.
func (e *Engine) InjectRx(b uint8) {
	e.rx = append(e.rx, b)
}
