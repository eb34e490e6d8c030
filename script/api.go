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
	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/xrambus/hardware/ports"
	"github.com/jetsetilly/xrambus/logger"
)

func (e *Engine) registerAPI() {
	port := e.L.NewTable()
	e.L.SetField(port, "set", e.L.NewFunction(e.portSet))
	e.L.SetField(port, "get", e.L.NewFunction(e.portGet))
	e.L.SetField(port, "external", e.L.NewFunction(e.portExternal))
	e.L.SetGlobal("port", port)

	uart := e.L.NewTable()
	e.L.SetField(uart, "tx", e.L.NewFunction(e.uartTx))
	e.L.SetField(uart, "rx", e.L.NewFunction(e.uartRx))
	e.L.SetField(uart, "available", e.L.NewFunction(e.uartAvailable))
	e.L.SetGlobal("uart", uart)
}

func checkPort(L *lua.LState, n int) ports.ID {
	id, err := ports.ParseID(L.CheckString(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return id
}

func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func (e *Engine) portSet(L *lua.LState) int {
	id := checkPort(L, 1)
	e.pins[id] = checkByte(L, 2)
	return 0
}

func (e *Engine) portGet(L *lua.LState) int {
	id := checkPort(L, 1)
	L.Push(lua.LNumber(e.pinState(id)))
	return 1
}

func (e *Engine) portExternal(L *lua.LState) int {
	id := checkPort(L, 1)
	L.Push(lua.LNumber(e.ext[id].value))
	L.Push(lua.LNumber(e.ext[id].mask))
	return 2
}

func (e *Engine) uartTx(L *lua.LState) int {
	var b []byte

	switch v := L.CheckAny(1).(type) {
	case lua.LNumber:
		b = []byte{checkByte(L, 1)}
	case lua.LString:
		b = []byte(string(v))
	default:
		L.ArgError(1, "number or string expected")
	}

	if e.tx == nil {
		logger.Logf(logger.Allow, "uart", "%q", b)
		return 0
	}

	if _, err := e.tx.Write(b); err != nil {
		L.RaiseError("uart: %v", err)
	}

	return 0
}

func (e *Engine) uartRx(L *lua.LState) int {
	if len(e.rx) == 0 {
		L.Push(lua.LNil)
		return 1
	}
	b := e.rx[0]
	e.rx = e.rx[1:]
	L.Push(lua.LNumber(b))
	return 1
}

func (e *Engine) uartAvailable(L *lua.LState) int {
	L.Push(lua.LNumber(len(e.rx)))
	return 1
}
