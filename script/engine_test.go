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

package script_test

import (
	"io"
	"testing"

	"github.com/jetsetilly/xrambus/curated"
	"github.com/jetsetilly/xrambus/hardware"
	"github.com/jetsetilly/xrambus/hardware/engine"
	"github.com/jetsetilly/xrambus/hardware/injector"
	"github.com/jetsetilly/xrambus/hardware/ports"
	"github.com/jetsetilly/xrambus/hardware/xram"
	"github.com/jetsetilly/xrambus/script"
	"github.com/jetsetilly/xrambus/test"
)

func newEngine(t *testing.T, source string) (*script.Engine, *test.CompareWriter) {
	t.Helper()
	tx := &test.CompareWriter{}
	e := script.NewEngine(tx)
	t.Cleanup(e.Close)
	test.DemandSuccess(t, e.LoadString(source))
	return e, tx
}

func TestNoStep(t *testing.T) {
	e := script.NewEngine(nil)
	defer e.Close()

	err := e.LoadString("x = 1")
	test.ExpectSuccess(t, curated.Is(err, script.NoStep))

	status, err := script.NewEngine(nil).Step()
	test.ExpectEquality(t, status, engine.Crashed)
	test.ExpectSuccess(t, curated.Is(err, script.NoStep))
}

func TestSyntaxError(t *testing.T) {
	e := script.NewEngine(nil)
	defer e.Close()

	err := e.LoadString("function step(")
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = e.LoadFile("testdata/missing.lua")
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

func TestStatus(t *testing.T) {
	e, _ := newEngine(t, `
		function step(cycle)
			if cycle == 1 then return nil end
			if cycle == 2 then return true end
			if cycle == 3 then return "running" end
			if cycle == 4 then return false end
			if cycle == 5 then return "done" end
			if cycle == 6 then return "crash" end
			if cycle == 7 then return "foo" end
			error("boom")
		end
	`)

	expected := []engine.Status{
		engine.Running, engine.Running, engine.Running,
		engine.Done, engine.Done, engine.Crashed,
	}
	for i, s := range expected {
		status, err := e.Step()
		test.ExpectSuccess(t, err, i)
		test.ExpectEquality(t, status, s, i)
	}

	status, err := e.Step()
	test.ExpectEquality(t, status, engine.Crashed)
	test.ExpectSuccess(t, curated.Is(err, script.BadStatus))

	status, err = e.Step()
	test.ExpectEquality(t, status, engine.Crashed)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

func TestPorts(t *testing.T) {
	e, tx := newEngine(t, `
		function step(cycle)
			if cycle == 1 then
				port.set("C", 0xf0)
			elseif cycle == 2 then
				local v, m = port.external("c")
				uart.tx(v)
				uart.tx(m)
				uart.tx(port.get("C"))
			elseif cycle == 3 then
				port.set("E", 0)
			end
		end
	`)

	_, err := e.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, e.PortState(ports.C), uint8(0xf0))

	// external drive does not change the output register
	e.SetExternal(ports.C, 0x0f, 0x0f)
	test.ExpectEquality(t, e.PortState(ports.C), uint8(0xf0))
	e.SetExternal(ports.C, 0x0f, 0xff)
	test.ExpectEquality(t, e.PortState(ports.C), uint8(0xf0))

	_, err = e.Step()
	test.ExpectSuccess(t, err)
	// but does take priority for the masked bits on the pins
	test.ExpectEquality(t, tx.String(), "\x0f\xff\x0f")

	e.SetExternal(ports.C, 0x00, ports.Tristate)
	test.ExpectEquality(t, e.PortState(ports.C), uint8(0xf0))

	// unknown port is a script error
	status, err := e.Step()
	test.ExpectEquality(t, status, engine.Crashed)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

func TestUART(t *testing.T) {
	e, tx := newEngine(t, `
		function step(cycle)
			uart.tx(string.format("%d:", uart.available()))
			local b = uart.rx()
			while b ~= nil do
				uart.tx(b)
				b = uart.rx()
			end
			uart.tx("\n")
		end
	`)

	_, err := e.Step()
	test.ExpectSuccess(t, err)

	e.InjectRx('a')
	e.InjectRx('b')
	_, err = e.Step()
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, tx.String(), "0:\n2:ab\n")
}

func transmit(t *testing.T, tx io.Writer, steps int) {
	t.Helper()

	e := script.NewEngine(tx)
	defer e.Close()
	test.DemandSuccess(t, e.LoadString(`
		function step(cycle)
			uart.tx(string.format("%d", cycle % 10))
		end
	`))

	for range steps {
		_, err := e.Step()
		test.DemandSuccess(t, err)
	}
}

func TestLongTransmit(t *testing.T) {
	// start of transmission. a full writer accepts nothing more but does not
	// return an error
	capped, err := test.NewCappedWriter(5)
	test.DemandSuccess(t, err)
	transmit(t, capped, 12)
	test.ExpectEquality(t, capped.String(), "12345")

	// end of transmission
	ring, err := test.NewRingWriter(5)
	test.DemandSuccess(t, err)
	transmit(t, ring, 12)
	test.ExpectEquality(t, ring.String(), "89012")
}

func TestTxHook(t *testing.T) {
	e, tx := newEngine(t, `
		function step(cycle)
			uart.tx(0x40 + cycle)
		end
	`)

	_, err := e.Step()
	test.DemandSuccess(t, err)

	// transmission is redirected after the hook changes
	hook := &test.CompareWriter{}
	e.SetTxHook(hook)
	_, err = e.Step()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, tx.String(), "A")
	test.ExpectEquality(t, hook.String(), "B")
}

func TestByteRange(t *testing.T) {
	e, _ := newEngine(t, `
		function step(cycle)
			port.set("A", 256)
		end
	`)

	status, err := e.Step()
	test.ExpectEquality(t, status, engine.Crashed)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

type byteSource struct {
	buffer []uint8
}

func (m *byteSource) Poll() (uint8, bool, error) {
	if len(m.buffer) == 0 {
		return 0, false, nil
	}
	b := m.buffer[0]
	m.buffer = m.buffer[1:]
	return b, true, nil
}

func TestFirmware(t *testing.T) {
	tx := &test.CompareWriter{}
	e := script.NewEngine(tx)
	defer e.Close()
	test.DemandSuccess(t, e.LoadFile("testdata/roundtrip.lua"))

	src := &byteSource{buffer: []uint8{'x'}}
	sys, err := hardware.NewSystem(e, xram.DefaultConfig(), injector.DefaultConfig(), src)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, sys.Run(nil))
	test.ExpectEquality(t, sys.Status(), engine.Done)
	test.ExpectEquality(t, sys.Cycle(), uint64(599))

	v, err := sys.XRAM.Memory().Peek(0x01005)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x7f))

	// value read back followed by the echo of the injected byte
	test.ExpectEquality(t, tx.String(), "\x7fx")
}

// bus program shared by the firmware in the following tests. each entry is
// the value of ports B, C and D for one cycle, starting at the cycle named
const busProgram = `
	local STROBE = 0x08
	local WE = 0x40
	local OE_OFF = 0x04

	function run(cycle, start, program)
		local p = program[cycle - start + 1]
		if p == nil then
			return false
		end
		port.set("A", 0)
		port.set("B", p[1])
		port.set("C", p[2])
		port.set("D", p[3])
		return true
	end
`

func runFirmware(t *testing.T, source string, src injector.Source) (*hardware.System, *script.Engine) {
	t.Helper()

	e := script.NewEngine(nil)
	t.Cleanup(e.Close)
	test.DemandSuccess(t, e.LoadString(busProgram+source))

	sys, err := hardware.NewSystem(e, xram.DefaultConfig(), injector.DefaultConfig(), src)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, sys.Run(nil))
	test.DemandEquality(t, sys.Status(), engine.Done)

	return sys, e
}

func TestHotkeyLeavesBusUsable(t *testing.T) {
	firmware := `
		function step(cycle)
			if cycle >= 300 then
				if not run(cycle, 300, {
					{0x20, 0x00, STROBE + OE_OFF},
					{0x05, 0x55, WE + OE_OFF},
					{0x05, 0x55, OE_OFF},
				}) then
					return "done"
				end
			end
		end
	`

	for _, key := range []uint8{'z', 'y'} {
		// the key arrives on the first poll at cycle 256
		sys, e := runFirmware(t, firmware, &byteSource{buffer: []uint8{key}})

		v, err := sys.XRAM.Memory().Peek(0x02005)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint8(0x55))
		test.ExpectEquality(t, sys.XRAM.AddressHigh(), uint8(0x20))
		test.ExpectEquality(t, e.PortState(ports.D), uint8(0x04))
	}
}

func TestHotkeyDrivesPins(t *testing.T) {
	tx := &test.CompareWriter{}
	e := script.NewEngine(tx)
	defer e.Close()
	test.DemandSuccess(t, e.LoadString(`
		function step(cycle)
			if cycle == 257 then
				uart.tx(port.get("D"))
				uart.tx(uart.rx())
				return "done"
			end
			port.set("D", 0x04)
		end
	`))

	sys, err := hardware.NewSystem(e, xram.DefaultConfig(), injector.DefaultConfig(), &byteSource{buffer: []uint8{'y'}})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, sys.Run(nil))

	// the firmware sees the hotkey value on its pins and still receives the key
	test.ExpectEquality(t, tx.String(), "\xdey")
	test.ExpectEquality(t, e.PortState(ports.D), uint8(0x04))
}

func TestReadThenMoveAddress(t *testing.T) {
	sys, _ := runFirmware(t, `
		function step(cycle)
			if not run(cycle, 1, {
				{0x10, 0x00, STROBE + OE_OFF},
				{0x05, 0x7f, WE + OE_OFF},
				{0x05, 0x7f, OE_OFF},
				{0x05, 0x7f, 0x00},
				{0x06, 0x33, OE_OFF},
			}) then
				return "done"
			end
		end
	`, nil)

	v, err := sys.XRAM.Memory().Peek(0x01005)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x7f))

	// the sticky write after the read stores the firmware's data port and not
	// the value driven back during the read
	v, err = sys.XRAM.Memory().Peek(0x01006)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x33))
}
