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

package xram_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/xrambus/curated"
	"github.com/jetsetilly/xrambus/hardware/ports"
	"github.com/jetsetilly/xrambus/hardware/xram"
	"github.com/jetsetilly/xrambus/logger"
	"github.com/jetsetilly/xrambus/test"
)

// bits of the control lines in the default wiring
const (
	strobe   = 0x08 // D3
	we       = 0x40 // D6
	oeHigh   = 0x04 // D2. output enable is active low so this disables output
	bankHigh = 0x20 // A5
)

type mockDriver struct {
	drives []ports.Drive
}

func (m *mockDriver) SetExternal(id ports.ID, value uint8, mask uint8) {
	m.drives = append(m.drives, ports.Drive{Port: id, Value: value, Mask: mask})
}

func newController(t *testing.T, drv ports.Driver) *xram.Controller {
	t.Helper()
	ctl, err := xram.NewController(xram.DefaultConfig(), drv)
	test.DemandSuccess(t, err)
	return ctl
}

func snapshot(a, b, c, d uint8) ports.Snapshot {
	return ports.Snapshot{a, b, c, d}
}

func TestPowerOn(t *testing.T) {
	ctl := newController(t, nil)
	test.ExpectEquality(t, ctl.AddressHigh(), uint8(0xee))
	test.ExpectEquality(t, ctl.Bank(), uint8(0))
	test.ExpectFailure(t, ctl.WriteEverAsserted())
	test.ExpectEquality(t, ctl.Commits(), 0)
	test.ExpectEquality(t, ctl.Memory().Len(), 131072)
}

func TestSignals(t *testing.T) {
	ctl := newController(t, nil)

	s := snapshot(0, 0, 0, 0)
	test.ExpectFailure(t, ctl.LatchStrobe(s))
	test.ExpectFailure(t, ctl.BankSelect(s))
	test.ExpectFailure(t, ctl.WriteEnable(s))
	test.ExpectSuccess(t, ctl.OutputEnable(s))

	s = snapshot(bankHigh, 0, 0, strobe|we|oeHigh)
	test.ExpectSuccess(t, ctl.LatchStrobe(s))
	test.ExpectSuccess(t, ctl.BankSelect(s))
	test.ExpectSuccess(t, ctl.WriteEnable(s))
	test.ExpectFailure(t, ctl.OutputEnable(s))

	// unrelated bits do not assert anything
	s = snapshot(^uint8(bankHigh), 0xff, 0xff, ^uint8(strobe|we))
	test.ExpectFailure(t, ctl.LatchStrobe(s))
	test.ExpectFailure(t, ctl.BankSelect(s))
	test.ExpectFailure(t, ctl.WriteEnable(s))
	test.ExpectFailure(t, ctl.OutputEnable(s))
}

func TestLatchCapture(t *testing.T) {
	ctl := newController(t, nil)

	for v := 0; v <= 0xff; v++ {
		ctl.Step(snapshot(0, uint8(v), 0, strobe|oeHigh))
		test.ExpectEquality(t, ctl.AddressHigh(), uint8(v))
	}

	// transparent latch. holding the strobe keeps re-capturing
	ctl.Step(snapshot(0, 0x10, 0, strobe|oeHigh))
	ctl.Step(snapshot(0, 0x20, 0, strobe|oeHigh))
	test.ExpectEquality(t, ctl.AddressHigh(), uint8(0x20))
}

func TestLatchNoDrift(t *testing.T) {
	ctl := newController(t, nil)

	// no strobe at all leaves the sentinel value
	ctl.Step(snapshot(0, 0x55, 0, oeHigh))
	test.ExpectEquality(t, ctl.AddressHigh(), uint8(0xee))

	ctl.Step(snapshot(0, 0x10, 0, strobe|oeHigh))
	test.ExpectEquality(t, ctl.AddressHigh(), uint8(0x10))

	for v := 0; v <= 0xff; v++ {
		ctl.Step(snapshot(uint8(v), uint8(v), uint8(v), oeHigh))
		test.ExpectEquality(t, ctl.AddressHigh(), uint8(0x10))
	}
}

func TestBankNotLatched(t *testing.T) {
	ctl := newController(t, nil)

	ctl.Step(snapshot(0, 0x10, 0, strobe|oeHigh))

	for _, a := range []uint8{bankHigh, 0, 0, bankHigh, bankHigh, 0xff, 0x00} {
		ctl.Step(snapshot(a, 0x05, 0, oeHigh))
		expected := uint8(0)
		if a&bankHigh == bankHigh {
			expected = 1
		}
		test.ExpectEquality(t, ctl.Bank(), expected)
		test.ExpectEquality(t, ctl.LastAddress(), uint32(expected)<<16|0x1005)
	}
}

// the write enable flag is sticky. every cycle with write enable deasserted
// after the first assertion commits a write, not only the first edge
func TestStickyWrite(t *testing.T) {
	ctl := newController(t, nil)
	mem := ctl.Memory()

	// write enable never asserted so no write happens
	ctl.Step(snapshot(0, 0x10, 0x99, strobe|oeHigh))
	ctl.Step(snapshot(0, 0x05, 0x99, oeHigh))
	test.ExpectEquality(t, ctl.Commits(), 0)
	test.ExpectEquality(t, mem.Read(0x01005), uint8(0x00))

	// asserting write enable does not write
	ctl.Step(snapshot(0, 0x05, 0x7f, we|oeHigh))
	test.ExpectEquality(t, ctl.Commits(), 0)
	test.ExpectSuccess(t, ctl.WriteEverAsserted())

	// deasserting commits
	ctl.Step(snapshot(0, 0x05, 0x7f, oeHigh))
	test.ExpectEquality(t, ctl.Commits(), 1)
	test.ExpectEquality(t, mem.Read(0x01005), uint8(0x7f))

	// second deasserted cycle without reasserting also commits
	ctl.Step(snapshot(0, 0x06, 0x11, oeHigh))
	test.ExpectEquality(t, ctl.Commits(), 2)
	test.ExpectEquality(t, mem.Read(0x01006), uint8(0x11))

	// asserted again. no write but the flag stays set
	ctl.Step(snapshot(0, 0x07, 0x22, we|oeHigh))
	test.ExpectEquality(t, ctl.Commits(), 2)
	test.ExpectEquality(t, mem.Read(0x01007), uint8(0x00))
	test.ExpectSuccess(t, ctl.WriteEverAsserted())
}

func TestScenario(t *testing.T) {
	ctl := newController(t, nil)

	// latch high address
	ctl.Step(snapshot(0, 0x10, 0, strobe|oeHigh))

	// write enable asserted then deasserted
	ctl.Step(snapshot(0, 0x05, 0x7f, we|oeHigh))
	ctl.Step(snapshot(0, 0x05, 0x7f, oeHigh))

	v, err := ctl.Memory().Peek(0x01005)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x7f))
}

func TestOutputMask(t *testing.T) {
	ctl := newController(t, nil)

	for _, a := range []uint8{0, bankHigh} {
		for _, b := range []uint8{0x00, 0x05, 0xff} {
			for _, d := range []uint8{0x00, strobe, we} {
				drv := ctl.Step(snapshot(a, b, 0, d))
				test.ExpectEquality(t, drv.Mask, ports.Driven)
				test.ExpectEquality(t, drv.Port, ports.C)

				drv = ctl.Step(snapshot(a, b, 0, d|oeHigh))
				test.ExpectEquality(t, drv.Mask, ports.Tristate)
				test.ExpectEquality(t, drv.Port, ports.C)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	ctl := newController(t, nil)

	ctl.Step(snapshot(bankHigh, 0x34, 0, strobe|oeHigh))
	ctl.Step(snapshot(bankHigh, 0x56, 0xa5, we|oeHigh))
	ctl.Step(snapshot(bankHigh, 0x56, 0xa5, oeHigh))
	test.ExpectEquality(t, ctl.Memory().Read(0x13456), uint8(0xa5))

	// read back with output enable asserted at the same address. the data
	// port still holds the written value
	drv := ctl.Step(snapshot(bankHigh, 0x56, 0xa5, 0))
	test.ExpectEquality(t, drv, ports.Drive{Port: ports.C, Value: 0xa5, Mask: ports.Driven})

	// the other bank at the same high/low address was never written
	drv = ctl.Step(snapshot(0, 0x56, 0x00, we))
	test.ExpectEquality(t, drv, ports.Drive{Port: ports.C, Value: 0x00, Mask: ports.Driven})
}

func TestReadBeforeWrite(t *testing.T) {
	ctl := newController(t, nil)

	test.ExpectSuccess(t, ctl.Memory().Poke(0x01005, 0x42))
	ctl.Step(snapshot(0, 0x10, 0, strobe|oeHigh))

	drv := ctl.Step(snapshot(0, 0x05, 0xff, 0))
	test.ExpectEquality(t, drv.Value, uint8(0x42))
	test.ExpectEquality(t, drv.Mask, ports.Driven)
	test.ExpectEquality(t, ctl.Commits(), 0)
}

// the write is committed before the output is arbitrated so in the sticky
// regime a read cycle returns the data port value of the same cycle
func TestStickyWriteDuringRead(t *testing.T) {
	ctl := newController(t, nil)

	ctl.Step(snapshot(0, 0x10, 0, strobe|oeHigh))
	ctl.Step(snapshot(0, 0x05, 0x7f, we|oeHigh))
	ctl.Step(snapshot(0, 0x05, 0x7f, oeHigh))

	drv := ctl.Step(snapshot(0, 0x05, 0x33, 0))
	test.ExpectEquality(t, drv.Value, uint8(0x33))
	test.ExpectEquality(t, ctl.Memory().Read(0x01005), uint8(0x33))
}

func TestDriverApplied(t *testing.T) {
	m := &mockDriver{}
	ctl := newController(t, m)

	ctl.Step(snapshot(0, 0, 0, oeHigh))
	ctl.Step(snapshot(0, 0, 0, 0))
	test.DemandEquality(t, len(m.drives), 2)
	test.ExpectEquality(t, m.drives[0], ports.Drive{Port: ports.C, Mask: ports.Tristate})
	test.ExpectEquality(t, m.drives[1], ports.Drive{Port: ports.C, Mask: ports.Driven})
}

func TestSeparateRoles(t *testing.T) {
	cfg := xram.DefaultConfig()
	cfg.LatchSource = ports.A
	cfg.AddressLow = ports.B
	cfg.Data = ports.C
	cfg.ReadBack = ports.D
	cfg.LatchStrobe = ports.Line{Port: ports.D, Bit: 0}
	cfg.BankSelect = ports.Line{Port: ports.D, Bit: 1}
	cfg.WriteEnable = ports.Line{Port: ports.D, Bit: 2, ActiveLow: true}
	cfg.OutputEnable = ports.Line{Port: ports.D, Bit: 3, ActiveLow: true}

	ctl, err := xram.NewController(cfg, nil)
	test.DemandSuccess(t, err)

	// latch from port A. write enable is active low so the pin must be held
	// high when it should be deasserted
	ctl.Step(snapshot(0x12, 0x34, 0, 0x01|0x04|0x08))
	test.ExpectEquality(t, ctl.AddressHigh(), uint8(0x12))
	test.ExpectFailure(t, ctl.WriteEverAsserted())

	ctl.Step(snapshot(0x99, 0x34, 0x56, 0x02|0x08))
	ctl.Step(snapshot(0x99, 0x34, 0x56, 0x02|0x04|0x08))
	test.ExpectEquality(t, ctl.Memory().Read(0x11234), uint8(0x56))

	drv := ctl.Step(snapshot(0x99, 0x34, 0x56, 0x02|0x04))
	test.ExpectEquality(t, drv, ports.Drive{Port: ports.D, Value: 0x56, Mask: ports.Driven})
}

func TestSmallCapacity(t *testing.T) {
	cfg := xram.DefaultConfig()
	cfg.Capacity = 0x1000

	ctl, err := xram.NewController(cfg, nil)
	test.DemandSuccess(t, err)

	ctl.Step(snapshot(0, 0x10, 0, strobe|oeHigh))
	ctl.Step(snapshot(bankHigh, 0x05, 0x7f, we|oeHigh))
	ctl.Step(snapshot(bankHigh, 0x05, 0x7f, oeHigh))

	// upper address lines are not connected
	test.ExpectEquality(t, ctl.LastAddress(), uint32(0x11005))
	test.ExpectEquality(t, ctl.Memory().Read(0x005), uint8(0x7f))
}

func TestInvalidConfig(t *testing.T) {
	cfg := xram.DefaultConfig()
	cfg.Capacity = 1000
	_, err := xram.NewController(cfg, nil)
	test.ExpectSuccess(t, curated.Is(err, xram.InvalidConfig))

	cfg = xram.DefaultConfig()
	cfg.WriteEnable.Bit = 8
	_, err = xram.NewController(cfg, nil)
	test.ExpectSuccess(t, curated.Is(err, xram.InvalidConfig))
	test.ExpectSuccess(t, curated.Has(err, ports.InvalidLine))

	cfg = xram.DefaultConfig()
	cfg.Data = ports.ID(9)
	_, err = xram.NewController(cfg, nil)
	test.ExpectSuccess(t, curated.Has(err, ports.UnknownPort))
}

func TestReset(t *testing.T) {
	ctl := newController(t, nil)

	ctl.Step(snapshot(0, 0x10, 0, strobe|oeHigh))
	ctl.Step(snapshot(0, 0x05, 0x7f, we|oeHigh))
	ctl.Step(snapshot(0, 0x05, 0x7f, oeHigh))
	ctl.Reset()

	test.ExpectEquality(t, ctl.AddressHigh(), uint8(0xee))
	test.ExpectFailure(t, ctl.WriteEverAsserted())
	test.ExpectEquality(t, ctl.Commits(), 0)
	test.ExpectEquality(t, ctl.Memory().Read(0x01005), uint8(0x00))
}

func TestWriteLogging(t *testing.T) {
	cfg := xram.DefaultConfig()
	cfg.LogWrites = true

	ctl, err := xram.NewController(cfg, nil)
	test.DemandSuccess(t, err)

	logger.Clear()
	ctl.Step(snapshot(0, 0x10, 0, strobe|oeHigh))
	ctl.Step(snapshot(0, 0x05, 0x7f, we|oeHigh))
	ctl.Step(snapshot(0, 0x05, 0x7f, oeHigh))

	w := &test.CompareWriter{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "xram: write at 0 10 5 (7f)\n")

	// writes are not logged without the preference
	logger.Clear()
	ctl = newController(t, nil)
	ctl.Step(snapshot(0, 0x05, 0x7f, we|oeHigh))
	ctl.Step(snapshot(0, 0x05, 0x7f, oeHigh))
	test.ExpectEquality(t, ctl.Commits(), 1)

	w.Clear()
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestConfigString(t *testing.T) {
	s := xram.DefaultConfig().String()
	test.ExpectSuccess(t, strings.Contains(s, "latch strobe:  D3\n"))
	test.ExpectSuccess(t, strings.Contains(s, "output enable: !D2\n"))
	test.ExpectSuccess(t, strings.Contains(s, "sentinel:      0xee\n"))
}

func TestVisualise(t *testing.T) {
	ctl := newController(t, nil)
	ctl.Step(snapshot(0, 0x10, 0, strobe|oeHigh))

	r := ctl.Registers()
	test.ExpectEquality(t, r.AddressHigh, uint8(0x10))
	test.ExpectEquality(t, r.Config, ctl.Config())

	w := &test.CompareWriter{}
	ctl.Visualise(w)
	test.ExpectInequality(t, w.String(), "")
}
