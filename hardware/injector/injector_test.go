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

package injector_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/xrambus/curated"
	"github.com/jetsetilly/xrambus/hardware/injector"
	"github.com/jetsetilly/xrambus/hardware/ports"
	"github.com/jetsetilly/xrambus/test"
)

type mockSource struct {
	buffer []uint8
	polls  int
	err    error
}

func (m *mockSource) Poll() (uint8, bool, error) {
	m.polls++
	if m.err != nil {
		return 0, false, m.err
	}
	if len(m.buffer) == 0 {
		return 0, false, nil
	}
	b := m.buffer[0]
	m.buffer = m.buffer[1:]
	return b, true, nil
}

type mockReceiver struct {
	received []uint8
}

func (m *mockReceiver) InjectRx(b uint8) {
	m.received = append(m.received, b)
}

type mockDriver struct {
	drives []ports.Drive
}

func (m *mockDriver) SetExternal(id ports.ID, value uint8, mask uint8) {
	m.drives = append(m.drives, ports.Drive{Port: id, Value: value, Mask: mask})
}

func TestInjectorDecimation(t *testing.T) {
	src := &mockSource{buffer: []uint8{'x'}}
	rx := &mockReceiver{}

	inj, err := injector.NewInjector(injector.Config{Interval: 256}, src, rx, nil)
	test.DemandSuccess(t, err)

	for c := uint64(1); c <= 255; c++ {
		test.ExpectSuccess(t, inj.Cycle(c))
	}
	test.ExpectEquality(t, src.polls, 0)
	test.ExpectEquality(t, len(rx.received), 0)

	test.ExpectSuccess(t, inj.Cycle(256))
	test.ExpectEquality(t, src.polls, 1)
	test.DemandEquality(t, len(rx.received), 1)
	test.ExpectEquality(t, rx.received[0], uint8('x'))

	// no further events before the next check point
	for c := uint64(257); c <= 511; c++ {
		test.ExpectSuccess(t, inj.Cycle(c))
	}
	test.ExpectEquality(t, src.polls, 1)
	test.ExpectEquality(t, len(rx.received), 1)

	// next check point with no input available
	test.ExpectSuccess(t, inj.Cycle(512))
	test.ExpectEquality(t, src.polls, 2)
	test.ExpectEquality(t, len(rx.received), 1)
	test.ExpectEquality(t, inj.Injected(), 1)
}

func TestInjectorOneBytePerCheck(t *testing.T) {
	src := &mockSource{buffer: []uint8("abc")}
	rx := &mockReceiver{}

	inj, err := injector.NewInjector(injector.Config{Interval: 4}, src, rx, nil)
	test.DemandSuccess(t, err)

	for c := uint64(1); c <= 8; c++ {
		test.ExpectSuccess(t, inj.Cycle(c))
	}
	test.ExpectEquality(t, string(rx.received), "ab")
	test.ExpectEquality(t, len(src.buffer), 1)
}

func TestInjectorHotkey(t *testing.T) {
	src := &mockSource{buffer: []uint8("zy")}
	rx := &mockReceiver{}
	drv := &mockDriver{}

	inj, err := injector.NewInjector(injector.DefaultConfig(), src, rx, drv)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, inj.Cycle(256))
	test.ExpectEquality(t, len(drv.drives), 0)

	// the hotkey drives the port and is still forwarded
	test.ExpectSuccess(t, inj.Cycle(512))
	test.DemandEquality(t, len(drv.drives), 1)
	test.ExpectEquality(t, drv.drives[0], ports.Drive{Port: ports.D, Value: 222, Mask: ports.Driven})
	test.ExpectEquality(t, string(rx.received), "zy")
}

func TestInjectorNoSource(t *testing.T) {
	rx := &mockReceiver{}
	inj, err := injector.NewInjector(injector.DefaultConfig(), nil, rx, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, inj.Cycle(256))
	test.ExpectEquality(t, len(rx.received), 0)
}

func TestInjectorSourceError(t *testing.T) {
	src := &mockSource{err: fmt.Errorf("device gone")}
	rx := &mockReceiver{}

	inj, err := injector.NewInjector(injector.DefaultConfig(), src, rx, nil)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, inj.Cycle(1))
	err = inj.Cycle(256)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "injector: device gone")
}

func TestInvalidInterval(t *testing.T) {
	_, err := injector.NewInjector(injector.Config{Interval: 0}, nil, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, injector.InvalidInterval))
}

func TestHotkeys(t *testing.T) {
	hks, err := injector.ParseHotkeys("y=D:de, x=a:6f")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(hks), 2)
	test.ExpectEquality(t, hks[0], injector.Hotkey{Key: 'y', Port: ports.D, Value: 0xde})
	test.ExpectEquality(t, hks[1], injector.Hotkey{Key: 'x', Port: ports.A, Value: 0x6f})
	test.ExpectEquality(t, injector.FormatHotkeys(hks), "y=D:de,x=A:6f")

	hks, err = injector.ParseHotkeys("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(hks), 0)

	for _, s := range []string{"y", "yy=D:de", "y=D", "y=E:de", "y=D:100", "y=D:zz"} {
		_, err = injector.ParseHotkeys(s)
		test.ExpectSuccess(t, curated.Is(err, injector.InvalidHotkey), s)
	}

	test.ExpectEquality(t, injector.FormatHotkeys(injector.DefaultConfig().Hotkeys), "y=D:de")
}
