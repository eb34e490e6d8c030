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

// Package preferences binds the configuration of the bus controller and the
// injector to the prefs system. Every port role and control line is a
// preference value that can be changed in the preferences file or on the
// command line with the -prefs flag.
package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/xrambus/curated"
	"github.com/jetsetilly/xrambus/hardware/injector"
	"github.com/jetsetilly/xrambus/hardware/ports"
	"github.com/jetsetilly/xrambus/hardware/xram"
	"github.com/jetsetilly/xrambus/hardware/xram/memory"
	"github.com/jetsetilly/xrambus/paths"
	"github.com/jetsetilly/xrambus/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// port roles. the value is the name of the port
	AddressLow  prefs.String
	LatchSource prefs.String
	Data        prefs.String
	ReadBack    prefs.String

	// control lines. see ports.ParseLine() for the format
	LatchStrobe  prefs.String
	BankSelect   prefs.String
	WriteEnable  prefs.String
	OutputEnable prefs.String

	// memory device
	Capacity  prefs.Int
	Sentinel  *prefs.Generic
	LogWrites prefs.Bool

	// injector
	Interval prefs.Int
	Hotkeys  prefs.String

	sentinel uint8
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with the location of
// the preferences file specified. The file is created if it does not exist.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	for _, v := range []*prefs.String{&p.AddressLow, &p.LatchSource, &p.Data, &p.ReadBack} {
		v.SetHookPre(func(value prefs.Value) error {
			_, err := ports.ParseID(value.(string))
			return err
		})
	}

	for _, v := range []*prefs.String{&p.LatchStrobe, &p.BankSelect, &p.WriteEnable, &p.OutputEnable} {
		v.SetHookPre(func(value prefs.Value) error {
			_, err := ports.ParseLine(value.(string))
			return err
		})
	}

	p.Capacity.SetHookPre(func(value prefs.Value) error {
		_, err := memory.NewArray(value.(int))
		return err
	})

	p.Sentinel = prefs.NewGeneric(
		func(s string) error {
			v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 8)
			if err != nil {
				return curated.Errorf("preferences: sentinel: %v", err)
			}
			p.sentinel = uint8(v)
			return nil
		},
		func() string {
			return fmt.Sprintf("%02x", p.sentinel)
		},
	)

	p.Interval.SetHookPre(func(value prefs.Value) error {
		if value.(int) <= 0 {
			return curated.Errorf(injector.InvalidInterval, value.(int))
		}
		return nil
	})

	p.Hotkeys.SetHookPre(func(value prefs.Value) error {
		_, err := injector.ParseHotkeys(value.(string))
		return err
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("xram.addresslow", &p.AddressLow)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("xram.latchsource", &p.LatchSource)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("xram.data", &p.Data)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("xram.readback", &p.ReadBack)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("xram.latchstrobe", &p.LatchStrobe)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("xram.bankselect", &p.BankSelect)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("xram.writeenable", &p.WriteEnable)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("xram.outputenable", &p.OutputEnable)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("xram.capacity", &p.Capacity)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("xram.sentinel", p.Sentinel)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("xram.logwrites", &p.LogWrites)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("injector.interval", &p.Interval)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("injector.hotkeys", &p.Hotkeys)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults sets every value to the wiring of the reference board.
func (p *Preferences) SetDefaults() error {
	cfg := xram.DefaultConfig()
	inj := injector.DefaultConfig()

	defaults := []struct {
		set func(prefs.Value) error
		v   prefs.Value
	}{
		{p.AddressLow.Set, cfg.AddressLow.String()},
		{p.LatchSource.Set, cfg.LatchSource.String()},
		{p.Data.Set, cfg.Data.String()},
		{p.ReadBack.Set, cfg.ReadBack.String()},
		{p.LatchStrobe.Set, cfg.LatchStrobe.String()},
		{p.BankSelect.Set, cfg.BankSelect.String()},
		{p.WriteEnable.Set, cfg.WriteEnable.String()},
		{p.OutputEnable.Set, cfg.OutputEnable.String()},
		{p.Capacity.Set, cfg.Capacity},
		{p.Sentinel.Set, fmt.Sprintf("%02x", cfg.Sentinel)},
		{p.LogWrites.Set, cfg.LogWrites},
		{p.Interval.Set, inj.Interval},
		{p.Hotkeys.Set, injector.FormatHotkeys(inj.Hotkeys)},
	}

	for _, d := range defaults {
		if err := d.set(d.v); err != nil {
			return err
		}
	}

	return nil
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	return p.SetDefaults()
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// XRAM returns the configuration for the bus controller.
func (p *Preferences) XRAM() (xram.Config, error) {
	var cfg xram.Config
	var err error

	roles := []struct {
		id *ports.ID
		v  *prefs.String
	}{
		{&cfg.AddressLow, &p.AddressLow},
		{&cfg.LatchSource, &p.LatchSource},
		{&cfg.Data, &p.Data},
		{&cfg.ReadBack, &p.ReadBack},
	}
	for _, r := range roles {
		*r.id, err = ports.ParseID(r.v.String())
		if err != nil {
			return xram.Config{}, curated.Errorf("preferences: %v", err)
		}
	}

	lines := []struct {
		l *ports.Line
		v *prefs.String
	}{
		{&cfg.LatchStrobe, &p.LatchStrobe},
		{&cfg.BankSelect, &p.BankSelect},
		{&cfg.WriteEnable, &p.WriteEnable},
		{&cfg.OutputEnable, &p.OutputEnable},
	}
	for _, l := range lines {
		*l.l, err = ports.ParseLine(l.v.String())
		if err != nil {
			return xram.Config{}, curated.Errorf("preferences: %v", err)
		}
	}

	cfg.Capacity = p.Capacity.Get().(int)
	cfg.Sentinel = p.sentinel
	cfg.LogWrites = p.LogWrites.Get().(bool)

	return cfg, cfg.Validate()
}

// Injector returns the configuration for the injector.
func (p *Preferences) Injector() (injector.Config, error) {
	hks, err := injector.ParseHotkeys(p.Hotkeys.String())
	if err != nil {
		return injector.Config{}, curated.Errorf("preferences: %v", err)
	}
	return injector.Config{
		Interval: p.Interval.Get().(int),
		Hotkeys:  hks,
	}, nil
}
