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
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/xrambus/curated"
	"github.com/jetsetilly/xrambus/hardware/ports"
)

// Sentinal errors.
const (
	InvalidHotkey   = "injector: invalid hotkey (%s)"
	InvalidInterval = "injector: invalid interval (%d)"
)

// DefaultInterval is the number of cycles between polls of the Source.
const DefaultInterval = 256

// Hotkey drives a port with a value when the key is received.
type Hotkey struct {
	Key   uint8
	Port  ports.ID
	Value uint8
}

// hotkeys are written as key=port:value where the value is hexadecimal. for
// example, y=D:de
func (hk Hotkey) String() string {
	return fmt.Sprintf("%c=%s:%02x", hk.Key, hk.Port, hk.Value)
}

// ParseHotkeys converts a comma separated list of hotkeys to a slice of
// Hotkey. An empty string results in an empty slice.
func ParseHotkeys(s string) ([]Hotkey, error) {
	hks := make([]Hotkey, 0)

	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue // for loop
		}

		key, drive, ok := strings.Cut(f, "=")
		if !ok || len(key) != 1 {
			return nil, curated.Errorf(InvalidHotkey, f)
		}

		port, value, ok := strings.Cut(drive, ":")
		if !ok {
			return nil, curated.Errorf(InvalidHotkey, f)
		}

		id, err := ports.ParseID(port)
		if err != nil {
			return nil, curated.Errorf(InvalidHotkey, err)
		}

		v, err := strconv.ParseUint(value, 16, 8)
		if err != nil {
			return nil, curated.Errorf(InvalidHotkey, f)
		}

		hks = append(hks, Hotkey{Key: key[0], Port: id, Value: uint8(v)})
	}

	return hks, nil
}

// FormatHotkeys is the inverse of ParseHotkeys().
func FormatHotkeys(hks []Hotkey) string {
	s := make([]string, 0, len(hks))
	for _, hk := range hks {
		s = append(s, hk.String())
	}
	return strings.Join(s, ",")
}

// Config for the Injector.
type Config struct {
	Interval int
	Hotkeys  []Hotkey
}

// DefaultConfig returns the configuration of the reference board, which polls
// every 256 cycles and drives port D with 222 when the y key is pressed.
func DefaultConfig() Config {
	return Config{
		Interval: DefaultInterval,
		Hotkeys: []Hotkey{
			{Key: 'y', Port: ports.D, Value: 222},
		},
	}
}
