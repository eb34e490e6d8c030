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

package ports

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/xrambus/curated"
)

// Line identifies a single pin on a port and the polarity of the signal
// carried on it.
//
// A line is written as the port name followed by the bit number. A leading
// exclamation mark indicates that the signal is active low. For example:
//
//	D3     bit 3 of port D, asserted when the pin is high
//	!D2    bit 2 of port D, asserted when the pin is low
type Line struct {
	Port      ID
	Bit       uint8
	ActiveLow bool
}

// Mask returns the bit mask for the line within its port.
func (l Line) Mask() uint8 {
	return 0x01 << l.Bit
}

// High returns true if the pin is high in the snapshot, regardless of
// polarity.
func (l Line) High(s Snapshot) bool {
	return s.Value(l.Port)&l.Mask() == l.Mask()
}

// Asserted returns true if the signal is active in the snapshot, taking the
// polarity into account.
func (l Line) Asserted(s Snapshot) bool {
	return l.High(s) != l.ActiveLow
}

func (l Line) String() string {
	if l.ActiveLow {
		return fmt.Sprintf("!%s%d", l.Port, l.Bit)
	}
	return fmt.Sprintf("%s%d", l.Port, l.Bit)
}

// Valid returns an error if the port or bit of the line is out of range.
func (l Line) Valid() error {
	if !l.Port.Valid() || l.Bit > 7 {
		return curated.Errorf(InvalidLine, l)
	}
	return nil
}

// ParseLine converts a string of the form used by Line.String() to a Line.
func ParseLine(s string) (Line, error) {
	var l Line

	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "!") {
		l.ActiveLow = true
		t = t[1:]
	}

	if len(t) != 2 {
		return Line{}, curated.Errorf(InvalidLine, s)
	}

	id, err := ParseID(t[:1])
	if err != nil {
		return Line{}, curated.Errorf(InvalidLine, s)
	}
	l.Port = id

	b, err := strconv.ParseUint(t[1:], 10, 8)
	if err != nil || b > 7 {
		return Line{}, curated.Errorf(InvalidLine, s)
	}
	l.Bit = uint8(b)

	return l, nil
}
