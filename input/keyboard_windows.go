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

//go:build windows

package input

import (
	"github.com/jetsetilly/xrambus/curated"
)

// DefaultKeyboard is the device opened by the keyboard source.
const DefaultKeyboard = "CONIN$"

// Keyboard is not supported on windows. Use a Reader on the standard input.
type Keyboard struct{}

// NewKeyboard always returns an error on windows.
func NewKeyboard(_ string) (*Keyboard, error) {
	return nil, curated.Errorf("keyboard: not supported on this platform")
}

// Poll implements the injector.Source interface.
func (kb *Keyboard) Poll() (uint8, bool, error) {
	return 0, false, nil
}

// Close does nothing on windows.
func (kb *Keyboard) Close() error {
	return nil
}
