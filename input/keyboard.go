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

//go:build !windows

package input

import (
	"github.com/pkg/term"

	"github.com/jetsetilly/xrambus/curated"
)

// DefaultKeyboard is the device opened by the keyboard source.
const DefaultKeyboard = "/dev/tty"

// Keyboard is a non-blocking source of key presses. The terminal is put into
// cbreak mode so that key presses are available without waiting for the
// return key.
type Keyboard struct {
	t *term.Term
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type. The Close() function should be called to restore the terminal.
func NewKeyboard(device string) (*Keyboard, error) {
	t, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("keyboard: %v", err)
	}
	return &Keyboard{t: t}, nil
}

// Poll implements the injector.Source interface.
func (kb *Keyboard) Poll() (uint8, bool, error) {
	n, err := kb.t.Available()
	if err != nil {
		return 0, false, curated.Errorf("keyboard: %v", err)
	}
	if n == 0 {
		return 0, false, nil
	}

	var b [1]byte
	n, err = kb.t.Read(b[:])
	if err != nil {
		return 0, false, curated.Errorf("keyboard: %v", err)
	}
	if n == 0 {
		return 0, false, nil
	}

	return b[0], true, nil
}

// Close restores the terminal to the state it was in before NewKeyboard()
// was called.
func (kb *Keyboard) Close() error {
	if err := kb.t.Restore(); err != nil {
		_ = kb.t.Close()
		return curated.Errorf("keyboard: %v", err)
	}
	if err := kb.t.Close(); err != nil {
		return curated.Errorf("keyboard: %v", err)
	}
	return nil
}
