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

// Package govern defines the states the system can be in. The run loop of
// the hardware package consults a continue-check function every cycle and
// acts on the State it returns.
package govern

// State indicates the system's state.
type State int

// List of possible system states.
//
// EmulatorStart is the default state and should never be entered once the
// system has begun.
//
// Initialising indicates that the system is not yet ready to run. Run() does
// not accept it as a state to continue in and returns an error.
const (
	EmulatorStart State = iota
	Initialising
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Initialising:
		return "Initialising"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}
