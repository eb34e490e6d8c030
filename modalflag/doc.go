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

// Package modalflag wraps the flag package from the standard library and adds
// the concept of program modes. A mode is a special command line argument
// that puts the program into a different mode of operation, each mode having
// its own set of flags. For example:
//
//	xrambus run -log firmware.lua
//	xrambus ports -prefs "xram.writeenable::D7"
//
// Arguments are supplied with NewArgs() and then parsed with Parse():
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PORTS", "VERSION")
//	p, err := md.Parse()
//
// The first sub-mode in the list is the default and is selected if the first
// argument is not a recognised mode. Mode comparisons are case insensitive and
// Mode() always returns the mode name in upper case.
//
// Once the mode has been decided, call NewMode() to start a new set of flags
// for that mode and Parse() again:
//
//	md.NewMode()
//	log := md.AddBool("log", false, "echo log to stdout")
//	p, err = md.Parse()
//
// The ParseResult returned by Parse() indicates whether the program should
// continue, whether help has been printed or whether an error occurred.
package modalflag
