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

// Package prefs facilitates the storage of preferential values in the
// program. The type Disk handles saving to and loading from the disk.
//
// Preference values are added to a Disk instance with the Add() function. The
// key used for the preference is the name that will appear in the
// preferences file.
//
//	dsk, _ := prefs.NewDisk("preferences")
//	var capacity prefs.Int
//	dsk.Add("xram.capacity", &capacity)
//
// Once all values have been added Load() and Save() can be used to retrieve
// and store values. Entries in the file that are not recognised by a Disk
// instance are preserved on Save(). This means that more than one Disk
// instance can use the same preferences file.
//
// The command line stack is a way of overriding preference values for the
// duration of a single run of the program. Values in the topmost group of the
// stack are consulted when Load() is called and are removed once used.
//
//	prefs.PushCommandLineStack("xram.capacity::4096; injector.interval::512")
package prefs
