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

// Package input provides the sources of bytes for the injector. Every type
// in this package implements the injector.Source interface and none of them
// block when polled.
//
// Keyboard reads directly from a terminal device and is the normal source
// when the program is run interactively. Serial reads from a host serial
// port. Reader adapts any io.Reader, which is useful when the standard input
// is a pipe or a file.
package input
