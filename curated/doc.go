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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern and placeholder values in the same
// way as fmt.Errorf().
//
// The pattern is kept alongside the values so that the error can later be
// identified with the Is() function:
//
//	e := curated.Errorf("xram: capacity is not a power of two (%d)", n)
//
//	if curated.Is(e, "xram: capacity is not a power of two (%d)") {
//		fmt.Println("true")
//	}
//
// The Has() function does the same but looks through the entire chain of
// wrapped curated errors. Sentinal patterns should be declared as exported
// consts next to the code that creates them.
//
// Calling Error() normalises the message so that adjacent duplicate parts are
// removed. Parts are separated by the sub-string ": ". For example, an error
// created with:
//
//	curated.Errorf("script: %v", curated.Errorf("script: file not found"))
//
// will print as:
//
//	script: file not found
//
// and not:
//
//	script: script: file not found
package curated
