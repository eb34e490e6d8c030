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

// Package test bundles a number of helper functions that remove common
// boilerplate from tests written for the standard go test harness.
//
// The Expect*() functions report a test error but allow the test to continue.
// The Demand*() functions are fatal to the test and should be used when the
// value being tested is required to be correct before the test can continue.
// For example, testing that the lengths of two slices are equal before
// iterating over them in unison.
//
// Success and failure is decided by the type of the value:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// The nil type is considered a success because of how errors usually work in
// Go (nil indicates no error).
//
// The CompareWriter, RingWriter and CappedWriter types implement io.Writer and
// should be used to capture output.
package test
