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

// Package logger is the central logging facility for xrambus. Log entries are
// made up of a tag and a detail string. The tag is usually the name of the
// package or the component making the entry:
//
//	logger.Logf(logger.Allow, "xram", "write at %x %02x %02x (%02x)", bank, hi, lo, data)
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count. This is important for the bus controller,
// which can make the same log entry every cycle for long periods.
//
// Whether a log entry is made is decided by the Permission argument. Use
// logger.Allow to always log.
//
// Entries are held in memory and can be written to an io.Writer with Write()
// and Tail(). SetEcho() will echo new entries to an io.Writer as they are made.
package logger
