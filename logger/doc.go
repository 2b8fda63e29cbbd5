// This file is part of Gopher101.
//
// Gopher101 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher101 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher101.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central logging facility for Gopher101. Entries are
// made with a tag and a detail string:
//
//	logger.Log(logger.Allow, "acia", "output error")
//	logger.Logf(logger.Allow, "cpu", "illegal opcode %#02x at %#04x", op, addr)
//
// The first argument is a Permission. Logging only takes place if the
// Permission allows it. logger.Allow is always permitted.
//
// Consecutive entries with the same tag and detail are folded into one entry
// with a repeat count. The central log holds at most 256 entries, after which
// the oldest entries are discarded.
//
// The log can be echoed to an io.Writer as entries are made with SetEcho().
// Otherwise entries can be retrieved with Write() and Tail().
//
// Separate logs can be created with NewLogger(). This is mainly useful for
// testing.
package logger
