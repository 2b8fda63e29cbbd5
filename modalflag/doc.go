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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of flag.Parse() a Modes struct is initialised
// with NewArgs() and then parsed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	turbo := md.AddBool("turbo", false, "run as fast as possible")
//	p, err := md.Parse()
//
// Parse() returns a ParseResult that should be checked. If help was requested
// then it will already have been printed to Output.
//
// Modes are added with AddSubModes(). The first sub-mode in the list is the
// default mode and is selected when the first non-flag argument does not name
// a mode. After parsing, Mode() returns the selected mode. A new set of flags
// for the selected mode can then be created by calling NewMode(), adding
// flags and parsing again. The remaining arguments of each layer are
// available through RemainingArgs() and GetArg().
package modalflag
