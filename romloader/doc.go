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

// Package romloader is used to load the ROM image that is to be attached to
// the emulated UK101.
//
// The image must be exactly 32768 bytes. It is mapped to the 0x8000 to 0xefff
// and 0xf800 to 0xffff areas of the address map. The part of the image that
// would be mapped to the 0xf000 to 0xf7ff area is hidden by the ACIA.
//
// The simplest use of the package:
//
//	image, err := romloader.Load("all.rom")
//
// The Loader type can be used when the hash of the image is also required or
// should be checked. Images can be loaded from local files or over HTTP.
package romloader
