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

// Package tape converts between data and cassette audio recorded with the
// Kansas City Standard, as used by the UK101 cassette interface.
//
// Data is sent at 300 baud. A zero bit is four cycles of a 1200Hz tone and a
// one bit is eight cycles of a 2400Hz tone. Each byte is framed by a single
// start bit (zero) and two stop bits (one) with the eight data bits sent
// least significant bit first. The line idles with the 2400Hz tone.
//
// Load() reads a file for use as replay input. WAV and MP3 files are
// demodulated and any other file is returned as it is. The Recorder type
// collects bytes and writes them to a WAV file when it is closed.
package tape
