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

package disassembly

import (
	"io"

	"github.com/gopher101/gopher101/curated"
)

// Write the entire disassembly to io.Writer, one entry per line.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := io.WriteString(output, e.String()); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
		if _, err := io.WriteString(output, "\n"); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}
	return nil
}
