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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/gopher101/gopher101/curated"
	"github.com/gopher101/gopher101/hardware/memory/memorymap"
)

// DefaultFilename is the ROM image used if none is specified.
const DefaultFilename = "all.rom"

// Loader is used to specify the ROM image to use.
type Loader struct {
	// filename of ROM image to load. can be a URL
	Filename string

	// expected hash of the loaded image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
// An empty filename selects the DefaultFilename.
func NewLoader(filename string) Loader {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = DefaultFilename
	}
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (rl Loader) ShortName() string {
	s := path.Base(rl.Filename)
	return strings.TrimSuffix(s, path.Ext(rl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (rl Loader) HasLoaded() bool {
	return len(rl.Data) > 0
}

// Load the ROM image. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (rl *Loader) Load() error {
	if rl.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(rl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(rl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romloader: %v", fmt.Sprintf("unexpected HTTP status (%s)", resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file", "":
		filename := rl.Filename
		if u != nil && u.Scheme == "file" {
			filename = u.Path
		}
		data, err = os.ReadFile(filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(data) != memorymap.ChipSizeROM {
		return curated.Errorf("romloader: bad ROM file (size mismatch: %d bytes)", len(data))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if rl.Hash != "" && rl.Hash != hash {
		return curated.Errorf("romloader: %v", "unexpected hash value")
	}

	rl.Hash = hash
	rl.Data = data

	return nil
}

// Load is a convenience function that loads the ROM image from a file or URL
// and returns the data.
func Load(filename string) ([]byte, error) {
	rl := NewLoader(filename)
	if err := rl.Load(); err != nil {
		return nil, err
	}
	return rl.Data, nil
}
