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

package tape

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/gopher101/gopher101/curated"
	"github.com/gopher101/gopher101/logger"
)

// the WAV format code for uncompressed PCM
const wavPCM = 1

// Save data as a cassette recording in a 16 bit mono WAV file.
func Save(filename string, data []byte, sampleRate int) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("tape: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("tape: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, wavPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           Modulate(data, sampleRate),
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("tape: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("tape: %v", err)
	}

	return nil
}

// Recorder implements the io.Writer interface. Bytes written to the Recorder
// are buffered in memory in their entirety and written to disk as a cassette
// recording when the Recorder is closed.
type Recorder struct {
	filename string
	buffer   []byte
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The file is not created until Close() is called.
func NewRecorder(filename string) *Recorder {
	return &Recorder{
		filename: filename,
	}
}

// Write implements the io.Writer interface.
func (rec *Recorder) Write(p []byte) (int, error) {
	rec.buffer = append(rec.buffer, p...)
	return len(p), nil
}

// Len returns the number of bytes recorded.
func (rec *Recorder) Len() int {
	return len(rec.buffer)
}

// Close writes the recording to disk.
func (rec *Recorder) Close() error {
	logger.Logf(logger.Allow, "tape", "recording %d bytes to %s", len(rec.buffer), rec.filename)
	return Save(rec.filename, rec.buffer, DefaultSampleRate)
}
