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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/gopher101/gopher101/curated"
	"github.com/gopher101/gopher101/logger"
)

// IsAudio returns true if the filename has the extension of an audio file
// supported by Load().
func IsAudio(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav", ".mp3":
		return true
	}
	return false
}

// Load the file. WAV and MP3 files are demodulated. Any other file is
// returned unchanged.
func Load(filename string) ([]byte, error) {
	if !IsAudio(filename) {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, curated.Errorf("tape: %v", err)
		}
		return data, nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("tape: %v", err)
	}
	defer f.Close()

	var samples []float32
	var sampleRate float64

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		samples, sampleRate, err = decodeWAV(f)
	case ".mp3":
		samples, sampleRate, err = decodeMP3(f)
	}
	if err != nil {
		return nil, curated.Errorf("tape: %v", err)
	}

	logger.Logf(logger.Allow, "tape", "%s: %d samples at %.0fHz", filepath.Base(filename), len(samples), sampleRate)

	data := Demodulate(samples, sampleRate)
	logger.Logf(logger.Allow, "tape", "%s: %d bytes", filepath.Base(filename), len(data))

	return data, nil
}

// decodeWAV returns the samples of the first channel in the file.
func decodeWAV(r io.ReadSeeker) ([]float32, float64, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, curated.Errorf("wav: %v", "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, curated.Errorf("wav: %v", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	chans := int(dec.NumChans)
	samples := make([]float32, 0, len(floatBuf.Data)/chans)
	for i := 0; i < len(floatBuf.Data); i += chans {
		samples = append(samples, floatBuf.Data[i])
	}

	return samples, float64(dec.SampleRate), nil
}

// decodeMP3 returns the samples of the left channel in the stream.
func decodeMP3(r io.Reader) ([]float32, float64, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, curated.Errorf("mp3: %v", err)
	}

	// the decoded stream is always 16 bit little endian stereo, even if the
	// source is mono. each sample is four bytes with the left channel first
	var samples []float32

	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			samples = append(samples, float32(int16(uint16(chunk[i])|uint16(chunk[i+1])<<8)))
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, 0, curated.Errorf("mp3: %v", err)
		}
	}

	return samples, float64(dec.SampleRate()), nil
}
