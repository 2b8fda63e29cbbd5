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

package tape_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher101/gopher101/curated"
	"github.com/gopher101/gopher101/tape"
	"github.com/gopher101/gopher101/test"
)

const listing = "10 PRINT \"HELLO\"\r20 GOTO 10\r"

func toFloat(samples []int, scale float32, offset float32) []float32 {
	f := make([]float32, len(samples))
	for i, s := range samples {
		f[i] = float32(s)*scale + offset
	}
	return f
}

func TestModulate(t *testing.T) {
	samples := tape.Modulate([]byte{0x55}, tape.DefaultSampleRate)

	// leader of one second, eleven bits of data and a short trailer
	bits := tape.Baud + 11 + tape.Baud/10
	test.ExpectEquality(t, len(samples), bits*tape.DefaultSampleRate/tape.Baud)

	for _, s := range samples {
		if s > 32767 || s < -32768 {
			t.Fatalf("sample out of range for 16 bit audio (%d)", s)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, rate := range []int{tape.DefaultSampleRate, 22050, 48000} {
		samples := tape.Modulate([]byte(listing), rate)
		data := tape.Demodulate(toFloat(samples, 1, 0), float64(rate))
		test.ExpectEquality(t, string(data), listing, rate)
	}
}

func TestRoundTripAllBytes(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = uint8(i)
	}
	samples := tape.Modulate(all, tape.DefaultSampleRate)
	data := tape.Demodulate(toFloat(samples, 1, 0), tape.DefaultSampleRate)
	test.ExpectEquality(t, string(data), string(all))
}

func TestDemodulateOffset(t *testing.T) {
	// similar to an 8 bit unsigned recording
	samples := tape.Modulate([]byte(listing), tape.DefaultSampleRate)
	data := tape.Demodulate(toFloat(samples, 1.0/256, 128), tape.DefaultSampleRate)
	test.ExpectEquality(t, string(data), listing)
}

func TestDemodulateSilence(t *testing.T) {
	test.ExpectEquality(t, len(tape.Demodulate(nil, tape.DefaultSampleRate)), 0)
	test.ExpectEquality(t, len(tape.Demodulate(make([]float32, 1000), tape.DefaultSampleRate)), 0)
}

func TestSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "listing.wav")
	test.DemandSuccess(t, tape.Save(filename, []byte(listing), tape.DefaultSampleRate))

	data, err := tape.Load(filename)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(data), listing)
}

func TestLoadText(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "listing.bas")
	test.DemandSuccess(t, os.WriteFile(filename, []byte(listing), 0o644))

	data, err := tape.Load(filename)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(data), listing)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := tape.Load(filepath.Join(dir, "missing.bas"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, "tape: %v"))

	_, err = tape.Load(filepath.Join(dir, "missing.wav"))
	test.ExpectFailure(t, err)

	// a file with the wrong content for its extension
	bad := filepath.Join(dir, "bad.wav")
	test.DemandSuccess(t, os.WriteFile(bad, []byte(listing), 0o644))
	_, err = tape.Load(bad)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, "wav: %v"))
}

func TestIsAudio(t *testing.T) {
	test.ExpectSuccess(t, tape.IsAudio("game.wav"))
	test.ExpectSuccess(t, tape.IsAudio("GAME.MP3"))
	test.ExpectFailure(t, tape.IsAudio("game.bas"))
	test.ExpectFailure(t, tape.IsAudio("wav"))
}

func TestRecorder(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "session.wav")

	rec := tape.NewRecorder(filename)
	n, err := rec.Write([]byte("10 PRINT"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 8)
	rec.Write([]byte(" 1\r"))
	test.ExpectEquality(t, rec.Len(), 11)

	// nothing is written until the recorder is closed
	_, err = os.Stat(filename)
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, rec.Close())

	data, err := tape.Load(filename)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(data), "10 PRINT 1\r")
}
