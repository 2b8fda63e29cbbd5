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
	"math"
)

// Baud is the number of bits per second.
const Baud = 300

// Frequencies of the two tones.
const (
	SpaceFreq = 1200
	MarkFreq  = 2400
)

// DefaultSampleRate is the sample rate of WAV files created by the package.
const DefaultSampleRate = 44100

// the number of bits of mark tone before and after the data
const (
	leaderBits  = Baud
	trailerBits = Baud / 10
)

// amplitude of modulated samples. the samples are 16 bit
const amplitude = 0.8 * math.MaxInt16

// Modulate data as cassette audio at the given sample rate. The returned
// samples are 16 bit mono.
func Modulate(data []byte, sampleRate int) []int {
	bits := make([]bool, 0, leaderBits+len(data)*11+trailerBits)

	for range leaderBits {
		bits = append(bits, true)
	}

	for _, b := range data {
		bits = append(bits, false)
		for i := range 8 {
			bits = append(bits, b>>i&0x01 == 0x01)
		}
		bits = append(bits, true, true)
	}

	for range trailerBits {
		bits = append(bits, true)
	}

	samples := make([]int, 0, len(bits)*sampleRate/Baud+1)

	// the phase of the tone is carried over from bit to bit
	var phase float64

	for i, bit := range bits {
		freq := float64(SpaceFreq)
		if bit {
			freq = MarkFreq
		}
		step := 2 * math.Pi * freq / float64(sampleRate)

		// bit boundaries are calculated from the start of the recording so
		// that rounding errors do not accumulate
		end := (i + 1) * sampleRate / Baud
		for n := len(samples); n < end; n++ {
			samples = append(samples, int(amplitude*math.Sin(phase)))
			phase += step
		}
		phase = math.Mod(phase, 2*math.Pi)
	}

	return samples
}

// Demodulate cassette audio sampled at the given rate. Returns the bytes that
// were framed correctly.
//
// The signal is divided into half-cycles at each zero crossing. Short
// half-cycles are classified as mark and long half-cycles as space. Bytes are
// then decoded by sampling the classified signal in the middle of each bit.
func Demodulate(samples []float32, sampleRate float64) []byte {
	level := classify(samples, sampleRate)
	return frame(level, sampleRate/Baud)
}

// classify every sample as either mark (true) or space (false).
func classify(samples []float32, sampleRate float64) []bool {
	level := make([]bool, len(samples))
	if len(samples) == 0 {
		return level
	}

	// remove any DC offset. 8 bit WAV files for example are unsigned
	var mean float64
	for _, s := range samples {
		mean += float64(s)
	}
	mean /= float64(len(samples))

	// half-cycles longer than the threshold are space. the threshold is
	// midway between the half-periods of the two tones
	threshold := (sampleRate/(2*MarkFreq) + sampleRate/(2*SpaceFreq)) / 2

	// the line is idle until the first crossing
	for i := range level {
		level[i] = true
	}

	prevSign := float64(samples[0])-mean >= 0
	prevCrossing := -1.0
	prevIdx := 0

	for i := 1; i < len(samples); i++ {
		a := float64(samples[i-1]) - mean
		b := float64(samples[i]) - mean

		sign := b >= 0
		if sign == prevSign {
			continue
		}
		prevSign = sign

		// position of the crossing between the two samples
		crossing := float64(i-1) + a/(a-b)

		if prevCrossing >= 0 {
			mark := crossing-prevCrossing < threshold
			for j := prevIdx; j < i; j++ {
				level[j] = mark
			}
		}

		prevCrossing = crossing
		prevIdx = i
	}

	return level
}

// frame decodes bytes from the classified signal.
func frame(level []bool, bitLen float64) []byte {
	var data []byte

	// the level at the middle of bit n of the frame beginning at start.
	// returns false for ok if the position is past the end of the signal
	at := func(start int, n float64) (bool, bool) {
		p := start + int((n+0.5)*bitLen)
		if p >= len(level) {
			return false, false
		}
		return level[p], true
	}

	i := 0
	for i < len(level) {
		// wait for the leading edge of a start bit
		if level[i] {
			i++
			continue
		}

		start := i

		// the start bit must still be space in the middle of the bit
		v, ok := at(start, 0)
		if !ok {
			break
		}
		if v {
			i++
			continue
		}

		var b byte
		for n := range 8 {
			v, ok := at(start, float64(n+1))
			if !ok {
				return data
			}
			if v {
				b |= 1 << n
			}
		}

		stop, ok := at(start, 9)
		if !ok {
			break
		}

		if !stop {
			// framing error. try to resynchronise from the next bit
			i = start + int(bitLen)
			continue
		}

		data = append(data, b)

		// continue from the middle of the first stop bit
		i = start + int(9.5*bitLen)
	}

	return data
}
