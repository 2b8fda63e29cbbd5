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

package performance_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gopher101/gopher101/hardware"
	"github.com/gopher101/gopher101/hardware/input"
	"github.com/gopher101/gopher101/performance"
	"github.com/gopher101/gopher101/test"
)

func idleBoard(t *testing.T) *hardware.Board {
	t.Helper()

	// JMP $f800 with the reset vector pointing at it
	image := make([]uint8, 0x8000)
	copy(image[0x7800:], []uint8{0x4c, 0x00, 0xf8})
	image[0x7ffd] = 0xf8

	b := hardware.NewBoard(input.NewDelivery(input.NewSlot(), nil), &input.Actions{}, &test.CompareWriter{})
	test.DemandSuccess(t, b.LoadROM(image))
	b.Reset()
	return b
}

func TestCalcMHz(t *testing.T) {
	mhz, accuracy := performance.CalcMHz(2000000, 2.0)
	test.ExpectEquality(t, mhz, 1.0)
	test.ExpectEquality(t, accuracy, 100.0)

	mhz, accuracy = performance.CalcMHz(5000000, 1.0)
	test.ExpectEquality(t, mhz, 5.0)
	test.ExpectEquality(t, accuracy, 500.0)

	mhz, accuracy = performance.CalcMHz(100, 0)
	test.ExpectEquality(t, mhz, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	p, err = performance.ParseProfile("cpu, TRACE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "cpu,trace")

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "cpu,mem,trace")

	_, err = performance.ParseProfile("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestRunProfiler(t *testing.T) {
	t.Chdir(t.TempDir())

	var ran bool
	err := performance.RunProfiler(performance.ProfileMem, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat("test_mem.profile")
	test.ExpectSuccess(t, err)

	_, err = os.Stat("test_cpu.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	b := idleBoard(t)

	output := &strings.Builder{}
	err := performance.Check(output, b, performance.ProfileNone, 50*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(output.String(), " MHz ("))
	test.ExpectSuccess(t, b.Cycles() > 0)

	// turbo is restored after the check
	test.ExpectFailure(t, b.Turbo)
}
