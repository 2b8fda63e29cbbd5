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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopher101/gopher101/curated"
	"github.com/gopher101/gopher101/disassembly"
	"github.com/gopher101/gopher101/hardware"
	"github.com/gopher101/gopher101/hardware/input"
	"github.com/gopher101/gopher101/hardware/memory"
	"github.com/gopher101/gopher101/logger"
	"github.com/gopher101/gopher101/modalflag"
	"github.com/gopher101/gopher101/performance"
	"github.com/gopher101/gopher101/romloader"
	"github.com/gopher101/gopher101/statsview"
	"github.com/gopher101/gopher101/tape"
	"github.com/gopher101/gopher101/terminal/easyterm"
	"github.com/gopher101/gopher101/version"
)

// exit values
const (
	exitParse   = 10
	exitRuntime = 20
)

// pattern for errors caused by bad command line arguments
const flagsError = "flags: %v"

// the number of log entries written to stderr after a runtime error
const logTail = 10

const quitMessage = "\n*** Ctrl-X ***\n"

const shortcutHelp = `keyboard shortcuts while running:
  Ctrl-R  reset the CPU (RAM is preserved)
  Ctrl-X  quit`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	exitVal := launch(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(exitVal)
}

// launch parses the top level of the command line and runs the selected mode.
// Returns the exit value.
func launch(ctx context.Context, args []string, stdin *os.File, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "TAPE", "DISASM", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "print version and exit")
	md.Alias("v", "version")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitParse
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.Banner())
		return 0
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, stdin, stdout, stderr)

	case "TAPE":
		err = convert(md, stdout)

	case "DISASM":
		err = disasm(md, stdout)

	case "PERFORMANCE":
		err = perform(md, stdout, stderr)
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error: %v\n", err)
		if curated.Is(err, flagsError) {
			return exitParse
		}
		logger.Tail(stderr, logTail)
		return exitRuntime
	}

	return 0
}

// parse the flags of the current mode. returns false if the mode should not
// continue, either because help has been printed or because of an error.
func parse(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(flagsError, err)
	}
	return true, nil
}

func setLogging(echo bool, output io.Writer) {
	if echo {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

// loadReplay returns nil if no filename has been given.
func loadReplay(filename string) (*input.Replay, error) {
	if filename == "" {
		return nil, nil
	}
	data, err := tape.Load(filename)
	if err != nil {
		return nil, curated.Errorf("replay: %v", err)
	}
	logger.Logf(logger.Allow, "gopher101", "replaying %d bytes from %s", len(data), filename)
	return input.NewReplay(data), nil
}

func run(ctx context.Context, md *modalflag.Modes, stdin *os.File, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()

	turbo := md.AddBool("turbo", false, "disable real-time pacing")
	md.Alias("t", "turbo")
	rom := md.AddString("rom", romloader.DefaultFilename, "ROM image (file or http URL)")
	md.Alias("r", "rom")
	log := md.AddBool("log", false, "echo log to stderr")
	record := md.AddString("record", "", "record console output to a cassette WAV file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	memvizFile := md.AddString("memviz", "", "write memviz graph of the machine state after reset")
	md.AdditionalHelp(shortcutHelp)

	if ok, err := parse(md); !ok {
		return err
	}

	setLogging(*log, stderr)

	if len(md.RemainingArgs()) > 1 {
		return curated.Errorf(flagsError, "too many arguments for RUN mode")
	}

	image, err := romloader.Load(*rom)
	if err != nil {
		return err
	}

	replay, err := loadReplay(md.GetArg(0))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	console := stdout
	var rec *tape.Recorder
	if *record != "" {
		rec = tape.NewRecorder(*record)
		console = io.MultiWriter(stdout, rec)
	}

	slot := input.NewSlot()
	actions := &input.Actions{}

	board := hardware.NewBoard(input.NewDelivery(slot, replay), actions, console)
	board.Turbo = *turbo
	if err := board.LoadROM(image); err != nil {
		return curated.Errorf("romloader: %v", err)
	}
	board.Reset()

	if *memvizFile != "" {
		if err := writeMemviz(*memvizFile, board); err != nil {
			return err
		}
	}

	if *stats {
		statsview.Launch(stdout)
	}

	fmt.Fprintln(stdout, version.Banner())

	var src input.Source
	if easyterm.IsTerminal(stdin) {
		term, err := easyterm.NewTerminal(stdin)
		if err != nil {
			return err
		}
		if err := term.RawMode(); err != nil {
			return err
		}
		defer term.Restore()
		src = term
	} else {
		src = input.NewReaderSource(stdin)
	}

	poller := input.NewPoller(src, slot, actions)
	poller.OnQuit = func() {
		io.WriteString(stdout, quitMessage)
		cancel()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := poller.Run(ctx); err != nil {
			logger.Log(logger.Allow, "input", err)
		}
	}()

	board.Run(ctx)
	cancel()
	<-done

	logger.Logf(logger.Allow, "gopher101", "%d batches run", board.Batches())

	if rec != nil {
		if err := rec.Close(); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "gopher101", "recorded %d bytes to %s", rec.Len(), *record)
	}

	return nil
}

func writeMemviz(filename string, board *hardware.Board) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()

	memviz.Map(f, board.Snapshot())
	return nil
}

// convert between text files and cassette recordings. the direction of the
// conversion depends on the file extensions.
func convert(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	rate := md.AddInt("rate", tape.DefaultSampleRate, "sample rate of the WAV file")
	log := md.AddBool("log", false, "echo log to stderr")
	md.AdditionalHelp("usage: TAPE <infile> <outfile>\n\naudio files (.wav or .mp3) are decoded as Kansas City Standard\ncassette recordings. output files with the .wav extension are encoded.")

	if ok, err := parse(md); !ok {
		return err
	}

	setLogging(*log, os.Stderr)

	if len(md.RemainingArgs()) != 2 {
		return curated.Errorf(flagsError, "TAPE mode requires an input file and an output file")
	}
	if *rate <= 0 {
		return curated.Errorf(flagsError, fmt.Sprintf("bad sample rate (%d)", *rate))
	}

	in := md.GetArg(0)
	out := md.GetArg(1)

	data, err := tape.Load(in)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(out)) {
	case ".wav":
		err = tape.Save(out, data, *rate)
	case ".mp3":
		err = curated.Errorf("tape: %v", "MP3 encoding is not supported")
	default:
		err = os.WriteFile(out, data, 0o644)
		if err != nil {
			err = curated.Errorf("tape: %v", err)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%d bytes written to %s\n", len(data), out)
	return nil
}

// parseAddress accepts decimal, hex (0x prefix) and octal values.
func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, curated.Errorf(flagsError, fmt.Sprintf("bad address (%s)", s))
	}
	return uint16(v), nil
}

func disasm(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	from := md.AddString("from", "0xf800", "first address")
	to := md.AddString("to", "0xffff", "last address")
	md.AdditionalHelp("usage: DISASM [ROM file]")

	if ok, err := parse(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return curated.Errorf(flagsError, "too many arguments for DISASM mode")
	}

	start, err := parseAddress(*from)
	if err != nil {
		return err
	}
	end, err := parseAddress(*to)
	if err != nil {
		return err
	}

	image, err := romloader.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	mem := memory.NewMemory(nil)
	if err := mem.LoadROM(image); err != nil {
		return curated.Errorf("romloader: %v", err)
	}

	dsm, err := disassembly.FromMemory(mem, start, end)
	if err != nil {
		return err
	}

	return dsm.Write(stdout)
}

func perform(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()

	rom := md.AddString("rom", romloader.DefaultFilename, "ROM image (file or http URL)")
	md.Alias("r", "rom")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "create profile(s): cpu, mem, trace, all (comma separated)")
	log := md.AddBool("log", false, "echo log to stderr")
	md.AdditionalHelp("usage: PERFORMANCE [replay file]")

	if ok, err := parse(md); !ok {
		return err
	}

	setLogging(*log, stderr)

	if len(md.RemainingArgs()) > 1 {
		return curated.Errorf(flagsError, "too many arguments for PERFORMANCE mode")
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return curated.Errorf(flagsError, err)
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return curated.Errorf(flagsError, err)
	}

	image, err := romloader.Load(*rom)
	if err != nil {
		return err
	}

	replay, err := loadReplay(md.GetArg(0))
	if err != nil {
		return err
	}

	board := hardware.NewBoard(input.NewDelivery(input.NewSlot(), replay), &input.Actions{}, io.Discard)
	if err := board.LoadROM(image); err != nil {
		return curated.Errorf("romloader: %v", err)
	}
	board.Reset()

	return performance.Check(stdout, board, prof, dur)
}
