/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/massung/chip8-vm/chip8"
	"github.com/massung/chip8-vm/statsview"
	"github.com/retroenv/retrogolib/log"
)

/// optionFlags are the command line settings.
///
type optionFlags struct {
	rom    string
	speed  int
	timers int
	scale  int
	quirks string
	seed   int64
	term   bool
	debug  bool
	quiet  bool
	stats  bool
}

func init() {
	// SDL must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	opts, err := readArguments(os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	logger := createLogger(opts.debug, opts.quiet)

	if err := run(opts, logger); err != nil {
		logger.Fatal(err.Error())
	}
}

/// readArguments parses the command line.
///
func readArguments(args []string) (optionFlags, error) {
	flags := flag.NewFlagSet("chip8", flag.ContinueOnError)

	opts := optionFlags{}
	flags.IntVar(&opts.speed, "speed", 500, "instructions executed per second")
	flags.IntVar(&opts.timers, "timers", 60, "delay and sound timer rate in Hz")
	flags.IntVar(&opts.scale, "scale", 10, "window pixels per CHIP-8 pixel")
	flags.StringVar(&opts.quirks, "quirks", "default", "compatibility quirks (default/cosmac/chip48)")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed, 0 seeds from the clock")
	flags.BoolVar(&opts.term, "term", false, "run in the terminal instead of a window")
	flags.BoolVar(&opts.debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.quiet, "q", false, "only log errors")
	flags.BoolVar(&opts.stats, "stats", false, "launch the runtime stats server")

	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: chip8 [options] [ROM file]\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	switch flags.NArg() {
	case 0:
	case 1:
		opts.rom = flags.Arg(0)
	default:
		flags.Usage()
		return opts, fmt.Errorf("expected one ROM file, got %d arguments", flags.NArg())
	}

	if opts.speed < MinSpeed || opts.speed > MaxSpeed {
		return opts, fmt.Errorf("speed must be between %d and %d", MinSpeed, MaxSpeed)
	}
	if opts.timers <= 0 {
		return opts, errors.New("timer rate must be positive")
	}
	if opts.scale <= 0 {
		return opts, errors.New("scale must be positive")
	}

	return opts, nil
}

/// createLogger builds the logger from the debug and quiet flags.
///
func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

/// vmOptions turns the command line into VM options.
///
func vmOptions(opts optionFlags) (chip8.Options, error) {
	vmOpts := chip8.NewOptions()

	quirks, err := chip8.ParseQuirks(opts.quirks)
	if err != nil {
		return vmOpts, err
	}
	vmOpts.Quirks = quirks

	if opts.seed != 0 {
		vmOpts.Seed = opts.seed
	}

	return vmOpts, nil
}

/// run the emulator until the user quits.
///
func run(opts optionFlags, logger *log.Logger) error {
	vmOpts, err := vmOptions(opts)
	if err != nil {
		return err
	}

	if opts.stats {
		srv, err := statsview.Start(statsview.DefaultAddress)
		if err != nil {
			logger.Warn("Stats server unavailable", log.Err(err))
		} else {
			logger.Info("Stats server started", log.String("url", srv.URL()))
			defer srv.Stop()
		}
	}

	emu := NewEmulator(vmOpts, opts.speed, opts.timers, logger)

	// no ROM given, ask for one
	if opts.rom == "" && !opts.term {
		if opts.rom, err = pickROM(); err != nil {
			return err
		}
	}

	if opts.rom == "" {
		return errors.New("terminal mode needs a ROM file")
	}

	if err := emu.Load(opts.rom); err != nil {
		return err
	}

	logger.Debug("Starting emulation",
		log.Int("speed", opts.speed),
		log.Int("timers", opts.timers),
		log.String("quirks", opts.quirks))

	emu.Clock.Restart(time.Now())

	if opts.term {
		return runTerminal(emu)
	}

	return runWindow(emu, opts.scale, logger)
}
