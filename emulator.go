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
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/massung/chip8-vm/chip8"
	"github.com/retroenv/retrogolib/log"
)

/// Emulator is a VM with its pacing and status, shared by the front-ends.
///
type Emulator struct {
	VM     *chip8.VM
	Clock  *Clock
	Status *StatusLog

	/// File is the path of the loaded ROM.
	///
	File string

	logger *log.Logger
}

/// NewEmulator wraps a fresh VM.
///
func NewEmulator(opts chip8.Options, speed, timerRate int, logger *log.Logger) *Emulator {
	opts.Logger = logger

	return &Emulator{
		VM:     chip8.New(opts),
		Clock:  NewClock(speed, timerRate),
		Status: NewStatusLog(100),
		logger: logger,
	}
}

/// Load a ROM from disk and boot it. On error the VM is left as it was.
///
func (emu *Emulator) Load(path string) error {
	program, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}

	if len(program) > chip8.MemorySize-chip8.ProgramStart {
		return fmt.Errorf("loading %s: %w", filepath.Base(path), chip8.ErrImageTooLarge)
	}

	emu.VM.Reset()

	if err := emu.VM.LoadGame(program); err != nil {
		return fmt.Errorf("loading %s: %w", filepath.Base(path), err)
	}

	emu.File = path
	emu.Clock.Restart(time.Now())

	emu.Status.Log("Loaded %s (%d bytes)", filepath.Base(path), len(program))
	emu.logger.Info("ROM loaded", log.String("file", path), log.Int("size", len(program)))

	return nil
}

/// Reset reboots the loaded ROM.
///
func (emu *Emulator) Reset() error {
	if emu.File == "" {
		emu.VM.Reset()
		return nil
	}

	return emu.Load(emu.File)
}

/// TogglePause pauses or resumes emulation.
///
func (emu *Emulator) TogglePause() {
	paused := !emu.Clock.Paused()
	emu.Clock.SetPaused(paused, time.Now())

	if paused {
		emu.Status.Log("Paused")
	} else {
		emu.Status.Log("Running")
	}
}

/// Faster doubles the processor speed.
///
func (emu *Emulator) Faster() {
	emu.Clock.IncSpeed()
	emu.Status.Log("Speed %d", emu.Clock.Speed)
}

/// Slower halves the processor speed.
///
func (emu *Emulator) Slower() {
	emu.Clock.DecSpeed()
	emu.Status.Log("Speed %d", emu.Clock.Speed)
}

/// Update runs the VM up to now. A fault pauses emulation and is reported on
/// the status log; it isn't an error for the front-end, which keeps running
/// so the user can reset or load another ROM.
///
func (emu *Emulator) Update(now time.Time) {
	err := emu.Clock.Advance(emu.VM, now)
	if err == nil {
		return
	}

	var fault *chip8.Fault
	if errors.As(err, &fault) {
		emu.Status.Log("Halted: %s", fault)
	} else {
		emu.Status.Log("Halted: %s", err)
	}

	emu.Clock.SetPaused(true, now)
}
