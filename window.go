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
	"fmt"
	"path/filepath"
	"time"

	"github.com/massung/chip8-vm/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

/// Border around the display, in window pixels.
///
const border = 8

/// runWindow is the SDL front-end. It returns when the window is closed.
///
func runWindow(emu *Emulator, scale int, logger *log.Logger) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}
	defer sdl.Quit()

	// create the main window and renderer
	w := int32(chip8.Width*scale + border*2)
	h := int32(chip8.Height*scale + border*2)

	window, renderer, err := sdl.CreateWindowAndRenderer(w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer window.Destroy()
	defer renderer.Destroy()

	screen := NewScreen(renderer, border, border, w-border*2, h-border*2)

	// no sound is not fatal
	tone, err := OpenTone()
	if err != nil {
		logger.Warn("Audio disabled", log.Err(err))
	} else {
		defer tone.Close()
	}

	title := ""

	// refresh rate of the window, the VM runs on its own clock
	video := time.NewTicker(time.Second / 60)
	defer video.Stop()

	// loop until window closed or user quit
	for ProcessEvents(emu) {
		now := <-video.C

		emu.Update(now)

		if tone != nil {
			tone.Update(emu.VM.Beeping() && !emu.Clock.Paused())
		}

		// frame the screen
		_ = renderer.SetDrawColor(32, 42, 53, 255)
		_ = renderer.Clear()

		emu.VM.DrawScreen(scale, screen)
		renderer.Present()

		if s := windowTitle(emu); s != title {
			title = s
			window.SetTitle(title)
		}
	}

	return nil
}

/// windowTitle shows the ROM and the status line at the log's read
/// position (the newest unless scrolled back).
///
func windowTitle(emu *Emulator) string {
	title := "CHIP-8"
	if emu.File != "" {
		title += " - " + filepath.Base(emu.File)
	}

	if lines := emu.Status.Window(1); len(lines) > 0 {
		title += " [" + lines[0] + "]"
	}

	return title
}
