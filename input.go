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
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Mapping of modern keyboard to CHIP-8 keys.
	///
	KeyMap = map[sdl.Scancode]int{
		sdl.SCANCODE_X: 0x0,
		sdl.SCANCODE_1: 0x1,
		sdl.SCANCODE_2: 0x2,
		sdl.SCANCODE_3: 0x3,
		sdl.SCANCODE_Q: 0x4,
		sdl.SCANCODE_W: 0x5,
		sdl.SCANCODE_E: 0x6,
		sdl.SCANCODE_A: 0x7,
		sdl.SCANCODE_S: 0x8,
		sdl.SCANCODE_D: 0x9,
		sdl.SCANCODE_Z: 0xA,
		sdl.SCANCODE_C: 0xB,
		sdl.SCANCODE_4: 0xC,
		sdl.SCANCODE_R: 0xD,
		sdl.SCANCODE_F: 0xE,
		sdl.SCANCODE_V: 0xF,
	}
)

/// ProcessEvents from SDL and map keys to the CHIP-8 VM. Returns false once
/// the user wants to quit.
///
func ProcessEvents(emu *Emulator) bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if key, ok := KeyMap[ev.Keysym.Scancode]; ok {
				_ = emu.VM.SetKey(key, ev.Type == sdl.KEYDOWN)
				continue
			}

			// the rest only act on the initial press
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				return false
			case sdl.SCANCODE_BACKSPACE:
				if err := emu.Reset(); err != nil {
					emu.Status.Log("%s", err)
				}

				// holding control during reset will reboot paused
				if ev.Keysym.Mod&sdl.KMOD_CTRL != 0 && !emu.Clock.Paused() {
					emu.TogglePause()
				}
			case sdl.SCANCODE_F3:
				emu.loadDialog()
			case sdl.SCANCODE_LEFTBRACKET:
				emu.Slower()
			case sdl.SCANCODE_RIGHTBRACKET:
				emu.Faster()
			case sdl.SCANCODE_F5, sdl.SCANCODE_SPACE:
				emu.TogglePause()
			case sdl.SCANCODE_UP, sdl.SCANCODE_PAGEUP:
				emu.Status.ScrollUp()
			case sdl.SCANCODE_DOWN, sdl.SCANCODE_PAGEDOWN:
				emu.Status.ScrollDown()
			case sdl.SCANCODE_END:
				emu.Status.End()
			}
		}
	}

	return true
}
