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

	"github.com/sqweek/dialog"
)

/// errNoROM is returned when the user closes the file dialog.
///
var errNoROM = errors.New("no ROM selected")

/// pickROM asks the user for a ROM with the native open dialog.
///
func pickROM() (string, error) {
	path, err := dialog.File().
		Title("Load CHIP-8 ROM").
		Filter("CHIP-8 ROMs", "ch8", "c8").
		Filter("All files", "*").
		Load()

	switch {
	case errors.Is(err, dialog.ErrCancelled):
		return "", errNoROM
	case err != nil:
		return "", fmt.Errorf("opening file dialog: %w", err)
	}

	return path, nil
}

/// loadDialog picks a ROM and loads it. Cancelling leaves the current one
/// running.
///
func (emu *Emulator) loadDialog() {
	path, err := pickROM()
	if err != nil {
		if !errors.Is(err, errNoROM) {
			emu.Status.Log("%s", err)
		}
		return
	}

	if err := emu.Load(path); err != nil {
		emu.Status.Log("%s", err)
	}
}
