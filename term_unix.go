//go:build linux || darwin
// +build linux darwin

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
	"os"

	"github.com/pkg/term"
	"golang.org/x/sys/unix"
)

// rawTerm is the controlling terminal in raw mode. file is a second handle
// on the same device, used for the window size ioctl.
type rawTerm struct {
	*term.Term
	file *os.File
}

const ttyPath = "/dev/tty"

// openTerminal opens the controlling terminal in raw mode.
func openTerminal() (tty, error) {
	f, err := os.OpenFile(ttyPath, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}

	t, err := term.Open(ttyPath, term.RawMode)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("opening terminal: %w", err)
	}

	return &rawTerm{Term: t, file: f}, nil
}

// Size returns the columns and rows of the terminal that was opened, even
// when stdout is redirected.
func (t *rawTerm) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(t.file.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}

	return int(ws.Col), int(ws.Row), nil
}

// Close restores the terminal mode before closing it.
func (t *rawTerm) Close() error {
	var err error
	if t.Term != nil {
		err = t.Term.Restore()
		if cerr := t.Term.Close(); err == nil {
			err = cerr
		}
	}

	if cerr := t.file.Close(); err == nil {
		err = cerr
	}

	return err
}
