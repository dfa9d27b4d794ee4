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
	"io"
	"strings"
	"time"

	"github.com/massung/chip8-vm/chip8"
)

// A terminal never reports key releases, so a key stays down for this long
// after the last byte for it. Key repeat keeps a held key down.
const keyHold = 150 * time.Millisecond

// Control bytes read in raw mode.
const (
	keyCtrlC     = 0x03
	keyEscape    = 0x1B
	keySpace     = ' '
	keyBackspace = 0x7F

	// status log scrolling
	keyScrollUp   = ','
	keyScrollDown = '.'
	keyScrollEnd  = '/'
)

// errQuit ends the terminal loop.
var errQuit = errors.New("quit")

// tty is a terminal in raw mode.
type tty interface {
	io.ReadWriter

	// Size returns the columns and rows of the terminal.
	Size() (int, int, error)

	Close() error
}

// heldKeys releases pad keys a while after they were last typed.
type heldKeys struct {
	hold  time.Duration
	until [chip8.NumKeys]time.Time
}

// Press holds code down until now + hold.
func (h *heldKeys) Press(code byte, now time.Time) {
	h.until[code&0xF] = now.Add(h.hold)
}

// Expired returns the keys whose hold ran out, and forgets them.
func (h *heldKeys) Expired(now time.Time) []byte {
	var codes []byte

	for code, t := range h.until {
		if !t.IsZero() && !now.Before(t) {
			codes = append(codes, byte(code))
			h.until[code] = time.Time{}
		}
	}

	return codes
}

// handleInput applies one byte typed on the terminal.
func handleInput(emu *Emulator, keys *heldKeys, b byte, now time.Time) error {
	switch b {
	case keyCtrlC, keyEscape:
		return errQuit
	case keySpace:
		emu.TogglePause()
	case keyBackspace:
		if err := emu.Reset(); err != nil {
			emu.Status.Log("%s", err)
		}
	case '[':
		emu.Slower()
	case ']':
		emu.Faster()
	case keyScrollUp:
		emu.Status.ScrollUp()
	case keyScrollDown:
		emu.Status.ScrollDown()
	case keyScrollEnd:
		emu.Status.End()
	default:
		name := string(rune(b))

		if code, ok := chip8.KeyFromName(name); ok {
			emu.VM.Keypress(name, true)
			keys.Press(code, now)
		}
	}

	return nil
}

// readInput sends every byte read from r to input. It closes input and
// returns on a read error or once done is closed.
func readInput(r io.Reader, input chan<- byte, done <-chan struct{}) {
	defer close(input)

	buf := make([]byte, 16)
	for {
		select {
		case <-done:
			return
		default:
		}

		n, err := r.Read(buf)
		if err != nil {
			return
		}

		for _, b := range buf[:n] {
			select {
			case input <- b:
			case <-done:
				return
			}
		}
	}
}

// drawTerminal renders the display and the newest status lines.
func drawTerminal(w io.Writer, emu *Emulator, screen *TextScreen, statusLines int) error {
	emu.VM.DrawScreen(1, screen)

	var sb strings.Builder

	// home the cursor and redraw in place
	sb.WriteString("\x1b[H")

	for _, line := range screen.Lines() {
		sb.WriteString(line)
		sb.WriteString("\x1b[K\r\n")
	}

	status := emu.Status.Window(statusLines)
	for i := 0; i < statusLines; i++ {
		if i < len(status) {
			sb.WriteString(status[i])
		}
		sb.WriteString("\x1b[K\r\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// runTerminal is the terminal front-end. It returns when the user quits.
func runTerminal(emu *Emulator) error {
	t, err := openTerminal()
	if err != nil {
		return err
	}
	defer t.Close()

	cols, rows, err := t.Size()
	if err != nil {
		return fmt.Errorf("reading terminal size: %w", err)
	}
	if cols < chip8.Width || rows < chip8.Height/2 {
		return fmt.Errorf("terminal is %dx%d, needs at least %dx%d", cols, rows, chip8.Width, chip8.Height/2)
	}

	// status lines that fit below the screen
	statusLines := rows - chip8.Height/2 - 1
	if statusLines > 3 {
		statusLines = 3
	}

	// read keys in the background until the loop returns
	input := make(chan byte, 16)
	done := make(chan struct{})
	defer close(done)

	go readInput(t, input, done)

	// clear the screen, hide the cursor, and show it again on exit
	_, _ = io.WriteString(t, "\x1b[2J\x1b[?25l")
	defer io.WriteString(t, "\x1b[?25h\r\n")

	keys := &heldKeys{hold: keyHold}
	var screen TextScreen

	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()

	for {
		select {
		case b, ok := <-input:
			if !ok {
				return nil
			}
			if err := handleInput(emu, keys, b, time.Now()); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		case now := <-frame.C:
			for _, code := range keys.Expired(now) {
				_ = emu.VM.SetKey(int(code), false)
			}

			emu.Update(now)

			if err := drawTerminal(t, emu, &screen, statusLines); err != nil {
				return fmt.Errorf("drawing terminal: %w", err)
			}
		}
	}
}
