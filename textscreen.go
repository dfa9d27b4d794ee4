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
	"strings"

	"github.com/massung/chip8-vm/chip8"
)

// TextScreen is a chip8.Surface for terminals. Each character cell holds
// two pixel rows using half block glyphs. Draw it at scale 1.
type TextScreen struct {
	pixels [chip8.Width * chip8.Height]bool
}

// Clear turns every pixel off.
func (s *TextScreen) Clear() {
	s.pixels = [chip8.Width * chip8.Height]bool{}
}

// FillRect turns on the pixels of a rectangle, clipped to the screen.
func (s *TextScreen) FillRect(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		if py < 0 || py >= chip8.Height {
			continue
		}

		for px := x; px < x+w; px++ {
			if px >= 0 && px < chip8.Width {
				s.pixels[py*chip8.Width+px] = true
			}
		}
	}
}

// Lines renders the screen as chip8.Height/2 rows of text.
func (s *TextScreen) Lines() []string {
	lines := make([]string, 0, chip8.Height/2)

	var sb strings.Builder
	for y := 0; y < chip8.Height; y += 2 {
		sb.Reset()

		for x := 0; x < chip8.Width; x++ {
			top := s.pixels[y*chip8.Width+x]
			bottom := s.pixels[(y+1)*chip8.Width+x]

			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}

		lines = append(lines, sb.String())
	}

	return lines
}
