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

package chip8

const (
	/// Width of the display in pixels.
	///
	Width = 64

	/// Height of the display in pixels.
	///
	Height = 32
)

/// Surface is whatever the host presents the display on. The VM only ever
/// clears it and fills rectangles for the pixels that are set.
///
type Surface interface {
	Clear()
	FillRect(x, y, w, h int)
}

/// Display is the 64x32 monochrome frame buffer, row major.
///
type Display struct {
	pixels [Width * Height]bool
}

/// Clear turns every pixel off.
///
func (d *Display) Clear() {
	d.pixels = [Width * Height]bool{}
}

/// DrawSprite XORs sprite onto the display at <x, y>, one byte per row and
/// MSB leftmost. Coordinates and pixels running past an edge wrap around.
/// Returns true if any pixel was turned off.
///
func (d *Display) DrawSprite(x, y int, sprite []byte) bool {
	return d.draw(x, y, sprite, false)
}

/// draw is DrawSprite with optional clipping. When clipping, the origin
/// still wraps but pixels past the right or bottom edge are dropped.
///
func (d *Display) draw(x, y int, sprite []byte, clip bool) bool {
	collision := false

	// the origin always wraps
	x = wrap(x, Width)
	y = wrap(y, Height)

	for row, bits := range sprite {
		py := y + row

		if py >= Height {
			if clip {
				break
			}

			py -= Height
		}

		for col := 0; col < 8; col++ {
			if bits&(0x80>>uint(col)) == 0 {
				continue
			}

			px := x + col

			if px >= Width {
				if clip {
					break
				}

				px -= Width
			}

			// xor the pixel, note if it was turned off
			i := py*Width + px

			if d.pixels[i] {
				collision = true
			}

			d.pixels[i] = !d.pixels[i]
		}
	}

	return collision
}

/// PixelAt returns the state of a pixel. Coordinates wrap.
///
func (d *Display) PixelAt(x, y int) bool {
	return d.pixels[wrap(y, Height)*Width+wrap(x, Width)]
}

/// Snapshot returns a copy of the frame buffer.
///
func (d *Display) Snapshot() [Width * Height]bool {
	return d.pixels
}

/// Present clears the surface and fills a scale x scale block for every
/// pixel that is set. Nothing happens if scale isn't positive.
///
func (d *Display) Present(scale int, s Surface) {
	if scale <= 0 || s == nil {
		return
	}

	s.Clear()

	for i, on := range d.pixels {
		if on {
			x := i % Width
			y := i / Width

			s.FillRect(x*scale, y*scale, scale, scale)
		}
	}
}

// wrap n into [0, size).
func wrap(n, size int) int {
	n %= size

	if n < 0 {
		n += size
	}

	return n
}
