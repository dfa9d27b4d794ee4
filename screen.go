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

/// Screen colors.
///
var (
	offColor = sdl.Color{R: 143, G: 145, B: 133, A: 255}
	onColor  = sdl.Color{R: 17, G: 29, B: 43, A: 255}
)

/// Screen presents the CHIP-8 display on an SDL renderer, offset inside
/// the window.
///
type Screen struct {
	renderer *sdl.Renderer

	/// Area of the window the display covers.
	///
	area sdl.Rect
}

/// NewScreen draws in the w x h area at <x, y> of renderer.
///
func NewScreen(renderer *sdl.Renderer, x, y, w, h int32) *Screen {
	return &Screen{
		renderer: renderer,
		area:     sdl.Rect{X: x, Y: y, W: w, H: h},
	}
}

/// Clear the screen to the off color and get ready to draw pixels.
///
func (s *Screen) Clear() {
	_ = s.renderer.SetDrawColor(offColor.R, offColor.G, offColor.B, offColor.A)
	_ = s.renderer.FillRect(&s.area)

	// set the pixel color
	_ = s.renderer.SetDrawColor(onColor.R, onColor.G, onColor.B, onColor.A)
}

/// FillRect draws a block of set pixels.
///
func (s *Screen) FillRect(x, y, w, h int) {
	_ = s.renderer.FillRect(&sdl.Rect{
		X: s.area.X + int32(x),
		Y: s.area.Y + int32(y),
		W: int32(w),
		H: int32(h),
	})
}
