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

import (
	"fmt"
	"strings"
)

// Quirks selects between the behaviours that differ across historical
// CHIP-8 interpreters. The zero value is none of them.
type Quirks struct {
	// ShiftUsesVY makes 8XY6 and 8XYE shift VY into VX (COSMAC VIP). Off,
	// VX is shifted in place and VY is ignored.
	ShiftUsesVY bool

	// JumpUsesVX makes BXNN jump to XNN + VX (CHIP-48). Off, BNNN jumps to
	// NNN + V0.
	JumpUsesVX bool

	// LoadStoreIncrementsI leaves I pointing past the last register
	// transferred by FX55 and FX65.
	LoadStoreIncrementsI bool

	// LogicResetsVF clears VF after 8XY1, 8XY2 and 8XY3.
	LogicResetsVF bool

	// ClipSprites drops sprite pixels that run off the right or bottom edge
	// instead of wrapping them. The sprite origin wraps either way.
	ClipSprites bool
}

// DefaultQuirks is the behaviour of most modern interpreters: shifts act on
// VX, BNNN uses V0, sprites wrap, and FX55/FX65 post-increment I.
func DefaultQuirks() Quirks {
	return Quirks{
		LoadStoreIncrementsI: true,
	}
}

// COSMACQuirks is the original COSMAC VIP interpreter.
func COSMACQuirks() Quirks {
	return Quirks{
		ShiftUsesVY:          true,
		LoadStoreIncrementsI: true,
		LogicResetsVF:        true,
		ClipSprites:          true,
	}
}

// CHIP48Quirks is the HP-48 CHIP-48 (and SCHIP) interpreter.
func CHIP48Quirks() Quirks {
	return Quirks{
		JumpUsesVX:  true,
		ClipSprites: true,
	}
}

// ParseQuirks looks up a preset by name.
func ParseQuirks(name string) (Quirks, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "modern":
		return DefaultQuirks(), nil
	case "cosmac", "vip":
		return COSMACQuirks(), nil
	case "chip48", "schip":
		return CHIP48Quirks(), nil
	}

	return Quirks{}, fmt.Errorf("unknown quirks preset: %s", name)
}
