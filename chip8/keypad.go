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

// NumKeys is the number of keys on the hex pad.
const NumKeys = 16

// Keypad is the pressed state of the 16 hex keys.
type Keypad struct {
	keys [NumKeys]bool
}

// Reset releases every key.
func (k *Keypad) Reset() {
	k.keys = [NumKeys]bool{}
}

// SetKey presses or releases a key. Codes outside 0-F are rejected.
func (k *Keypad) SetKey(code int, pressed bool) error {
	if code < 0 || code >= NumKeys {
		return fmt.Errorf("%w: %d", ErrInvalidKey, code)
	}

	k.keys[code] = pressed

	return nil
}

// IsPressed tests the key in the low nibble of code.
func (k *Keypad) IsPressed(code byte) bool {
	return k.keys[code&0xF]
}

// FirstPressed returns the lowest numbered key that is down.
func (k *Keypad) FirstPressed() (byte, bool) {
	for i, down := range k.keys {
		if down {
			return byte(i), true
		}
	}

	return 0, false
}

// keyNames maps the usual QWERTY layout onto the COSMAC VIP hex pad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var keyNames = map[string]byte{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xC,
	"q": 0x4, "w": 0x5, "e": 0x6, "r": 0xD,
	"a": 0x7, "s": 0x8, "d": 0x9, "f": 0xE,
	"z": 0xA, "x": 0x0, "c": 0xB, "v": 0xF,
}

// KeyFromName decodes a host key name (as reported by a browser or a
// terminal) into a pad code.
func KeyFromName(name string) (byte, bool) {
	code, ok := keyNames[strings.ToLower(name)]
	return code, ok
}
