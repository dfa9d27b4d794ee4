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
	"errors"
	"fmt"
)

// Fatal machine errors. Any of these halts the VM until it is reset.
var (
	ErrUnknownOpcode  = errors.New("unknown opcode")
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrOutOfBounds    = errors.New("memory access out of bounds")
)

// Input validation errors. These are rejected without touching the VM.
var (
	ErrImageTooLarge = errors.New("program image too large")
	ErrInvalidKey    = errors.New("invalid key")
)

// Fault is the error returned by Tick when the VM halts. It records where
// the machine was and what it was executing.
type Fault struct {
	// PC is the address of the instruction that faulted.
	PC uint16

	// Opcode is the raw instruction word (zero if it couldn't be fetched).
	Opcode uint16

	// Err is one of the fatal machine errors, possibly wrapped.
	Err error
}

func (f *Fault) Error() string {
	// SYS never faults, so a zero opcode means the fetch itself failed
	if f.Opcode == 0 {
		return fmt.Sprintf("%04X: %s", f.PC, f.Err)
	}

	return fmt.Sprintf("%04X: %s - %s", f.PC, Decode(f.Opcode), f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// outOfBounds wraps ErrOutOfBounds with the offending range.
func outOfBounds(addr uint16, n int) error {
	if n <= 1 {
		return fmt.Errorf("%w: #%04X", ErrOutOfBounds, addr)
	}

	return fmt.Errorf("%w: #%04X..#%04X", ErrOutOfBounds, addr, int(addr)+n-1)
}
