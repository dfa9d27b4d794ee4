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
)

const (
	/// NumRegisters is the count of V registers. VF doubles as the flag.
	///
	NumRegisters = 16

	/// StackDepth is how many return addresses can be pushed.
	///
	StackDepth = 16

	/// VF is the index of the flag register.
	///
	VF = 0xF
)

/// Registers holds the V registers, the address register, the program
/// counter and the call stack.
///
type Registers struct {
	/// V are the 16 general purpose registers.
	///
	V [NumRegisters]byte

	/// I is the address register.
	///
	I uint16

	/// PC is the program counter.
	///
	PC uint16

	// return addresses; sp is the number in use
	stack [StackDepth]uint16
	sp    int
}

/// Reset clears every register and empties the stack. PC points at the
/// start of the program.
///
func (r *Registers) Reset() {
	*r = Registers{PC: ProgramStart}
}

/// Push a return address.
///
func (r *Registers) Push(addr uint16) error {
	if r.sp == StackDepth {
		return fmt.Errorf("%w: call at #%04X exceeds %d levels", ErrStackOverflow, r.PC, StackDepth)
	}

	r.stack[r.sp] = addr
	r.sp++

	return nil
}

/// Pop the most recent return address.
///
func (r *Registers) Pop() (uint16, error) {
	if r.sp == 0 {
		return 0, ErrStackUnderflow
	}

	r.sp--

	return r.stack[r.sp], nil
}

/// SP is the number of return addresses on the stack.
///
func (r *Registers) SP() int {
	return r.sp
}

/// Stack returns a copy of the return addresses in use, oldest first.
///
func (r *Registers) Stack() []uint16 {
	return append([]uint16(nil), r.stack[:r.sp]...)
}

// flag converts a condition into a VF value.
func flag(b bool) byte {
	if b {
		return 1
	}

	return 0
}
