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
	/// MemorySize is the number of addressable bytes.
	///
	MemorySize = 0x1000

	/// ProgramStart is where programs are loaded and execution begins.
	/// Everything below it is reserved for the interpreter (the font).
	///
	ProgramStart = 0x200
)

/// Memory is the flat 4K address space of the CHIP-8.
///
type Memory struct {
	bytes [MemorySize]byte
}

/// NewMemory returns memory with the font already in place.
///
func NewMemory() *Memory {
	m := &Memory{}
	m.Reset()

	return m
}

/// Reset zeroes all of memory and rewrites the font.
///
func (m *Memory) Reset() {
	m.bytes = [MemorySize]byte{}

	// the font is the only thing in the reserved area
	copy(m.bytes[FontAddress:], Font[:])
}

/// LoadProgram copies a program image into memory at ProgramStart. Nothing
/// is written if the image doesn't fit.
///
func (m *Memory) LoadProgram(program []byte) error {
	if len(program) > MemorySize-ProgramStart {
		return fmt.Errorf("%w: %d bytes, %d available", ErrImageTooLarge, len(program), MemorySize-ProgramStart)
	}

	copy(m.bytes[ProgramStart:], program)

	return nil
}

/// Read a single byte.
///
func (m *Memory) Read(addr uint16) (byte, error) {
	s, err := m.span(addr, 1)
	if err != nil {
		return 0, err
	}

	return s[0], nil
}

/// Write a single byte. The reserved area below ProgramStart is read-only
/// to programs.
///
func (m *Memory) Write(addr uint16, b byte) error {
	s, err := m.writeSpan(addr, 1)
	if err != nil {
		return err
	}

	s[0] = b

	return nil
}

/// Bytes returns a copy of the whole address space.
///
func (m *Memory) Bytes() [MemorySize]byte {
	return m.bytes
}

/// span returns the n bytes at addr, or an error if any of them are past
/// the end of memory. The slice aliases memory.
///
func (m *Memory) span(addr uint16, n int) ([]byte, error) {
	if n < 0 || int(addr)+n > MemorySize {
		return nil, outOfBounds(addr, n)
	}

	return m.bytes[int(addr) : int(addr)+n], nil
}

/// writeSpan is span for writes, which must also stay out of the font.
///
func (m *Memory) writeSpan(addr uint16, n int) ([]byte, error) {
	if addr < ProgramStart {
		return nil, fmt.Errorf("%w: #%04X is reserved", ErrOutOfBounds, addr)
	}

	return m.span(addr, n)
}
