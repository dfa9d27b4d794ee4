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

// Package chip8 is a CHIP-8 virtual machine.
//
// The machine is driven by its host: Tick executes one instruction,
// TickTimers counts the delay and sound timers down once, and the host
// decides how often to call each. Input arrives through Keypress or SetKey
// and the display is presented with DrawScreen on any Surface.
//
// Fatal errors (an unknown opcode, a stack overflow or underflow, a memory
// access outside the address space) halt the machine with a *Fault until
// Reset. The ambiguous legacy instructions follow a Quirks policy chosen
// when the VM is created.
package chip8
