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

// Read-only views of the machine for hosts. Nothing here mutates the VM.

// PC is the program counter.
func (vm *VM) PC() uint16 {
	return vm.regs.PC
}

// I is the address register.
func (vm *VM) I() uint16 {
	return vm.regs.I
}

// V returns register VX for the low nibble of x.
func (vm *VM) V(x int) byte {
	return vm.regs.V[x&0xF]
}

// Registers returns a copy of V0-VF.
func (vm *VM) Registers() [NumRegisters]byte {
	return vm.regs.V
}

// SP is the current stack depth.
func (vm *VM) SP() int {
	return vm.regs.SP()
}

// Stack returns the return addresses in use, oldest first.
func (vm *VM) Stack() []uint16 {
	return vm.regs.Stack()
}

// Delay is the delay timer.
func (vm *VM) Delay() byte {
	return vm.timers.Delay()
}

// Sound is the sound timer.
func (vm *VM) Sound() byte {
	return vm.timers.Sound()
}

// Beeping is true while the sound timer is running. Hosts gate their tone
// on it.
func (vm *VM) Beeping() bool {
	return vm.timers.Sound() > 0
}

// Peek reads a byte of memory.
func (vm *VM) Peek(addr uint16) (byte, error) {
	return vm.memory.Read(addr)
}

// Memory returns a copy of the address space.
func (vm *VM) Memory() [MemorySize]byte {
	return vm.memory.Bytes()
}

// Pixel returns the display pixel at <x, y>. Coordinates wrap.
func (vm *VM) Pixel(x, y int) bool {
	return vm.display.PixelAt(x, y)
}

// Screen returns a copy of the display, row major.
func (vm *VM) Screen() [Width * Height]bool {
	return vm.display.Snapshot()
}

// IsPressed reports whether a pad key is down.
func (vm *VM) IsPressed(code byte) bool {
	return vm.keypad.IsPressed(code)
}

// Quirks is the compatibility policy the VM was built with.
func (vm *VM) Quirks() Quirks {
	return vm.quirks
}

// Cycles is the number of instructions completed since reset. Ticks spent
// waiting for a key don't count.
func (vm *VM) Cycles() uint64 {
	return vm.cycles
}

// Waiting is true when the last tick was an FX0A with no key down.
func (vm *VM) Waiting() bool {
	return vm.waiting
}

// Halted is true once a fatal error has stopped the machine.
func (vm *VM) Halted() bool {
	return vm.fault != nil
}

// Fault returns the error that halted the machine, or nil.
func (vm *VM) Fault() error {
	if vm.fault == nil {
		return nil
	}

	return vm.fault
}
