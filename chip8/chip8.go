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
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

/// Options configure a new VM.
///
type Options struct {
	/// Quirks picks the variant of the ambiguous instructions.
	///
	Quirks Quirks

	/// Seed for RND. Reset reseeds with the same value, so a reset VM
	/// replays exactly like a fresh one.
	///
	Seed int64

	/// Logger receives faults (error level) and loads and resets (debug
	/// level). May be nil.
	///
	Logger *log.Logger
}

/// NewOptions returns the default quirks and a time based seed.
///
func NewOptions() Options {
	return Options{
		Quirks: DefaultQuirks(),
		Seed:   time.Now().UnixNano(),
	}
}

/// VM is a CHIP-8 virtual machine. It is driven entirely by the host: Tick
/// runs a single instruction and TickTimers steps the timers, at whatever
/// cadence the host chooses. A VM is not safe for concurrent use.
///
type VM struct {
	memory  Memory
	regs    Registers
	timers  Timers
	display Display
	keypad  Keypad

	quirks Quirks
	seed   int64
	rng    *rand.Rand
	logger *log.Logger

	// instructions completed since reset
	cycles uint64

	// true while FX0A is waiting for a key
	waiting bool

	// non-nil once the machine has halted
	fault *Fault
}

/// outcome is how an executed instruction moves the program counter.
///
type outcome int

const (
	next outcome = iota // advance past the instruction
	skip                // advance past the instruction and the one after it
	jump                // the instruction set PC itself
	wait                // not satisfied yet, execute it again next tick
)

/// New returns a freshly reset VM.
///
func New(opts Options) *VM {
	vm := &VM{
		quirks: opts.Quirks,
		seed:   opts.Seed,
		logger: opts.Logger,
	}

	vm.Reset()

	return vm
}

/// Reset the VM to its initial state: font restored, program memory,
/// registers, stack, display, keys and timers cleared, and PC at the start
/// of the program. Any fault is cleared.
///
func (vm *VM) Reset() {
	vm.memory.Reset()
	vm.regs.Reset()
	vm.timers.Reset()
	vm.display.Clear()
	vm.keypad.Reset()

	// same seed, same random numbers
	vm.rng = rand.New(rand.NewSource(vm.seed))

	vm.cycles = 0
	vm.waiting = false
	vm.fault = nil

	if vm.logger != nil {
		vm.logger.Debug("Reset")
	}
}

/// LoadGame copies a program image into memory at ProgramStart. Resetting
/// first is up to the caller. An image that doesn't fit is rejected and
/// memory is left alone.
///
func (vm *VM) LoadGame(program []byte) error {
	if err := vm.memory.LoadProgram(program); err != nil {
		return err
	}

	if vm.logger != nil {
		vm.logger.Debug("Program loaded", log.Int("size", len(program)), log.String("address", fmt.Sprintf("%04X", ProgramStart)))
	}

	return nil
}

/// Tick runs one instruction cycle. A fatal error halts the VM and is
/// returned as a *Fault, and every Tick after that returns the same fault
/// until Reset.
///
func (vm *VM) Tick() error {
	if vm.fault != nil {
		return vm.fault
	}

	pc := vm.regs.PC

	// fetch the next instruction
	raw, err := vm.fetch()
	if err != nil {
		return vm.halt(pc, 0, err)
	}

	// decode and execute it
	o, err := vm.execute(Decode(raw))
	if err != nil {
		return vm.halt(pc, raw, err)
	}

	vm.waiting = o == wait

	switch o {
	case next:
		vm.regs.PC += 2
	case skip:
		vm.regs.PC += 4
	case wait:
		return nil
	}

	vm.cycles++

	return nil
}

/// TickTimers counts the delay and sound timers down by one.
///
func (vm *VM) TickTimers() {
	vm.timers.Tick()
}

/// Keypress updates a key from a host key name (see KeyFromName). Names
/// that aren't on the pad are ignored.
///
func (vm *VM) Keypress(name string, pressed bool) {
	if code, ok := KeyFromName(name); ok {
		vm.keypad.keys[code] = pressed
	}
}

/// SetKey presses or releases a pad key by code.
///
func (vm *VM) SetKey(code int, pressed bool) error {
	return vm.keypad.SetKey(code, pressed)
}

/// DrawScreen presents the display on s, each pixel a scale x scale block.
/// The display itself is untouched.
///
func (vm *VM) DrawScreen(scale int, s Surface) {
	vm.display.Present(scale, s)
}

/// Fetch the 16-bit instruction at PC.
///
func (vm *VM) fetch() (uint16, error) {
	b, err := vm.memory.span(vm.regs.PC, 2)
	if err != nil {
		return 0, err
	}

	return uint16(b[0])<<8 | uint16(b[1]), nil
}

/// addI adds n to I, sticking at 0xFFFF instead of wrapping back into
/// low memory. Any later access through I then faults.
///
func (vm *VM) addI(n byte) {
	sum := uint32(vm.regs.I) + uint32(n)
	if sum > 0xFFFF {
		sum = 0xFFFF
	}

	vm.regs.I = uint16(sum)
}

/// halt the machine with a fault.
///
func (vm *VM) halt(pc, raw uint16, err error) error {
	vm.fault = &Fault{PC: pc, Opcode: raw, Err: err}
	vm.waiting = false

	if vm.logger != nil {
		vm.logger.Error("Machine halted", err,
			log.String("pc", fmt.Sprintf("%04X", pc)),
			log.String("opcode", fmt.Sprintf("%04X", raw)))
	}

	return vm.fault
}

/// execute a decoded instruction.
///
func (vm *VM) execute(inst Instruction) (outcome, error) {
	x, y := inst.X, inst.Y

	switch inst.Op {
	case OpSYS:
		// machine code routines aren't emulated
	case OpCLS:
		vm.cls()
	case OpRET:
		return vm.ret()
	case OpJP:
		return vm.jump(inst.NNN), nil
	case OpCALL:
		return vm.call(inst.NNN)
	case OpSEByte:
		return vm.skipIf(vm.regs.V[x] == inst.NN), nil
	case OpSNEByte:
		return vm.skipIf(vm.regs.V[x] != inst.NN), nil
	case OpSEReg:
		return vm.skipIf(vm.regs.V[x] == vm.regs.V[y]), nil
	case OpSNEReg:
		return vm.skipIf(vm.regs.V[x] != vm.regs.V[y]), nil
	case OpLDByte:
		vm.regs.V[x] = inst.NN
	case OpADDByte:
		vm.regs.V[x] += inst.NN
	case OpLDReg:
		vm.regs.V[x] = vm.regs.V[y]
	case OpOR:
		vm.logic(x, vm.regs.V[x]|vm.regs.V[y])
	case OpAND:
		vm.logic(x, vm.regs.V[x]&vm.regs.V[y])
	case OpXOR:
		vm.logic(x, vm.regs.V[x]^vm.regs.V[y])
	case OpADDReg:
		vm.addXY(x, y)
	case OpSUB:
		vm.subXY(x, y)
	case OpSUBN:
		vm.subYX(x, y)
	case OpSHR:
		vm.shr(x, y)
	case OpSHL:
		vm.shl(x, y)
	case OpLDI:
		vm.regs.I = inst.NNN
	case OpJPV0:
		return vm.jumpOffset(inst), nil
	case OpRND:
		vm.regs.V[x] = byte(vm.rng.Intn(0x100)) & inst.NN
	case OpDRW:
		return next, vm.drw(x, y, inst.N)
	case OpSKP:
		return vm.skipIf(vm.keypad.IsPressed(vm.regs.V[x])), nil
	case OpSKNP:
		return vm.skipIf(!vm.keypad.IsPressed(vm.regs.V[x])), nil
	case OpLDVxDT:
		vm.regs.V[x] = vm.timers.Delay()
	case OpLDVxK:
		return vm.loadXK(x), nil
	case OpLDDTVx:
		vm.timers.SetDelay(vm.regs.V[x])
	case OpLDSTVx:
		vm.timers.SetSound(vm.regs.V[x])
	case OpADDI:
		vm.addI(vm.regs.V[x])
	case OpLDF:
		vm.regs.I = FontSprite(vm.regs.V[x])
	case OpLDB:
		return next, vm.loadB(x)
	case OpSave:
		return next, vm.saveRegs(x)
	case OpRestore:
		return next, vm.loadRegs(x)
	default:
		return next, fmt.Errorf("%w: #%04X", ErrUnknownOpcode, inst.Raw)
	}

	return next, nil
}

/// Clear the video display memory.
///
func (vm *VM) cls() {
	vm.display.Clear()
}

/// return from subroutine.
///
func (vm *VM) ret() (outcome, error) {
	address, err := vm.regs.Pop()
	if err != nil {
		return next, err
	}

	vm.regs.PC = address

	return jump, nil
}

/// call a subroutine at address, returning to the following instruction.
///
func (vm *VM) call(address uint16) (outcome, error) {
	if err := vm.regs.Push(vm.regs.PC + 2); err != nil {
		return next, err
	}

	vm.regs.PC = address

	return jump, nil
}

/// jump to address.
///
func (vm *VM) jump(address uint16) outcome {
	vm.regs.PC = address

	return jump
}

/// jump to NNN + V0, or XNN + VX when JumpUsesVX.
///
func (vm *VM) jumpOffset(inst Instruction) outcome {
	if vm.quirks.JumpUsesVX {
		return vm.jump(inst.NNN + uint16(vm.regs.V[inst.X]))
	}

	return vm.jump(inst.NNN + uint16(vm.regs.V[0]))
}

/// skip the next instruction if cond holds.
///
func (vm *VM) skipIf(cond bool) outcome {
	if cond {
		return skip
	}

	return next
}

/// store the result of a bitwise op in vx.
///
func (vm *VM) logic(x, result byte) {
	vm.regs.V[x] = result

	if vm.quirks.LogicResetsVF {
		vm.regs.V[VF] = 0
	}
}

/// add vy to vx and set carry.
///
func (vm *VM) addXY(x, y byte) {
	sum := uint(vm.regs.V[x]) + uint(vm.regs.V[y])

	// flag is written last so VF as a destination ends with the carry
	vm.regs.V[x] = byte(sum)
	vm.regs.V[VF] = flag(sum > 0xFF)
}

/// subtract vy from vx, set carry if no borrow.
///
func (vm *VM) subXY(x, y byte) {
	vx, vy := vm.regs.V[x], vm.regs.V[y]

	vm.regs.V[x] = vx - vy
	vm.regs.V[VF] = flag(vx >= vy)
}

/// subtract vx from vy and store in vx, set carry if no borrow.
///
func (vm *VM) subYX(x, y byte) {
	vx, vy := vm.regs.V[x], vm.regs.V[y]

	vm.regs.V[x] = vy - vx
	vm.regs.V[VF] = flag(vy >= vx)
}

/// shr 1 bit into vx, set carry to the LSB before the shift.
///
func (vm *VM) shr(x, y byte) {
	src := vm.regs.V[x]
	if vm.quirks.ShiftUsesVY {
		src = vm.regs.V[y]
	}

	vm.regs.V[x] = src >> 1
	vm.regs.V[VF] = src & 1
}

/// shl 1 bit into vx, set carry to the MSB before the shift.
///
func (vm *VM) shl(x, y byte) {
	src := vm.regs.V[x]
	if vm.quirks.ShiftUsesVY {
		src = vm.regs.V[y]
	}

	vm.regs.V[x] = src << 1
	vm.regs.V[VF] = src >> 7
}

/// draw an n byte sprite at I to the display at vx, vy.
///
func (vm *VM) drw(x, y, n byte) error {
	sprite, err := vm.memory.span(vm.regs.I, int(n))
	if err != nil {
		return err
	}

	c := vm.display.draw(int(vm.regs.V[x]), int(vm.regs.V[y]), sprite, vm.quirks.ClipSprites)

	// set carry flag if any collision occurred
	vm.regs.V[VF] = flag(c)

	return nil
}

/// load vx with the next key hit. Waits (PC stays put) until one is down.
///
func (vm *VM) loadXK(x byte) outcome {
	key, ok := vm.keypad.FirstPressed()
	if !ok {
		return wait
	}

	vm.regs.V[x] = key

	return next
}

/// store the BCD of vx at I, I+1 and I+2.
///
func (vm *VM) loadB(x byte) error {
	b, err := vm.memory.writeSpan(vm.regs.I, 3)
	if err != nil {
		return err
	}

	n := vm.regs.V[x]

	b[0] = n / 100
	b[1] = n / 10 % 10
	b[2] = n % 10

	return nil
}

/// save registers v0..vx to I.
///
func (vm *VM) saveRegs(x byte) error {
	b, err := vm.memory.writeSpan(vm.regs.I, int(x)+1)
	if err != nil {
		return err
	}

	copy(b, vm.regs.V[:x+1])

	if vm.quirks.LoadStoreIncrementsI {
		vm.regs.I += uint16(x) + 1
	}

	return nil
}

/// load registers v0..vx from I.
///
func (vm *VM) loadRegs(x byte) error {
	b, err := vm.memory.span(vm.regs.I, int(x)+1)
	if err != nil {
		return err
	}

	copy(vm.regs.V[:x+1], b)

	if vm.quirks.LoadStoreIncrementsI {
		vm.regs.I += uint16(x) + 1
	}

	return nil
}
