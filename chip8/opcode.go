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

/// Op identifies the operation an instruction word decodes to.
///
type Op uint8

/// Every CHIP-8 operation. OpUnknown is any word that doesn't decode.
///
const (
	OpUnknown  Op = iota
	OpSYS         // 0NNN
	OpCLS         // 00E0
	OpRET         // 00EE
	OpJP          // 1NNN
	OpCALL        // 2NNN
	OpSEByte      // 3XNN
	OpSNEByte     // 4XNN
	OpSEReg       // 5XY0
	OpLDByte      // 6XNN
	OpADDByte     // 7XNN
	OpLDReg       // 8XY0
	OpOR          // 8XY1
	OpAND         // 8XY2
	OpXOR         // 8XY3
	OpADDReg      // 8XY4
	OpSUB         // 8XY5
	OpSHR         // 8XY6
	OpSUBN        // 8XY7
	OpSHL         // 8XYE
	OpSNEReg      // 9XY0
	OpLDI         // ANNN
	OpJPV0        // BNNN
	OpRND         // CXNN
	OpDRW         // DXYN
	OpSKP         // EX9E
	OpSKNP        // EXA1
	OpLDVxDT      // FX07
	OpLDVxK       // FX0A
	OpLDDTVx      // FX15
	OpLDSTVx      // FX18
	OpADDI        // FX1E
	OpLDF         // FX29
	OpLDB         // FX33
	OpSave        // FX55
	OpRestore     // FX65
)

var mnemonics = [...]string{
	OpUnknown: "??",
	OpSYS:     "SYS",
	OpCLS:     "CLS",
	OpRET:     "RET",
	OpJP:      "JP",
	OpCALL:    "CALL",
	OpSEByte:  "SE",
	OpSNEByte: "SNE",
	OpSEReg:   "SE",
	OpLDByte:  "LD",
	OpADDByte: "ADD",
	OpLDReg:   "LD",
	OpOR:      "OR",
	OpAND:     "AND",
	OpXOR:     "XOR",
	OpADDReg:  "ADD",
	OpSUB:     "SUB",
	OpSHR:     "SHR",
	OpSUBN:    "SUBN",
	OpSHL:     "SHL",
	OpSNEReg:  "SNE",
	OpLDI:     "LD",
	OpJPV0:    "JP",
	OpRND:     "RND",
	OpDRW:     "DRW",
	OpSKP:     "SKP",
	OpSKNP:    "SKNP",
	OpLDVxDT:  "LD",
	OpLDVxK:   "LD",
	OpLDDTVx:  "LD",
	OpLDSTVx:  "LD",
	OpADDI:    "ADD",
	OpLDF:     "LD",
	OpLDB:     "LD",
	OpSave:    "LD",
	OpRestore: "LD",
}

/// String returns the assembler mnemonic.
///
func (op Op) String() string {
	if int(op) < len(mnemonics) {
		return mnemonics[op]
	}

	return mnemonics[OpUnknown]
}

/// Instruction is a decoded instruction word. Which operand fields are
/// meaningful depends on Op.
///
type Instruction struct {
	Op Op

	/// Raw is the 16-bit word that was decoded.
	///
	Raw uint16

	/// X and Y are register operands, N is the low nibble.
	///
	X, Y, N byte

	/// NN is the low byte, NNN the 12-bit address.
	///
	NN  byte
	NNN uint16
}

/// Decode an instruction word. Decoding never fails; words that don't match
/// the table have Op == OpUnknown.
///
func Decode(raw uint16) Instruction {
	inst := Instruction{
		Raw: raw,
		X:   byte(raw >> 8 & 0xF),
		Y:   byte(raw >> 4 & 0xF),
		N:   byte(raw & 0xF),
		NN:  byte(raw & 0xFF),
		NNN: raw & 0xFFF,
	}

	switch raw >> 12 {
	case 0x0:
		switch raw {
		case 0x00E0:
			inst.Op = OpCLS
		case 0x00EE:
			inst.Op = OpRET
		default:
			inst.Op = OpSYS
		}
	case 0x1:
		inst.Op = OpJP
	case 0x2:
		inst.Op = OpCALL
	case 0x3:
		inst.Op = OpSEByte
	case 0x4:
		inst.Op = OpSNEByte
	case 0x5:
		if inst.N == 0 {
			inst.Op = OpSEReg
		}
	case 0x6:
		inst.Op = OpLDByte
	case 0x7:
		inst.Op = OpADDByte
	case 0x8:
		inst.Op = decodeALU(inst.N)
	case 0x9:
		if inst.N == 0 {
			inst.Op = OpSNEReg
		}
	case 0xA:
		inst.Op = OpLDI
	case 0xB:
		inst.Op = OpJPV0
	case 0xC:
		inst.Op = OpRND
	case 0xD:
		inst.Op = OpDRW
	case 0xE:
		switch inst.NN {
		case 0x9E:
			inst.Op = OpSKP
		case 0xA1:
			inst.Op = OpSKNP
		}
	case 0xF:
		inst.Op = decodeMisc(inst.NN)
	}

	return inst
}

/// 8XYN register to register operations.
///
func decodeALU(n byte) Op {
	switch n {
	case 0x0:
		return OpLDReg
	case 0x1:
		return OpOR
	case 0x2:
		return OpAND
	case 0x3:
		return OpXOR
	case 0x4:
		return OpADDReg
	case 0x5:
		return OpSUB
	case 0x6:
		return OpSHR
	case 0x7:
		return OpSUBN
	case 0xE:
		return OpSHL
	}

	return OpUnknown
}

/// FXNN timer, key, and memory operations.
///
func decodeMisc(nn byte) Op {
	switch nn {
	case 0x07:
		return OpLDVxDT
	case 0x0A:
		return OpLDVxK
	case 0x15:
		return OpLDDTVx
	case 0x18:
		return OpLDSTVx
	case 0x1E:
		return OpADDI
	case 0x29:
		return OpLDF
	case 0x33:
		return OpLDB
	case 0x55:
		return OpSave
	case 0x65:
		return OpRestore
	}

	return OpUnknown
}

/// String formats the instruction in assembler syntax.
///
func (inst Instruction) String() string {
	op := inst.Op.String()

	switch inst.Op {
	case OpCLS, OpRET:
		return op
	case OpSYS, OpJP, OpCALL:
		return fmt.Sprintf("%-6s #%04X", op, inst.NNN)
	case OpSEByte, OpSNEByte, OpLDByte, OpADDByte, OpRND:
		return fmt.Sprintf("%-6s V%X, #%02X", op, inst.X, inst.NN)
	case OpSEReg, OpSNEReg, OpLDReg, OpOR, OpAND, OpXOR, OpADDReg, OpSUB, OpSUBN:
		return fmt.Sprintf("%-6s V%X, V%X", op, inst.X, inst.Y)
	case OpSHR, OpSHL, OpSKP, OpSKNP:
		return fmt.Sprintf("%-6s V%X", op, inst.X)
	case OpLDI:
		return fmt.Sprintf("%-6s I, #%04X", op, inst.NNN)
	case OpJPV0:
		return fmt.Sprintf("%-6s V0, #%04X", op, inst.NNN)
	case OpDRW:
		return fmt.Sprintf("%-6s V%X, V%X, %d", op, inst.X, inst.Y, inst.N)
	case OpLDVxDT:
		return fmt.Sprintf("%-6s V%X, DT", op, inst.X)
	case OpLDVxK:
		return fmt.Sprintf("%-6s V%X, K", op, inst.X)
	case OpLDDTVx:
		return fmt.Sprintf("%-6s DT, V%X", op, inst.X)
	case OpLDSTVx:
		return fmt.Sprintf("%-6s ST, V%X", op, inst.X)
	case OpADDI:
		return fmt.Sprintf("%-6s I, V%X", op, inst.X)
	case OpLDF:
		return fmt.Sprintf("%-6s F, V%X", op, inst.X)
	case OpLDB:
		return fmt.Sprintf("%-6s B, V%X", op, inst.X)
	case OpSave:
		return fmt.Sprintf("%-6s [I], V%X", op, inst.X)
	case OpRestore:
		return fmt.Sprintf("%-6s V%X, [I]", op, inst.X)
	}

	return fmt.Sprintf("%-6s #%04X", op, inst.Raw)
}
