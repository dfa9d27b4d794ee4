package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		raw uint16
		op  Op
		s   string
	}{
		{0x00E0, OpCLS, "CLS"},
		{0x00EE, OpRET, "RET"},
		{0x0000, OpSYS, "SYS    #0000"},
		{0x0123, OpSYS, "SYS    #0123"},
		{0x1ABC, OpJP, "JP     #0ABC"},
		{0x2ABC, OpCALL, "CALL   #0ABC"},
		{0x3A12, OpSEByte, "SE     VA, #12"},
		{0x4A12, OpSNEByte, "SNE    VA, #12"},
		{0x5AB0, OpSEReg, "SE     VA, VB"},
		{0x6A12, OpLDByte, "LD     VA, #12"},
		{0x7A12, OpADDByte, "ADD    VA, #12"},
		{0x8AB0, OpLDReg, "LD     VA, VB"},
		{0x8AB1, OpOR, "OR     VA, VB"},
		{0x8AB2, OpAND, "AND    VA, VB"},
		{0x8AB3, OpXOR, "XOR    VA, VB"},
		{0x8AB4, OpADDReg, "ADD    VA, VB"},
		{0x8AB5, OpSUB, "SUB    VA, VB"},
		{0x8AB6, OpSHR, "SHR    VA"},
		{0x8AB7, OpSUBN, "SUBN   VA, VB"},
		{0x8ABE, OpSHL, "SHL    VA"},
		{0x9AB0, OpSNEReg, "SNE    VA, VB"},
		{0xA123, OpLDI, "LD     I, #0123"},
		{0xB123, OpJPV0, "JP     V0, #0123"},
		{0xCA0F, OpRND, "RND    VA, #0F"},
		{0xDAB5, OpDRW, "DRW    VA, VB, 5"},
		{0xEA9E, OpSKP, "SKP    VA"},
		{0xEAA1, OpSKNP, "SKNP   VA"},
		{0xFA07, OpLDVxDT, "LD     VA, DT"},
		{0xFA0A, OpLDVxK, "LD     VA, K"},
		{0xFA15, OpLDDTVx, "LD     DT, VA"},
		{0xFA18, OpLDSTVx, "LD     ST, VA"},
		{0xFA1E, OpADDI, "ADD    I, VA"},
		{0xFA29, OpLDF, "LD     F, VA"},
		{0xFA33, OpLDB, "LD     B, VA"},
		{0xFA55, OpSave, "LD     [I], VA"},
		{0xFA65, OpRestore, "LD     VA, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			inst := Decode(tt.raw)
			assert.Equal(t, tt.op, inst.Op)
			assert.Equal(t, tt.raw, inst.Raw)
			assert.Equal(t, tt.s, inst.String())
		})
	}
}

func TestDecodeOperands(t *testing.T) {
	inst := Decode(0xD7A3)

	assert.Equal(t, byte(0x7), inst.X)
	assert.Equal(t, byte(0xA), inst.Y)
	assert.Equal(t, byte(0x3), inst.N)
	assert.Equal(t, byte(0xA3), inst.NN)
	assert.Equal(t, uint16(0x7A3), inst.NNN)
}

func TestDecodeUnknown(t *testing.T) {
	for _, raw := range []uint16{0x5001, 0x800F, 0x8008, 0x9001, 0xE000, 0xE09F, 0xF000, 0xF0FF, 0xFF56} {
		inst := Decode(raw)
		assert.Equal(t, OpUnknown, inst.Op)
		assert.Equal(t, "??", inst.Op.String())
	}
}

func TestDecodeDeterministic(t *testing.T) {
	for raw := 0; raw <= 0xFFFF; raw++ {
		a := Decode(uint16(raw))
		b := Decode(uint16(raw))

		if a != b {
			t.Fatalf("decode of #%04X is not deterministic: %v != %v", raw, a, b)
		}
	}
}
