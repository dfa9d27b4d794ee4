package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypad(t *testing.T) {
	var k Keypad

	_, ok := k.FirstPressed()
	assert.False(t, ok)

	assert.NoError(t, k.SetKey(0xB, true))
	assert.NoError(t, k.SetKey(0x3, true))
	assert.True(t, k.IsPressed(0xB))
	assert.False(t, k.IsPressed(0xA))

	// high nibble is ignored
	assert.True(t, k.IsPressed(0xF3))

	key, ok := k.FirstPressed()
	assert.True(t, ok)
	assert.Equal(t, byte(0x3), key)

	assert.NoError(t, k.SetKey(0x3, false))
	key, _ = k.FirstPressed()
	assert.Equal(t, byte(0xB), key)

	k.Reset()
	assert.False(t, k.IsPressed(0xB))
}

func TestKeypadInvalid(t *testing.T) {
	var k Keypad

	for _, code := range []int{-1, NumKeys, 0x100} {
		err := k.SetKey(code, true)
		assert.True(t, errors.Is(err, ErrInvalidKey))
	}

	_, ok := k.FirstPressed()
	assert.False(t, ok)
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		code byte
		ok   bool
	}{
		{"1", 0x1, true},
		{"4", 0xC, true},
		{"q", 0x4, true},
		{"R", 0xD, true},
		{"s", 0x8, true},
		{"F", 0xE, true},
		{"x", 0x0, true},
		{"v", 0xF, true},
		{"p", 0, false},
		{"Enter", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := KeyFromName(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}
