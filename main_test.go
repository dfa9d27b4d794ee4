package main

import (
	"testing"

	"github.com/massung/chip8-vm/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestReadArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    optionFlags
		wantErr bool
	}{
		{
			name: "defaults",
			args: []string{"pong.ch8"},
			want: optionFlags{rom: "pong.ch8", speed: 500, timers: 60, scale: 10, quirks: "default"},
		},
		{
			name: "no rom",
			args: []string{},
			want: optionFlags{speed: 500, timers: 60, scale: 10, quirks: "default"},
		},
		{
			name: "terminal",
			args: []string{"-term", "-speed", "1000", "-quirks", "cosmac", "-seed", "7", "brix.ch8"},
			want: optionFlags{rom: "brix.ch8", speed: 1000, timers: 60, scale: 10, quirks: "cosmac", seed: 7, term: true},
		},
		{
			name:    "two roms",
			args:    []string{"a.ch8", "b.ch8"},
			wantErr: true,
		},
		{
			name:    "speed too low",
			args:    []string{"-speed", "1", "a.ch8"},
			wantErr: true,
		},
		{
			name:    "bad scale",
			args:    []string{"-scale", "0", "a.ch8"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-bogus", "a.ch8"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := readArguments(tt.args)
			if tt.wantErr {
				assert.True(t, err != nil)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, opts)
		})
	}
}

func TestVMOptions(t *testing.T) {
	opts, err := readArguments([]string{"-quirks", "chip48", "-seed", "42", "a.ch8"})
	assert.NoError(t, err)

	vmOpts, err := vmOptions(opts)
	assert.NoError(t, err)
	assert.Equal(t, chip8.CHIP48Quirks(), vmOpts.Quirks)
	assert.Equal(t, int64(42), vmOpts.Seed)

	opts.quirks = "superchip-2000"
	_, err = vmOptions(opts)
	assert.True(t, err != nil)
}
