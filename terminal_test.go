package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestHeldKeys(t *testing.T) {
	start := time.Unix(1000, 0)
	keys := &heldKeys{hold: 100 * time.Millisecond}

	keys.Press(0x4, start)
	keys.Press(0xA, start.Add(50*time.Millisecond))

	assert.Equal(t, 0, len(keys.Expired(start.Add(99*time.Millisecond))))
	assert.Equal(t, string([]byte{0x4}), string(keys.Expired(start.Add(100*time.Millisecond))))

	// repeats extend the hold
	keys.Press(0xA, start.Add(120*time.Millisecond))
	assert.Equal(t, 0, len(keys.Expired(start.Add(200*time.Millisecond))))
	assert.Equal(t, string([]byte{0xA}), string(keys.Expired(start.Add(220*time.Millisecond))))

	// released keys aren't reported twice
	assert.Equal(t, 0, len(keys.Expired(start.Add(time.Second))))
}

func TestHandleInput(t *testing.T) {
	emu := newTestEmulator(t)
	keys := &heldKeys{hold: keyHold}
	now := time.Unix(1000, 0)

	assert.NoError(t, handleInput(emu, keys, 'w', now))
	assert.True(t, emu.VM.IsPressed(0x5))
	assert.Equal(t, string([]byte{0x5}), string(keys.Expired(now.Add(keyHold))))

	// not a pad key
	assert.NoError(t, handleInput(emu, keys, 'p', now))
	assert.Equal(t, 0, len(keys.Expired(now.Add(keyHold))))

	assert.NoError(t, handleInput(emu, keys, keySpace, now))
	assert.True(t, emu.Clock.Paused())

	assert.NoError(t, handleInput(emu, keys, ']', now))
	assert.Equal(t, 1000, emu.Clock.Speed)

	err := handleInput(emu, keys, keyEscape, now)
	assert.True(t, errors.Is(err, errQuit))
	err = handleInput(emu, keys, keyCtrlC, now)
	assert.True(t, errors.Is(err, errQuit))
}

func TestDrawTerminal(t *testing.T) {
	emu := newTestEmulator(t)
	emu.Status.Log("Loaded PONG")

	var buf bytes.Buffer
	var screen TextScreen
	assert.NoError(t, drawTerminal(&buf, emu, &screen, 2))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1b[H"))
	assert.True(t, strings.Contains(out, "Loaded PONG\x1b[K\r\n"))

	// 16 screen rows and 2 status rows
	assert.Equal(t, 18, strings.Count(out, "\r\n"))
}

func TestHandleInputScrollsStatus(t *testing.T) {
	emu := newTestEmulator(t)
	emu.Status = NewStatusLog(10)
	for _, line := range []string{"a", "b", "c", "d"} {
		emu.Status.Log("%s", line)
	}

	keys := &heldKeys{hold: keyHold}
	now := time.Unix(1000, 0)

	tests := []struct {
		key   byte
		want  string
		title string
	}{
		{keyScrollUp, "b|c", "CHIP-8 [c]"},
		{keyScrollUp, "a|b", "CHIP-8 [b]"},
		{keyScrollDown, "b|c", "CHIP-8 [c]"},
		{keyScrollEnd, "c|d", "CHIP-8 [d]"},
	}

	for _, tt := range tests {
		assert.NoError(t, handleInput(emu, keys, tt.key, now))
		assert.Equal(t, tt.want, strings.Join(emu.Status.Window(2), "|"))
		assert.Equal(t, tt.title, windowTitle(emu))
	}

	// scrolled back, new lines don't move the view
	assert.NoError(t, handleInput(emu, keys, keyScrollUp, now))
	emu.Status.Log("e")
	assert.Equal(t, "b|c", strings.Join(emu.Status.Window(2), "|"))

	var buf bytes.Buffer
	var screen TextScreen
	assert.NoError(t, drawTerminal(&buf, emu, &screen, 2))
	assert.True(t, strings.Contains(buf.String(), "c\x1b[K\r\n"))
	assert.False(t, strings.Contains(buf.String(), "e\x1b[K\r\n"))

	// scroll keys aren't pad keys
	assert.Equal(t, 0, len(keys.Expired(now.Add(keyHold))))
}

// endlessReader never runs out of input.
type endlessReader struct{}

func (endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'x'
	}
	return len(p), nil
}

func TestReadInputStopsOnDone(t *testing.T) {
	input := make(chan byte)
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		readInput(endlessReader{}, input, done)
		close(finished)
	}()

	assert.Equal(t, byte('x'), <-input)
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("reader still blocked after done was closed")
	}

	// input is closed once the reader returns
	for range input {
	}
}

func TestReadInputClosesOnError(t *testing.T) {
	input := make(chan byte, 16)
	done := make(chan struct{})
	defer close(done)

	readInput(io.MultiReader(strings.NewReader("ab"), errReader{}), input, done)

	var got []byte
	for b := range input {
		got = append(got, b)
	}
	assert.Equal(t, "ab", string(got))
}

// errReader fails every read.
type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}
