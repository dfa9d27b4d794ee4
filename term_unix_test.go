//go:build linux || darwin
// +build linux darwin

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"golang.org/x/sys/unix"
)

func TestRawTermSizeUsesOwnFile(t *testing.T) {
	// a plain file has no window size, whatever stdout is attached to
	f, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	assert.NoError(t, err)

	rt := &rawTerm{file: f}
	_, _, err = rt.Size()
	assert.True(t, errors.Is(err, unix.ENOTTY), "size of a regular file")

	assert.NoError(t, rt.Close())
}
