//go:build !statsview
// +build !statsview

package statsview

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStartWithoutTag(t *testing.T) {
	srv, err := Start(DefaultAddress)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.True(t, srv == nil)

	// a nil server is safe to stop
	srv.Stop()
	assert.Equal(t, "", srv.URL())
}
