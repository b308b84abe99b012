package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCause = errors.New("cause")

func TestWrap(t *testing.T) {
	t.Run("keeps the cause reachable", func(t *testing.T) {
		err := Wrap(errCause, CodeInvalidInput, "bad code")
		require.ErrorIs(t, err, errCause)
		assert.Equal(t, "bad code", err.Error())
		assert.True(t, HasCode(err, CodeInvalidInput))
	})

	t.Run("falls back to cause message", func(t *testing.T) {
		err := Wrap(errCause, CodeInternal, "")
		assert.Equal(t, "cause", err.Error())
	})
}

func TestHasCode(t *testing.T) {
	inner := New(CodeNotFound, "missing")
	outer := Wrap(inner, CodeInternal, "lookup failed")

	assert.True(t, HasCode(outer, CodeInternal))
	assert.True(t, HasCode(outer, CodeNotFound), "inner codes are visible through wrapping")
	assert.False(t, HasCode(outer, CodeInvalidInput))
	assert.False(t, HasCode(nil, CodeInternal))
	assert.False(t, HasCode(errCause, CodeInternal))

	wrappedByFmt := fmt.Errorf("context: %w", inner)
	assert.True(t, Is(wrappedByFmt, CodeNotFound))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotFound, CodeOf(New(CodeNotFound, "x")))
	assert.Equal(t, CodeInternal, CodeOf(errCause))
}
