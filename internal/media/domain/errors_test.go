package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaleDataError(t *testing.T) {
	err := &StaleDataError{Pos: 3}
	assert.Contains(t, err.Error(), "position 3")

	wrapped := fmt.Errorf("resolving preview: %w", err)
	var stale *StaleDataError
	assert.True(t, errors.As(wrapped, &stale))
	assert.Equal(t, 3, stale.Pos)
}

func TestInvalidStateError(t *testing.T) {
	err := &InvalidStateError{Op: "HandleAt"}
	assert.Contains(t, err.Error(), "HandleAt")

	var invalid *InvalidStateError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", err), &invalid))
}

func TestSoundNotFoundError(t *testing.T) {
	err := &SoundNotFoundError{URI: "tone://ringtone/x"}
	assert.Contains(t, err.Error(), "tone://ringtone/x")
}
