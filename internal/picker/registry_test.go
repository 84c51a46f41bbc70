package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_PutTake(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Take())

	h := &fakeHandle{}
	r.Put(h)
	require.Same(t, h, r.Take())
	assert.Nil(t, r.Take(), "take empties the slot")
}

func TestRegistry_StopAndClear(t *testing.T) {
	r := NewRegistry()
	h := &fakeHandle{playing: true}
	r.Put(h)

	r.StopAndClear()
	assert.False(t, h.playing)
	assert.Nil(t, r.Take())
}

func TestRegistry_StopAndClearSkipsStopped(t *testing.T) {
	r := NewRegistry()
	h := &fakeHandle{}
	r.Put(h)

	r.StopAndClear()
	assert.Zero(t, h.stopCount, "an already-stopped handle is not stopped again")
}
