package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRows_At(t *testing.T) {
	r := Rows{rows: []Row{
		{Kind: RowDefault, Name: "Default ringtone"},
		{Kind: RowSound, URI: "tone://ringtone/a", Name: "Alpha"},
	}, staticCount: 1}

	row, ok := r.At(1)
	assert.True(t, ok)
	assert.Equal(t, "Alpha", row.Name)

	_, ok = r.At(-1)
	assert.False(t, ok)
	_, ok = r.At(2)
	assert.False(t, ok)
}

func TestRows_PositionConversionRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		static := rapid.IntRange(0, 2).Draw(t, "static")
		r := Rows{staticCount: static}

		enumPos := rapid.IntRange(0, 1000).Draw(t, "enumPos")
		assert.Equal(t, enumPos, r.ToEnumeratorPos(r.ToListPos(enumPos)))

		listPos := rapid.IntRange(static, 1000).Draw(t, "listPos")
		assert.Equal(t, listPos, r.ToListPos(r.ToEnumeratorPos(listPos)))
	})
}

func TestRows_SentinelPassesThrough(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		static := rapid.IntRange(0, 2).Draw(t, "static")
		sentinel := rapid.IntRange(-10, -1).Draw(t, "sentinel")
		r := Rows{staticCount: static}
		assert.Equal(t, sentinel, r.ToListPos(sentinel), "negative sentinels are never offset")
	})
}
