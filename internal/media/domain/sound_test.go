package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCategory_StringParseRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := rapid.SampledFrom([]Category{
			CategoryRingtone, CategoryNotification, CategoryAlarm,
		}).Draw(t, "category")
		assert.Equal(t, c, ParseCategory(c.String()))
	})
}

func TestParseCategory_Unknown(t *testing.T) {
	assert.Equal(t, CategoryUnknown, ParseCategory("music"))
	assert.Equal(t, CategoryUnknown, ParseCategory(""))
}

func TestDefaultURIs(t *testing.T) {
	assert.Equal(t, DefaultRingtoneURI, DefaultURIFor(CategoryRingtone))
	assert.Equal(t, DefaultNotificationURI, DefaultURIFor(CategoryNotification))
	assert.Equal(t, DefaultAlarmURI, DefaultURIFor(CategoryAlarm))
	assert.Equal(t, DefaultRingtoneURI, DefaultURIFor(CategoryUnknown))

	assert.True(t, IsDefaultURI(DefaultAlarmURI))
	assert.False(t, IsDefaultURI("tone://alarm/abc"))
	assert.False(t, IsDefaultURI(""))
}

func TestStreamFor(t *testing.T) {
	assert.Equal(t, StreamRing, StreamFor(CategoryRingtone))
	assert.Equal(t, StreamNotification, StreamFor(CategoryNotification))
	assert.Equal(t, StreamAlarm, StreamFor(CategoryAlarm))
	assert.Equal(t, StreamMusic, StreamFor(CategoryUnknown))
}
