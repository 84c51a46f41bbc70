package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Classic Bell", "classic_bell"},
		{"Bell Tone #1", "bell_tone__1"},
		{"soft-chime", "soft_chime"},
		{"Ümlaut", "_mlaut"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitize(tt.in), tt.in)
	}
}

func TestString_ReplacesKnownTitle(t *testing.T) {
	n := New("en", "title")
	assert.Equal(t, "Classic Bell", n.String("title", "classic bell"))
}

func TestString_UnknownTitlePassesThrough(t *testing.T) {
	n := New("en", "title")
	assert.Equal(t, "My Custom Tone", n.String("title", "My Custom Tone"))
}

func TestString_OtherColumnsPassThrough(t *testing.T) {
	n := New("en", "title")
	assert.Equal(t, "classic bell", n.String("uri", "classic bell"))
}

func TestString_CachedLookupIsStable(t *testing.T) {
	n := New("en", "title")
	first := n.String("title", "soft chime")
	second := n.String("title", "soft chime")
	assert.Equal(t, "Soft Chime", first)
	assert.Equal(t, first, second)
}

func TestNew_MissingCatalogDisablesLocalization(t *testing.T) {
	n := New("xx", "title")
	assert.Equal(t, "classic bell", n.String("title", "classic bell"),
		"missing catalog passes everything through")
	assert.Equal(t, "fallback", n.Label("ringtone_default", "fallback"))
}

func TestLabel(t *testing.T) {
	n := New("en", "title")
	assert.Equal(t, "Default ringtone", n.Label("ringtone_default", "x"))
	assert.Equal(t, "None", n.Label("ringtone_silent", "x"))
	assert.Equal(t, "fallback", n.Label("does_not_exist", "fallback"))
}

func TestGermanCatalog(t *testing.T) {
	n := New("de", "title")
	assert.NotEqual(t, "classic bell", n.String("title", "classic bell"),
		"the de catalog carries its own sound names")
}
