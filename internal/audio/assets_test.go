package audio

import (
	"bytes"
	"testing"

	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinSounds_DecodeAsWAV(t *testing.T) {
	sounds, err := BuiltinSounds()
	require.NoError(t, err)
	require.NotEmpty(t, sounds)

	for _, s := range sounds {
		t.Run(s.Name, func(t *testing.T) {
			streamer, format, err := wav.Decode(bytes.NewReader(s.Data))
			require.NoError(t, err)
			defer streamer.Close()

			assert.Positive(t, int(format.SampleRate))
			assert.Positive(t, streamer.Len(), "chime must carry samples")
			assert.NotContains(t, s.Name, ".", "names are extension-free")
		})
	}
}

func TestBuiltinSounds_StableSet(t *testing.T) {
	sounds, err := BuiltinSounds()
	require.NoError(t, err)

	var names []string
	for _, s := range sounds {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"alarm_pulse", "classic_bell", "soft_chime"}, names)
}

func TestDecode_RejectsUnknownExtension(t *testing.T) {
	_, _, err := decode("sound.xyz", nil)
	assert.Error(t, err)
}
