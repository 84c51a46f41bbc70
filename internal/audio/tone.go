package audio

import (
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/sashworth/tonepick/internal/log"
	"github.com/sashworth/tonepick/internal/media"
	"github.com/sashworth/tonepick/internal/media/domain"
)

// tone is a replayable preview handle over a fully buffered sound.
type tone struct {
	engine *Engine
	path   string
	buf    *beep.Buffer
	format beep.Format
	stream domain.Stream

	mu      sync.Mutex
	flags   domain.AttributeFlags
	ctrl    *beep.Ctrl
	playing bool
}

var _ media.Handle = (*tone)(nil)

// Play starts playback from the beginning, replacing any playback this
// handle already had in flight.
func (t *tone) Play() error {
	t.Stop()

	var streamer beep.Streamer = t.buf.Streamer(0, t.buf.Len())
	if t.format.SampleRate != mixerRate {
		streamer = beep.Resample(4, t.format.SampleRate, mixerRate, streamer)
	}

	t.mu.Lock()
	flags := t.flags
	t.mu.Unlock()

	if flags&(domain.FlagEnforceAudible|domain.FlagBypassMix) != 0 {
		// Forced-audible previews play at full volume regardless of the
		// mixer's attenuation.
		streamer = &effects.Volume{Streamer: streamer, Base: 2, Volume: 0, Silent: false}
	}

	done := beep.Callback(func() {
		t.mu.Lock()
		t.playing = false
		t.mu.Unlock()
	})

	ctrl := &beep.Ctrl{Streamer: beep.Seq(streamer, done)}

	t.mu.Lock()
	t.ctrl = ctrl
	t.playing = true
	t.mu.Unlock()

	log.Debug(log.CatAudio, "Preview started", "path", t.path, "stream", int(t.stream), "flags", uint32(flags))
	speaker.Play(ctrl)
	return nil
}

// Stop halts playback. Safe to call when not playing.
func (t *tone) Stop() {
	t.mu.Lock()
	ctrl := t.ctrl
	t.ctrl = nil
	t.playing = false
	t.mu.Unlock()

	if ctrl == nil {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	ctrl.Streamer = nil
	speaker.Unlock()
}

// IsPlaying reports whether the handle is currently audible.
func (t *tone) IsPlaying() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

// SetAttributeFlags applies playback attribute flags for the next Play.
func (t *tone) SetAttributeFlags(flags domain.AttributeFlags) {
	t.mu.Lock()
	t.flags = flags
	t.mu.Unlock()
}
