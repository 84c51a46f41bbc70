// Package audio implements preview playback on top of gopxl/beep.
// Sounds are decoded fully into memory at open time so a preview can be
// restarted from the beginning any number of times without re-reading disk.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/sashworth/tonepick/internal/log"
	"github.com/sashworth/tonepick/internal/media"
	"github.com/sashworth/tonepick/internal/media/domain"
)

const (
	mixerRate   = beep.SampleRate(44100)
	mixerBuffer = 100 * time.Millisecond
)

// Engine owns the speaker mixer and opens playable handles from sound files.
// One Engine serves the whole process; the speaker is initialized on first
// open.
type Engine struct {
	initOnce sync.Once
	initErr  error

	mu     sync.Mutex
	stream domain.Stream
}

// NewEngine creates an Engine. The speaker is not touched until the first
// Open call.
func NewEngine() *Engine {
	return &Engine{stream: domain.StreamMusic}
}

// SetStream selects the volume stream previews play on. Informational for
// now: the terminal has a single mixer, but the stream is logged with every
// preview so a platform layer can route it later.
func (e *Engine) SetStream(s domain.Stream) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stream = s
}

func (e *Engine) ensureSpeaker() error {
	e.initOnce.Do(func() {
		e.initErr = speaker.Init(mixerRate, mixerRate.N(mixerBuffer))
		if e.initErr != nil {
			log.ErrorErr(log.CatAudio, "Speaker init failed", e.initErr)
		}
	})
	return e.initErr
}

// Open decodes the sound file at path into a replayable handle.
// WAV, MP3, OGG/Vorbis, and FLAC are supported, chosen by extension.
func (e *Engine) Open(path string) (media.Handle, error) {
	if err := e.ensureSpeaker(); err != nil {
		return nil, fmt.Errorf("speaker unavailable: %w", err)
	}

	f, err := os.Open(path) //nolint:gosec // G304: path comes from the local sound index
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file: %w", err)
	}
	defer f.Close()

	streamer, format, err := decode(path, f)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)

	e.mu.Lock()
	stream := e.stream
	e.mu.Unlock()

	return &tone{engine: e, path: path, buf: buf, format: format, stream: stream}, nil
}

func decode(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".ogg", ".oga":
		return vorbis.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported sound format: %s", filepath.Ext(path))
	}
}
