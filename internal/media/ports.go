// Package media defines the ports the picker consumes: an Enumerator over
// the sound index and playable Handles produced for previews.
package media

import "github.com/sashworth/tonepick/internal/media/domain"

// PosNotFound is the sentinel returned by Enumerator.PositionOf when the
// URI is not in the current snapshot. Negative by contract; index-conversion
// helpers must pass it through unchanged.
const PosNotFound = -1

// Handle is a stoppable, playable sound.
type Handle interface {
	// Play starts playback from the beginning, replacing any playback this
	// handle already had in flight.
	Play() error

	// Stop halts playback. Safe to call when not playing.
	Stop()

	// IsPlaying reports whether the handle is currently audible.
	IsPlaying() bool

	// SetAttributeFlags applies playback attribute flags. Must be called
	// before Play to take effect.
	SetAttributeFlags(flags domain.AttributeFlags)
}

// Enumerator supplies the ordered candidate list for one sound category and
// resolves rows to URIs and playable handles. Implementations are
// synchronous and local; the only recoverable failures from HandleAt are
// domain.StaleDataError and domain.InvalidStateError.
type Enumerator interface {
	// SetCategory selects the category and takes a fresh ordered snapshot
	// of its candidates. Must be called before any row operation.
	SetCategory(c domain.Category) error

	// Candidates returns the snapshot taken by SetCategory.
	Candidates() ([]domain.Sound, error)

	// PositionOf returns the native index of uri in the snapshot, or
	// PosNotFound.
	PositionOf(uri string) int

	// URIAt returns the URI of the candidate at the native index.
	URIAt(pos int) (string, error)

	// HandleAt returns a playable handle for the candidate at the native
	// index. The enumerator remembers the handle so StopCurrent can stop it.
	HandleAt(pos int) (Handle, error)

	// PreferredStream returns the volume stream previews should play on.
	PreferredStream() domain.Stream

	// StopCurrent stops the most recent handle produced by HandleAt.
	StopCurrent()

	// Deactivate invalidates the snapshot; subsequent HandleAt calls fail
	// with domain.StaleDataError until SetCategory is called again.
	Deactivate()
}

// HandleOpener opens a playable handle directly from a URI, outside the
// enumerator's snapshot. The picker uses it for the default item, whose
// handle the enumerator does not manage.
type HandleOpener interface {
	OpenURI(uri string) (Handle, error)
}
