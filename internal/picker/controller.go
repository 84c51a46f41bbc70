// Package picker implements the sound picker session: row list assembly,
// initial-check resolution, debounced preview playback, and result
// emission. It is UI-agnostic; internal/ui/picker drives it from a
// bubbletea event loop, and everything here runs on that single loop.
package picker

import (
	"errors"
	"fmt"
	"time"

	"github.com/sashworth/tonepick/internal/log"
	"github.com/sashworth/tonepick/internal/media"
	"github.com/sashworth/tonepick/internal/media/domain"
)

// PreviewDelay is the debounce applied to keyboard navigation before the
// highlighted sound is sampled. Clicks preview immediately.
const PreviewDelay = 300 * time.Millisecond

// Labeler resolves display labels for the static rows. *locale.Names
// implements it; a nil Labeler falls back to the built-in English labels.
type Labeler interface {
	Label(name, fallback string) string
}

// Controller holds the state of one picker session.
type Controller struct {
	cfg      Config
	enum     media.Enumerator
	opener   media.HandleOpener
	registry *Registry
	labels   Labeler

	rows       Rows
	clickedPos int
	sampledPos int

	// previewSeq identifies the single in-flight debounced preview. A new
	// request bumps it, implicitly cancelling any not-yet-fired one.
	previewSeq int

	// defaultHandle is created lazily on first sample of the Default row
	// and reused for the rest of the session: the enumerator does not
	// manage the default sound, so its stop-previous mechanism never
	// covers this handle.
	defaultHandle media.Handle

	// currentHandle is the playing preview, unless the playing preview is
	// the default handle.
	currentHandle media.Handle

	result Result
}

// NewController creates a controller. registry must be the process-wide
// playback registry; labels may be nil.
func NewController(cfg Config, enum media.Enumerator, opener media.HandleOpener, registry *Registry, labels Labeler) *Controller {
	return &Controller{
		cfg:        cfg.withDerivedDefaults(),
		enum:       enum,
		opener:     opener,
		registry:   registry,
		labels:     labels,
		clickedPos: PosUnknown,
		sampledPos: PosUnknown,
	}
}

// Open builds the row list and resolves the initially checked row.
// restoredPos is the clicked position saved by a previous instance, or
// PosUnknown. The resolution order is: restored click, then Default match,
// then Silent match, then enumerator lookup — a restored click always wins,
// even over a stale ExistingURI.
func (c *Controller) Open(restoredPos int) error {
	if err := c.enum.SetCategory(c.cfg.Category); err != nil {
		return fmt.Errorf("failed to enumerate %s sounds: %w", c.cfg.Category, err)
	}

	c.clickedPos = restoredPos

	var rows []Row
	if c.cfg.ShowDefault {
		rows = append(rows, Row{Kind: RowDefault, Name: c.defaultRowLabel()})
		if c.clickedPos == PosUnknown && domain.IsDefaultURI(c.cfg.ExistingURI) {
			c.clickedPos = len(rows) - 1
		}
	}
	if c.cfg.ShowSilent {
		rows = append(rows, Row{Kind: RowSilent, Name: c.label("ringtone_silent", "None")})
		if c.clickedPos == PosUnknown && c.cfg.ExistingURI == "" {
			c.clickedPos = len(rows) - 1
		}
	}
	static := len(rows)

	candidates, err := c.enum.Candidates()
	if err != nil {
		return fmt.Errorf("failed to list candidates: %w", err)
	}
	for _, s := range candidates {
		rows = append(rows, Row{Kind: RowSound, URI: s.URI, Name: s.Title})
	}
	c.rows = Rows{rows: rows, staticCount: static}

	if c.clickedPos == PosUnknown {
		c.clickedPos = c.rows.ToListPos(c.enum.PositionOf(c.cfg.ExistingURI))
	}

	// The buttonless variant has no confirmation step, so the result is
	// set preemptively and refreshed on every selection change.
	if !c.cfg.ShowOkCancel {
		c.setResultFromSelection()
	}

	log.Debug(log.CatUI, "Picker session opened",
		"category", c.cfg.Category.String(), "rows", c.rows.Len(),
		"static", static, "checked", c.clickedPos)
	return nil
}

// Config returns the derived session configuration.
func (c *Controller) Config() Config { return c.cfg }

// Rows returns the assembled row list.
func (c *Controller) Rows() Rows { return c.rows }

// Checked returns the checked list position, or PosUnknown.
func (c *Controller) Checked() int { return c.clickedPos }

// Result returns the most recently emitted result.
func (c *Controller) Result() Result { return c.result }

// Click records a row activation. It checks the row, refreshes the
// buttonless result, and requests an immediate preview. The returned seq
// must be passed to PreviewDue after the returned delay (zero here).
func (c *Controller) Click(pos int) (seq int, delay time.Duration) {
	c.clickedPos = pos
	if !c.cfg.ShowOkCancel {
		c.setResultFromSelection()
	}
	return c.schedulePreview(pos), 0
}

// Highlight records keyboard navigation onto a row. It checks the row and
// requests a debounced preview: fire PreviewDue(seq) after the returned
// delay, dropping it if a newer request superseded it first.
func (c *Controller) Highlight(pos int) (seq int, delay time.Duration) {
	c.clickedPos = pos
	seq = c.schedulePreview(pos)
	if !c.cfg.ShowOkCancel {
		c.setResultFromSelection()
	}
	return seq, PreviewDelay
}

// schedulePreview registers pos as the row to sample and supersedes any
// pending preview.
func (c *Controller) schedulePreview(pos int) int {
	c.previewSeq++
	c.sampledPos = pos
	return c.previewSeq
}

// PreviewDue fires the preview requested with the given seq. A stale seq is
// ignored: it belonged to a request that was superseded before its delay
// elapsed.
func (c *Controller) PreviewDue(seq int) {
	if seq != c.previewSeq {
		return
	}

	c.stopAnyPlaying()

	row, ok := c.rows.At(c.sampledPos)
	if !ok {
		return
	}

	var handle media.Handle
	switch row.Kind {
	case RowSilent:
		return

	case RowDefault:
		if c.defaultHandle == nil {
			h, err := c.opener.OpenURI(c.cfg.DefaultURI)
			if err != nil {
				log.Warn(log.CatAudio, "Default sound unavailable", "uri", c.cfg.DefaultURI, "error", err)
			} else {
				c.defaultHandle = h
			}
		}
		handle = c.defaultHandle
		c.currentHandle = nil

	default:
		h, err := c.enum.HandleAt(c.rows.ToEnumeratorPos(c.sampledPos))
		if err != nil {
			// Stale snapshots and invalid enumerator state degrade to
			// silence; they are never surfaced to the user.
			var stale *domain.StaleDataError
			var invalid *domain.InvalidStateError
			if !errors.As(err, &stale) && !errors.As(err, &invalid) {
				log.Warn(log.CatAudio, "Preview handle unavailable", "pos", c.sampledPos, "error", err)
			}
			h = nil
		}
		handle = h
		c.currentHandle = h
	}

	if handle != nil {
		if c.cfg.AttributeFlags != 0 {
			handle.SetAttributeFlags(c.cfg.AttributeFlags)
		}
		if err := handle.Play(); err != nil {
			log.Warn(log.CatAudio, "Preview playback failed", "pos", c.sampledPos, "error", err)
		}
	}
}

// Confirm ends the selection step. Any playing preview stops first; then
// the result is emitted from the checked row (accepted) or as a plain
// cancellation.
func (c *Controller) Confirm(accepted bool) Result {
	c.previewSeq++ // drop any pending preview
	c.stopAnyPlaying()

	if accepted {
		c.setResultFromSelection()
	} else {
		c.result = Result{}
	}
	return c.result
}

// Pause handles the session losing the foreground. Previews stop unless the
// session is retaining state for a reconfiguration.
func (c *Controller) Pause(retaining bool) {
	if !retaining {
		c.stopAnyPlaying()
	}
}

// Stop handles the session leaving the screen. Pending debounced previews
// are cancelled. When retaining for a reconfiguration, the playing handle
// moves to the registry so the successor instance can stop it; otherwise
// everything stops now.
func (c *Controller) Stop(retaining bool) {
	c.previewSeq++

	if retaining {
		c.saveAnyPlaying()
	} else {
		c.stopAnyPlaying()
	}
}

// SaveSession returns the state a successor instance needs: only the
// clicked position. Rows and the enumerator snapshot are rebuilt fresh.
func (c *Controller) SaveSession() int {
	return c.clickedPos
}

// saveAnyPlaying transfers the currently playing handle to the registry.
func (c *Controller) saveAnyPlaying() {
	if c.defaultHandle != nil && c.defaultHandle.IsPlaying() {
		c.registry.Put(c.defaultHandle)
	} else if c.currentHandle != nil && c.currentHandle.IsPlaying() {
		c.registry.Put(c.currentHandle)
	}
}

// stopAnyPlaying stops, in order: the registry's surviving handle, the
// session's default handle, and the enumerator's current handle.
func (c *Controller) stopAnyPlaying() {
	c.registry.StopAndClear()

	if c.defaultHandle != nil && c.defaultHandle.IsPlaying() {
		c.defaultHandle.Stop()
	}

	if c.enum != nil {
		c.enum.StopCurrent()
	}
}

// setResultFromSelection maps the checked row to an output URI and emits
// it. The Default row yields the configured default URI (not a resolved
// playable URI); the Silent row yields the empty URI. A selection equal to
// the existing URI emits "cancelled — no change".
func (c *Controller) setResultFromSelection() {
	var uri string
	row, ok := c.rows.At(c.clickedPos)
	switch {
	case !ok:
		uri = ""
	case row.Kind == RowDefault:
		uri = c.cfg.DefaultURI
	case row.Kind == RowSilent:
		uri = ""
	default:
		u, err := c.enum.URIAt(c.rows.ToEnumeratorPos(c.clickedPos))
		if err != nil {
			log.Warn(log.CatUI, "Selected row has no URI", "pos", c.clickedPos, "error", err)
		}
		uri = u
	}

	if uri == c.cfg.ExistingURI {
		c.result = Result{}
	} else {
		c.result = Result{Accepted: true, URI: uri}
	}
}

func (c *Controller) defaultRowLabel() string {
	switch c.cfg.Category {
	case domain.CategoryNotification:
		return c.label("notification_sound_default", "Default notification sound")
	case domain.CategoryAlarm:
		return c.label("alarm_sound_default", "Default alarm sound")
	default:
		return c.label("ringtone_default", "Default ringtone")
	}
}

func (c *Controller) label(name, fallback string) string {
	if c.labels == nil {
		return fallback
	}
	return c.labels.Label(name, fallback)
}
