package sqlite

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sashworth/tonepick/internal/log"
	"github.com/sashworth/tonepick/internal/media"
	"github.com/sashworth/tonepick/internal/media/domain"
)

// Opener turns an on-disk sound file into a playable handle. The audio
// package provides the real implementation; tests substitute fakes.
type Opener interface {
	Open(path string) (media.Handle, error)
}

// Localizer rewrites a raw column value, replacing index titles with
// localized names. See internal/locale.
type Localizer interface {
	String(column, raw string) string
}

// Enumerator is the SQLite-backed media.Enumerator. A call to SetCategory
// takes an ordered snapshot of the category's candidates; row operations
// address that snapshot until Deactivate or the next SetCategory.
type Enumerator struct {
	db       *DB
	opener   Opener
	localize Localizer
	tracer   trace.Tracer

	category domain.Category
	snapshot []domain.Sound
	active   bool

	// last handle produced by HandleAt, stopped by StopCurrent
	previous media.Handle
}

var _ media.Enumerator = (*Enumerator)(nil)
var _ media.HandleOpener = (*Enumerator)(nil)

// NewEnumerator creates an Enumerator over the given index. localize may be
// nil, in which case raw titles are used.
func NewEnumerator(db *DB, opener Opener, localize Localizer) *Enumerator {
	return &Enumerator{
		db:       db,
		opener:   opener,
		localize: localize,
		tracer:   otel.Tracer("tonepick/media"),
	}
}

// SetCategory selects the category and takes a fresh snapshot, ordered by
// title (case-insensitive) with URI as tie-breaker.
func (e *Enumerator) SetCategory(c domain.Category) error {
	ctx, span := e.tracer.Start(context.Background(), "enumerator.SetCategory",
		trace.WithAttributes(attribute.String("category", c.String())))
	defer span.End()

	rows, err := e.db.conn.QueryContext(ctx,
		`SELECT id, uri, title, path, category, added_at
		 FROM sounds
		 WHERE category = ?
		 ORDER BY title COLLATE NOCASE, uri`,
		c.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var snapshot []domain.Sound
	for rows.Next() {
		var r soundRow
		if err := rows.Scan(&r.ID, &r.URI, &r.Title, &r.Path, &r.Category, &r.AddedAt); err != nil {
			return fmt.Errorf("failed to scan candidate: %w", err)
		}
		if e.localize != nil {
			snapshot = append(snapshot, r.toDomain(e.localize.String))
		} else {
			snapshot = append(snapshot, r.toDomain(nil))
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read candidates: %w", err)
	}

	e.category = c
	e.snapshot = snapshot
	e.active = true
	log.Debug(log.CatDB, "Candidate snapshot taken", "category", c.String(), "count", len(snapshot))
	return nil
}

// Candidates returns the current snapshot.
func (e *Enumerator) Candidates() ([]domain.Sound, error) {
	if !e.active {
		return nil, &domain.InvalidStateError{Op: "Candidates"}
	}
	return e.snapshot, nil
}

// PositionOf returns the native index of uri in the snapshot, or
// media.PosNotFound.
func (e *Enumerator) PositionOf(uri string) int {
	for i, s := range e.snapshot {
		if s.URI == uri {
			return i
		}
	}
	return media.PosNotFound
}

// URIAt returns the URI of the candidate at the native index.
func (e *Enumerator) URIAt(pos int) (string, error) {
	if !e.active {
		return "", &domain.InvalidStateError{Op: "URIAt"}
	}
	if pos < 0 || pos >= len(e.snapshot) {
		return "", &domain.InvalidStateError{Op: fmt.Sprintf("URIAt(%d)", pos)}
	}
	return e.snapshot[pos].URI, nil
}

// HandleAt opens a playable handle for the candidate at the native index.
// A deactivated snapshot yields domain.StaleDataError; a missing category or
// out-of-range position yields domain.InvalidStateError. Both are the
// documented recoverable faults; callers degrade them to silence.
func (e *Enumerator) HandleAt(pos int) (media.Handle, error) {
	if e.snapshot != nil && !e.active {
		return nil, &domain.StaleDataError{Pos: pos}
	}
	if !e.active {
		return nil, &domain.InvalidStateError{Op: "HandleAt"}
	}
	if pos < 0 || pos >= len(e.snapshot) {
		return nil, &domain.InvalidStateError{Op: fmt.Sprintf("HandleAt(%d)", pos)}
	}

	_, span := e.tracer.Start(context.Background(), "enumerator.HandleAt",
		trace.WithAttributes(attribute.Int("pos", pos), attribute.String("uri", e.snapshot[pos].URI)))
	defer span.End()

	h, err := e.opener.Open(e.snapshot[pos].Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", e.snapshot[pos].Path, err)
	}
	e.previous = h
	return h, nil
}

// PreferredStream returns the volume stream for the current category.
func (e *Enumerator) PreferredStream() domain.Stream {
	return domain.StreamFor(e.category)
}

// StopCurrent stops the most recent handle produced by HandleAt.
func (e *Enumerator) StopCurrent() {
	if e.previous != nil {
		e.previous.Stop()
		e.previous = nil
	}
}

// Deactivate invalidates the snapshot. Subsequent HandleAt calls fail with
// domain.StaleDataError until SetCategory runs again.
func (e *Enumerator) Deactivate() {
	e.active = false
}

// OpenURI opens a handle directly from a URI, outside the snapshot. The
// symbolic default URIs resolve to the first candidate of their category;
// concrete URIs are looked up in the index. Implements media.HandleOpener
// for the picker's default item.
func (e *Enumerator) OpenURI(uri string) (media.Handle, error) {
	path, err := e.resolvePath(uri)
	if err != nil {
		return nil, err
	}
	return e.opener.Open(path)
}

func (e *Enumerator) resolvePath(uri string) (string, error) {
	if domain.IsDefaultURI(uri) {
		c := categoryOfDefault(uri)
		var path string
		err := e.db.conn.QueryRow(
			`SELECT path FROM sounds WHERE category = ? ORDER BY title COLLATE NOCASE, uri LIMIT 1`,
			c.String(),
		).Scan(&path)
		if err != nil {
			return "", &domain.SoundNotFoundError{URI: uri}
		}
		return path, nil
	}

	var path string
	err := e.db.conn.QueryRow(`SELECT path FROM sounds WHERE uri = ?`, uri).Scan(&path)
	if err != nil {
		return "", &domain.SoundNotFoundError{URI: uri}
	}
	return path, nil
}

func categoryOfDefault(uri string) domain.Category {
	switch uri {
	case domain.DefaultNotificationURI:
		return domain.CategoryNotification
	case domain.DefaultAlarmURI:
		return domain.CategoryAlarm
	default:
		return domain.CategoryRingtone
	}
}
