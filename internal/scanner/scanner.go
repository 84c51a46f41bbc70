// Package scanner keeps the sound index in sync with a sounds directory on
// disk. A scan walks the directory, registers new audio files, refreshes
// titles, and drops index rows whose file disappeared. The watcher reruns
// the scan when the directory changes.
package scanner

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sashworth/tonepick/internal/audio"
	"github.com/sashworth/tonepick/internal/log"
	"github.com/sashworth/tonepick/internal/media/domain"
	"github.com/sashworth/tonepick/internal/media/sqlite"
)

// Category subdirectories under the sounds directory. Files anywhere else in
// the tree index as ringtones.
const (
	dirRingtones     = "ringtones"
	dirNotifications = "notifications"
	dirAlarms        = "alarms"
)

var audioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".ogg":  true,
	".oga":  true,
	".flac": true,
}

// Stats summarises one scan.
type Stats struct {
	Indexed int // files newly registered
	Updated int // existing rows with a refreshed title
	Removed int // rows whose file disappeared
	Kept    int // rows left untouched
}

// Scanner walks a sounds directory and reconciles the index with it.
type Scanner struct {
	db     *sqlite.DB
	dir    string
	tracer trace.Tracer
}

// New creates a scanner over the given index and sounds directory.
func New(db *sqlite.DB, dir string) *Scanner {
	return &Scanner{
		db:     db,
		dir:    dir,
		tracer: otel.Tracer("tonepick/scanner"),
	}
}

// Dir returns the sounds directory being scanned.
func (s *Scanner) Dir() string { return s.dir }

// Scan reconciles the index with the directory tree. Each audio file is
// keyed by its absolute path; new files get a fresh tone:// URI so an
// already-picked URI survives rescans unchanged.
func (s *Scanner) Scan(ctx context.Context) (Stats, error) {
	ctx, span := s.tracer.Start(ctx, "scanner.Scan",
		trace.WithAttributes(attribute.String("dir", s.dir)))
	defer span.End()

	var stats Stats

	seen := map[string]bool{}
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == s.dir {
				return fs.SkipAll
			}
			log.Warn(log.CatScan, "Skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if d.IsDir() || !audioExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		seen[abs] = true

		category := s.categoryFor(path)
		outcome, err := s.upsert(ctx, abs, category)
		if err != nil {
			return err
		}
		switch outcome {
		case rowInserted:
			stats.Indexed++
		case rowUpdated:
			stats.Updated++
		default:
			stats.Kept++
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("failed to walk %s: %w", s.dir, err)
	}

	removed, err := s.prune(ctx, seen)
	if err != nil {
		return stats, err
	}
	stats.Removed = removed

	span.SetAttributes(
		attribute.Int("indexed", stats.Indexed),
		attribute.Int("removed", stats.Removed),
	)
	log.Info(log.CatScan, "Scan complete", "dir", s.dir,
		"indexed", stats.Indexed, "updated", stats.Updated,
		"removed", stats.Removed, "kept", stats.Kept)
	return stats, nil
}

// Seed populates an empty sounds directory with the built-in sounds and
// indexes them. A directory that already contains audio files is left alone.
func (s *Scanner) Seed(ctx context.Context) error {
	var count int
	row := s.db.Connection().QueryRowContext(ctx, "SELECT COUNT(*) FROM sounds")
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("failed to count sounds: %w", err)
	}
	if count > 0 {
		return nil
	}

	dest := filepath.Join(s.dir, dirNotifications)
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}

	builtins, err := audio.BuiltinSounds()
	if err != nil {
		return fmt.Errorf("failed to load built-in sounds: %w", err)
	}
	for _, b := range builtins {
		path := filepath.Join(dest, b.Name+".wav")
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, b.Data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		log.Debug(log.CatScan, "Seeded built-in sound", "path", path)
	}

	_, err = s.Scan(ctx)
	return err
}

type rowOutcome int

const (
	rowKept rowOutcome = iota
	rowInserted
	rowUpdated
)

// upsert registers path under the given category, preserving the URI of an
// already-indexed file.
func (s *Scanner) upsert(ctx context.Context, path string, category domain.Category) (rowOutcome, error) {
	title := TitleFor(path)

	var uri, oldTitle string
	row := s.db.Connection().QueryRowContext(ctx,
		"SELECT uri, title FROM sounds WHERE path = ?", path)
	switch err := row.Scan(&uri, &oldTitle); {
	case err == sql.ErrNoRows:
		uri = fmt.Sprintf("tone://%s/%s", category, uuid.New().String())
		_, err := s.db.Connection().ExecContext(ctx,
			"INSERT INTO sounds (uri, title, path, category) VALUES (?, ?, ?, ?)",
			uri, title, path, category.String())
		if err != nil {
			return rowKept, fmt.Errorf("failed to index %s: %w", path, err)
		}
		log.Debug(log.CatScan, "Indexed sound", "path", path, "uri", uri, "category", category.String())
		return rowInserted, nil

	case err != nil:
		return rowKept, fmt.Errorf("failed to look up %s: %w", path, err)
	}

	if oldTitle == title {
		return rowKept, nil
	}
	_, err := s.db.Connection().ExecContext(ctx,
		"UPDATE sounds SET title = ?, category = ? WHERE path = ?",
		title, category.String(), path)
	if err != nil {
		return rowKept, fmt.Errorf("failed to update %s: %w", path, err)
	}
	return rowUpdated, nil
}

// prune deletes index rows whose file was not seen on this walk.
func (s *Scanner) prune(ctx context.Context, seen map[string]bool) (int, error) {
	rows, err := s.db.Connection().QueryContext(ctx, "SELECT uri, path FROM sounds")
	if err != nil {
		return 0, fmt.Errorf("failed to list indexed sounds: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stale []string
	for rows.Next() {
		var uri, path string
		if err := rows.Scan(&uri, &path); err != nil {
			return 0, fmt.Errorf("failed to scan row: %w", err)
		}
		if !seen[path] {
			stale = append(stale, uri)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to iterate rows: %w", err)
	}

	for _, uri := range stale {
		if _, err := s.db.Connection().ExecContext(ctx,
			"DELETE FROM sounds WHERE uri = ?", uri); err != nil {
			return 0, fmt.Errorf("failed to remove %s: %w", uri, err)
		}
		log.Debug(log.CatScan, "Removed vanished sound", "uri", uri)
	}
	return len(stale), nil
}

// categoryFor maps the file's first path element under the sounds directory
// to a category.
func (s *Scanner) categoryFor(path string) domain.Category {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil {
		return domain.CategoryRingtone
	}
	first := rel
	if i := strings.IndexRune(rel, filepath.Separator); i >= 0 {
		first = rel[:i]
	}
	switch first {
	case dirNotifications:
		return domain.CategoryNotification
	case dirAlarms:
		return domain.CategoryAlarm
	case dirRingtones:
		return domain.CategoryRingtone
	default:
		return domain.CategoryRingtone
	}
}

// TitleFor derives a display title from a file name: extension stripped,
// separators spaced, words capitalised. "classic_bell.wav" becomes
// "Classic Bell".
func TitleFor(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, base)

	words := strings.Fields(base)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
