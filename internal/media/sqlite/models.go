package sqlite

import (
	"time"

	"github.com/sashworth/tonepick/internal/media/domain"
)

// soundRow mirrors one row of the sounds table.
type soundRow struct {
	ID       int64
	URI      string
	Title    string
	Path     string
	Category string
	AddedAt  time.Time
}

// toDomain converts a database row to the domain type, applying the
// localized-name lookup to the title column only.
func (r soundRow) toDomain(localize func(column, raw string) string) domain.Sound {
	title := r.Title
	uri := r.URI
	if localize != nil {
		title = localize(columnTitle, r.Title)
		uri = localize(columnURI, r.URI)
	}
	return domain.Sound{
		URI:      uri,
		Title:    title,
		Path:     r.Path,
		Category: domain.ParseCategory(r.Category),
	}
}

// Column names handed to the localized-name adapter. Only columnTitle is
// eligible for replacement; every other column passes through.
const (
	columnTitle = "title"
	columnURI   = "uri"
)
