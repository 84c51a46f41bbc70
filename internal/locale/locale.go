// Package locale replaces raw index titles with localized display names.
//
// Override strings live in embedded YAML catalogs keyed by resource-style
// names. For the designated title column only, a lookup key is derived from
// the raw title (non-alphanumerics become "_", then lowercased) and prefixed
// with "<package>:<type>/sound_name_". If an override exists it is returned;
// otherwise the raw title passes through. All other columns pass through
// untouched.
package locale

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"gopkg.in/yaml.v3"

	"github.com/sashworth/tonepick/internal/log"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

const (
	soundNamePrefix = "sound_name_"

	// anchorName is a catalog entry that is always expected to exist. The
	// lookup prefix is derived from its package and type; if the anchor
	// cannot be resolved, localization is disabled for the session rather
	// than failing it.
	anchorName = "notification_sound_default"
)

var sanitizePattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

// catalogFile is the on-disk shape of one language catalog.
type catalogFile struct {
	Package string            `yaml:"package"`
	Type    string            `yaml:"type"`
	Names   map[string]string `yaml:"names"`
}

// Names is the localized-name adapter for one language.
type Names struct {
	titleColumn string
	prefix      string // empty when localization is disabled
	values      map[string]string
	cache       *gocache.Cache
}

// New loads the catalog for lang ("en", "de", ...) and returns an adapter
// that localizes the given title column. A missing catalog or missing
// anchor entry disables localization: the adapter still works, passing every
// value through.
func New(lang, titleColumn string) *Names {
	n := &Names{
		titleColumn: titleColumn,
		cache:       gocache.New(5*time.Minute, 10*time.Minute),
	}

	cat, err := loadCatalog(lang)
	if err != nil {
		log.Warn(log.CatConfig, "Name catalog unavailable, localization disabled", "lang", lang, "error", err)
		return n
	}

	n.values = make(map[string]string, len(cat.Names))
	for name, value := range cat.Names {
		n.values[fmt.Sprintf("%s:%s/%s", cat.Package, cat.Type, name)] = value
	}

	// Resolve the anchor to build the lookup prefix. Format is
	// "<package>:<type>/sound_name_".
	anchor := fmt.Sprintf("%s:%s/%s", cat.Package, cat.Type, anchorName)
	if _, ok := n.values[anchor]; !ok {
		log.Error(log.CatConfig, "Anchor entry missing, localization disabled", "lang", lang, "anchor", anchorName)
		return n
	}
	n.prefix = fmt.Sprintf("%s:%s/%s", cat.Package, cat.Type, soundNamePrefix)

	return n
}

func loadCatalog(lang string) (*catalogFile, error) {
	data, err := catalogFS.ReadFile("catalogs/" + lang + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no catalog for %q: %w", lang, err)
	}
	var cat catalogFile
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("bad catalog for %q: %w", lang, err)
	}
	if cat.Package == "" || cat.Type == "" {
		return nil, fmt.Errorf("catalog for %q is missing package/type", lang)
	}
	return &cat, nil
}

// Label returns the localized value of a plain catalog entry (static row
// labels and the like), or fallback if the entry is absent.
func (n *Names) Label(name, fallback string) string {
	if n.prefix == "" {
		return fallback
	}
	// prefix is "<package>:<type>/sound_name_"; strip the trailing segment
	// to address entries outside the sound_name_ namespace.
	base := strings.TrimSuffix(n.prefix, soundNamePrefix)
	if v, ok := n.values[base+name]; ok && v != "" {
		return v
	}
	return fallback
}

// String localizes the raw value of the given column. Only the title column
// is eligible; everything else passes through unchanged.
func (n *Names) String(column, raw string) string {
	if column != n.titleColumn || n.prefix == "" {
		return raw
	}

	if cached, ok := n.cache.Get(raw); ok {
		return cached.(string)
	}

	resolved := raw
	if v, ok := n.values[n.prefix+sanitize(raw)]; ok {
		if v != "" {
			log.Debug(log.CatConfig, "Replacing name", "raw", raw, "localized", v)
			resolved = v
		} else {
			log.Error(log.CatConfig, "Empty value for localized name", "raw", raw)
		}
	}

	n.cache.Set(raw, resolved, gocache.DefaultExpiration)
	return resolved
}

// sanitize derives a catalog lookup key from a raw title.
func sanitize(input string) string {
	return strings.ToLower(sanitizePattern.ReplaceAllString(input, "_"))
}
