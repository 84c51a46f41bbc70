package picker

import "github.com/sashworth/tonepick/internal/media/domain"

// Config is the caller-supplied session configuration. It is derived once
// at Open and immutable for the session.
type Config struct {
	Category domain.Category

	// ShowDefault and ShowSilent prepend the corresponding static rows.
	ShowDefault bool
	ShowSilent  bool

	// DefaultURI is returned (and previewed) for the Default row. When
	// empty it is derived from Category at Open.
	DefaultURI string

	// ExistingURI is the caller's current selection; its row starts
	// checked. Empty means "silent".
	ExistingURI string

	Title string

	// AttributeFlags are applied to preview handles when non-zero.
	AttributeFlags domain.AttributeFlags

	// ShowOkCancel selects the confirming variant. When false, every
	// selection change emits a result immediately.
	ShowOkCancel bool
}

// withDerivedDefaults fills in the fields the caller left absent.
func (c Config) withDerivedDefaults() Config {
	if c.DefaultURI == "" {
		c.DefaultURI = domain.DefaultURIFor(c.Category)
	}
	if c.Title == "" {
		c.Title = "Select a sound"
	}
	return c
}

// Result is the session outcome handed back to the caller. A selection
// equal to the existing URI yields Accepted == false ("no change").
type Result struct {
	Accepted bool
	URI      string
}
