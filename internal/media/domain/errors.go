package domain

import "fmt"

// StaleDataError indicates the enumerator's snapshot of the index was
// deactivated or superseded before the requested row could be resolved.
// Callers resolving a preview handle treat it as "no sound available".
type StaleDataError struct {
	Pos int
}

// Error implements the error interface.
func (e *StaleDataError) Error() string {
	return fmt.Sprintf("stale index snapshot at position %d", e.Pos)
}

// InvalidStateError indicates the enumerator was used before a category was
// set or after it was closed. Like StaleDataError it is recoverable: the
// preview step degrades to silence.
type InvalidStateError struct {
	Op string
}

// Error implements the error interface.
func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("enumerator not ready for %s", e.Op)
}

// SoundNotFoundError indicates a URI is not present in the index.
type SoundNotFoundError struct {
	URI string
}

// Error implements the error interface.
func (e *SoundNotFoundError) Error() string {
	return fmt.Sprintf("sound not found: uri=%q", e.URI)
}
