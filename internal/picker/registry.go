package picker

import (
	"sync"

	"github.com/sashworth/tonepick/internal/media"
)

// Registry is the process-wide slot for a preview handle that outlives a
// controller instance across a reconfiguration (terminal suspend/resume).
// The host process owns one Registry and injects it into every controller
// it creates; the successor instance reclaims and stops the handle.
type Registry struct {
	mu      sync.Mutex
	playing media.Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Put stores a handle, replacing any previous one.
func (r *Registry) Put(h media.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playing = h
}

// Take removes and returns the stored handle, or nil.
func (r *Registry) Take() media.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.playing
	r.playing = nil
	return h
}

// StopAndClear stops the stored handle if it is still playing and empties
// the slot.
func (r *Registry) StopAndClear() {
	if h := r.Take(); h != nil && h.IsPlaying() {
		h.Stop()
	}
}
