package history

import (
	"sync"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// OpenHistory is the live in-memory map of recently opened paths to their
// last-access time (unix seconds). It supplements the persisted store: the
// store may lag behind by a flush interval, the map never does.
//
// The ranking core consumes read-only snapshots; the map itself is only
// written by the session when something is launched.
type OpenHistory struct {
	mu sync.RWMutex
	m  map[string]int64
}

// NewOpenHistory creates an empty open-history map.
func NewOpenHistory() *OpenHistory {
	return &OpenHistory{m: make(map[string]int64)}
}

// Touch records an access to path at ts (unix seconds). The path is stored
// normalized.
func (h *OpenHistory) Touch(path string, ts int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.m[candidate.NormalizePath(path)] = ts
}

// Snapshot returns a copy of the map for one ranking pass. The copy is
// owned by the caller; later Touch calls do not affect it.
func (h *OpenHistory) Snapshot() map[string]int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make(map[string]int64, len(h.m))
	for k, v := range h.m {
		out[k] = v
	}
	return out
}

// Len returns the number of tracked paths.
func (h *OpenHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.m)
}
