package services

import (
	"sync"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

// Availability tracks whether the search subsystem can serve requests.
// One instance is shared between SearchService and IndexService so that
// a rebuild blocks searches and indexing for its whole duration.
type Availability struct {
	mu          sync.Mutex
	initialized bool
	rebuilding  bool
}

// NewAvailability returns an uninitialized gate. Initialize must run
// before any search or indexing call succeeds.
func NewAvailability() *Availability {
	return &Availability{}
}

// Ready returns nil when the subsystem can serve a request.
func (a *Availability) Ready() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.rebuilding {
		return &domain.UnavailableError{Reason: "index rebuild in progress", Temporary: true}
	}
	if !a.initialized {
		return domain.ErrIndexNotInitialized
	}
	return nil
}

// MarkInitialized records that the indexes exist.
func (a *Availability) MarkInitialized() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.initialized = true
}

// BeginRebuild enters the rebuilding state. It fails when another
// rebuild is already in flight.
func (a *Availability) BeginRebuild() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.rebuilding {
		return &domain.UnavailableError{Reason: "index rebuild already in progress", Temporary: true}
	}
	a.rebuilding = true
	return nil
}

// EndRebuild leaves the rebuilding state.
func (a *Availability) EndRebuild() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rebuilding = false
}
