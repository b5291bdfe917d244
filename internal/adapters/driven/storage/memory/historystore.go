// Package memory provides in-memory driven adapters, used in tests and
// as a fallback when no database is available.
package memory

import (
	"context"
	"sync"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
	"github.com/quill-labs/stacks-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.RecentSearch
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Load returns a copy of the stored history snapshot.
func (s *HistoryStore) Load(_ context.Context) ([]domain.RecentSearch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.RecentSearch, len(s.entries))
	copy(result, s.entries)
	return result, nil
}

// Replace overwrites the stored history with the given snapshot.
func (s *HistoryStore) Replace(_ context.Context, entries []domain.RecentSearch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]domain.RecentSearch, len(entries))
	copy(s.entries, entries)
	return nil
}

// Clear removes all stored history entries.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
