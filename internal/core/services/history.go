package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
	"github.com/quill-labs/stacks-cli/internal/logger"
)

// historyList is the in-memory, most-recent-first search history.
// The mutex makes the list safe under real OS threads; persistence is a
// full-snapshot replace, never an incremental write.
type historyList struct {
	mu      sync.Mutex
	max     int
	entries []domain.RecentSearch
}

func newHistoryList(max int) *historyList {
	return &historyList{max: max}
}

// load replaces the in-memory list with a persisted snapshot.
func (h *historyList) load(entries []domain.RecentSearch) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(entries) > h.max {
		entries = entries[:h.max]
	}
	h.entries = append([]domain.RecentSearch(nil), entries...)
}

// add front-inserts a query, removing any existing identical entry and
// truncating to the bound. It returns a snapshot for persistence.
func (h *historyList) add(query string, now time.Time) []domain.RecentSearch {
	h.mu.Lock()
	defer h.mu.Unlock()

	kept := make([]domain.RecentSearch, 0, len(h.entries)+1)
	kept = append(kept, domain.RecentSearch{Query: query, CreatedAt: now})
	for _, e := range h.entries {
		if e.Query != query {
			kept = append(kept, e)
		}
	}
	if len(kept) > h.max {
		kept = kept[:h.max]
	}
	h.entries = kept

	return append([]domain.RecentSearch(nil), kept...)
}

// snapshot returns a copy of the list, most-recent-first.
func (h *historyList) snapshot() []domain.RecentSearch {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]domain.RecentSearch(nil), h.entries...)
}

// clear empties the list.
func (h *historyList) clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}

// LoadHistory loads the persisted search history into memory. Called
// once during initialization; a load failure is non-fatal and leaves
// the history empty.
func (s *SearchService) LoadHistory(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	entries, err := s.store.Load(ctx)
	if err != nil {
		logger.Warn("Loading search history failed: %v", err)
		return &domain.DatabaseError{Op: "load history", Err: err}
	}

	s.history.load(entries)
	logger.Debug("Loaded %d history entries", len(entries))
	return nil
}

// SaveToHistory records a query at the front of the history. Blank
// queries are ignored; re-adding an existing query moves it to the
// front. The full snapshot is persisted on every save.
func (s *SearchService) SaveToHistory(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	snapshot := s.history.add(query, time.Now().UTC())

	// New history invalidates cached suggestion lists.
	s.suggestions.Purge()

	if s.store == nil {
		return nil
	}
	if err := s.store.Replace(ctx, snapshot); err != nil {
		return &domain.DatabaseError{Op: "persist history", Err: err}
	}
	return nil
}

// RecentSearches returns the history, most-recent-first.
func (s *SearchService) RecentSearches() []domain.RecentSearch {
	return s.history.snapshot()
}

// ClearHistory empties the history and persists the empty snapshot.
func (s *SearchService) ClearHistory(ctx context.Context) error {
	s.history.clear()
	s.suggestions.Purge()

	if s.store == nil {
		return nil
	}
	if err := s.store.Clear(ctx); err != nil {
		return &domain.DatabaseError{Op: "clear history", Err: err}
	}
	return nil
}
