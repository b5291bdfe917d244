package driven

import (
	"context"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

// HistoryStore persists the bounded search history. The in-memory list in
// the search service is the source of truth; writes replace the full
// snapshot rather than mutating incrementally.
type HistoryStore interface {
	// Load returns the persisted history, most-recent-first.
	Load(ctx context.Context) ([]domain.RecentSearch, error)

	// Replace overwrites the persisted history with the given snapshot.
	Replace(ctx context.Context, entries []domain.RecentSearch) error

	// Clear removes all persisted history.
	Clear(ctx context.Context) error
}
