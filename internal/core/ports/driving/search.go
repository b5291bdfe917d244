package driving

import (
	"context"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search runs a full multi-source search: validation, concurrent
	// fan-out over the selected indexes, merge, snippet extraction and
	// pagination. An empty result set is a success, not an error.
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error)

	// SearchMetadata searches only the book metadata index.
	SearchMetadata(ctx context.Context, text string) (*domain.SearchResponse, error)

	// SearchContent searches only the book content index.
	SearchContent(ctx context.Context, text string) (*domain.SearchResponse, error)

	// SearchBookmarks searches only the bookmark index.
	SearchBookmarks(ctx context.Context, text string) (*domain.SearchResponse, error)

	// SearchNotes searches only the note index.
	SearchNotes(ctx context.Context, text string) (*domain.SearchResponse, error)

	// Suggestions returns up to domain.MaxSuggestions autocomplete
	// candidates for a partial query. Empty partial yields an empty list.
	Suggestions(ctx context.Context, partial string) ([]string, error)

	// RecentSearches returns the history, most-recent-first.
	RecentSearches() []domain.RecentSearch

	// SaveToHistory records a query at the front of the history.
	// Blank queries are ignored; duplicates move to the front.
	SaveToHistory(ctx context.Context, query string) error

	// ClearHistory empties the history and persists the empty snapshot.
	ClearHistory(ctx context.Context) error
}
