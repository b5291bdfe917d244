package driving

import (
	"context"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

// IndexService manages the search index lifecycle for external actors.
type IndexService interface {
	// Initialize idempotently creates all indexes and auxiliary tables
	// and loads the persisted search history.
	Initialize(ctx context.Context) error

	// IndexBook extracts text from the book at sourcePath and upserts
	// its content and metadata index rows.
	IndexBook(ctx context.Context, bookID, sourcePath string, format domain.BookFormat) error

	// RemoveBook deletes a book from every index. Idempotent.
	RemoveBook(ctx context.Context, bookID string) error

	// UpdateBookMetadata partially updates a book's metadata index row.
	// No-op when meta is nil.
	UpdateBookMetadata(ctx context.Context, bookID string, meta *domain.BookMetadata) error

	// IndexBookmark upserts a bookmark into the bookmark index.
	IndexBookmark(ctx context.Context, bookID string, bookmark domain.Bookmark) error

	// IndexNote upserts a note into the note index.
	IndexNote(ctx context.Context, bookID string, note domain.Note) error

	// Rebuild drops and recreates all indexes. Searches and indexing
	// fail with a temporary UnavailableError while it runs.
	Rebuild(ctx context.Context) error

	// Optimize compacts the indexes. Failure does not affect correctness.
	Optimize(ctx context.Context) error

	// Stats returns diagnostic index counts.
	Stats(ctx context.Context) (domain.SearchStats, error)
}
