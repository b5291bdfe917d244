package driven

import (
	"context"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

// IndexAdmin manages the lifecycle of the content indexes and their
// auxiliary tables. Backed by SQLite DDL against the FTS5 virtual tables.
//
// Rebuild must never run concurrently with searches or indexing; callers
// (the index service) enforce that exclusion.
type IndexAdmin interface {
	// Initialize idempotently creates the four content indexes and the
	// history and settings tables if absent.
	Initialize(ctx context.Context) error

	// Rebuild drops and recreates all four content indexes. Destructive:
	// all indexed content must be re-supplied afterwards.
	Rebuild(ctx context.Context) error

	// Optimize issues a compaction command to each index.
	Optimize(ctx context.Context) error

	// IndexBook upserts the content rows for a book. Re-indexing the same
	// bookID replaces prior content for that id.
	IndexBook(ctx context.Context, bookID string, chapters []domain.ChapterText, meta *domain.BookMetadata) error

	// RemoveBook deletes all rows for a book across every index.
	// Idempotent: removing a non-indexed id is not an error.
	RemoveBook(ctx context.Context, bookID string) error

	// UpdateBookMetadata partially updates the metadata index row.
	// No-op when meta is nil.
	UpdateBookMetadata(ctx context.Context, bookID string, meta *domain.BookMetadata) error

	// AddBookmark upserts one bookmark index row.
	AddBookmark(ctx context.Context, bookID string, bookmark domain.Bookmark) error

	// AddNote upserts one note index row.
	AddNote(ctx context.Context, bookID string, note domain.Note) error

	// Stats returns diagnostic index counts.
	Stats(ctx context.Context) (domain.SearchStats, error)
}
