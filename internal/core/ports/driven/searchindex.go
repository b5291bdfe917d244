package driven

import (
	"context"
	"time"
)

// SearchIndex executes full-text lookups against the four content indexes.
// Backed by SQLite FTS5. Each method issues one indexed-text query ordered
// by the engine's native relevance function and returns typed rows with the
// raw (un-normalized) score, so schema drift is caught at compile time.
//
// Implementations receive the raw user query text and are responsible for
// escaping it for the index's query syntax. For the four search methods a
// non-positive limit means no limit; the service needs every match to
// report the pre-pagination total.
type SearchIndex interface {
	// SearchMetadata queries the book metadata index.
	SearchMetadata(ctx context.Context, query string, limit int) ([]MetadataRow, error)

	// SearchContent queries the book content index.
	SearchContent(ctx context.Context, query string, limit int) ([]ContentRow, error)

	// SearchBookmarks queries the bookmark index.
	SearchBookmarks(ctx context.Context, query string, limit int) ([]BookmarkRow, error)

	// SearchNotes queries the note index.
	SearchNotes(ctx context.Context, query string, limit int) ([]NoteRow, error)

	// SuggestTitles returns distinct book titles whose metadata matches
	// the prefix. Used by the suggestion generator's content-derived half.
	SuggestTitles(ctx context.Context, prefix string, limit int) ([]string, error)
}

// MetadataRow is one hit from the book metadata index.
type MetadataRow struct {
	BookID      string
	Title       string
	Author      string
	Description string
	Genre       string
	Language    string
	IndexedAt   time.Time

	// Score is the raw engine relevance (bm25: <= 0, more negative = better).
	Score float64
}

// ContentRow is one hit from the book content index.
type ContentRow struct {
	BookID     string
	Content    string
	Chapter    string
	Position   int
	PageNumber int
	IndexedAt  time.Time
	Score      float64
}

// BookmarkRow is one hit from the bookmark index.
type BookmarkRow struct {
	BookID       string
	BookmarkText string
	Note         string
	Chapter      string
	Position     int
	CreatedAt    time.Time
	Score        float64
}

// NoteRow is one hit from the note index.
type NoteRow struct {
	BookID      string
	NoteContent string
	NoteTitle   string
	Tags        string
	Chapter     string
	Position    int
	CreatedAt   time.Time
	Score       float64
}
