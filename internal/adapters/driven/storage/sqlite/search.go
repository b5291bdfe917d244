package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quill-labs/stacks-cli/internal/core/ports/driven"
)

// searchIndex implements driven.SearchIndex.
type searchIndex struct {
	store *Store
}

var _ driven.SearchIndex = (*searchIndex)(nil)

// escapeQuery wraps user text as an exact FTS5 phrase, neutralising
// query-syntax operators. Embedded double quotes are doubled per FTS5
// string rules.
func escapeQuery(query string) string {
	return `"` + strings.ReplaceAll(query, `"`, `""`) + `"`
}

// sqlLimit maps the port's "non-positive means no limit" convention onto
// SQLite, where a negative LIMIT disables the clause.
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

// SearchMetadata queries the book metadata index ordered by relevance.
func (s *searchIndex) SearchMetadata(ctx context.Context, query string, limit int) ([]driven.MetadataRow, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT book_id, title, author, description, genre, language, indexed_at,
		       bm25(book_metadata_fts)
		FROM book_metadata_fts
		WHERE book_metadata_fts MATCH ?
		ORDER BY bm25(book_metadata_fts)
		LIMIT ?
	`, escapeQuery(query), sqlLimit(limit))
	if err != nil {
		return nil, classifyError("querying metadata index", err)
	}
	defer rows.Close()

	var results []driven.MetadataRow //nolint:prealloc // size unknown from query
	for rows.Next() {
		var r driven.MetadataRow
		var indexedAt string
		if err := rows.Scan(&r.BookID, &r.Title, &r.Author, &r.Description,
			&r.Genre, &r.Language, &indexedAt, &r.Score); err != nil {
			return nil, fmt.Errorf("scanning metadata row: %w", err)
		}
		r.IndexedAt = parseTime(indexedAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating metadata rows: %w", err)
	}
	return results, nil
}

// SearchContent queries the book content index ordered by relevance.
func (s *searchIndex) SearchContent(ctx context.Context, query string, limit int) ([]driven.ContentRow, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT book_id, content, chapter, position, page_number, indexed_at,
		       bm25(book_content_fts)
		FROM book_content_fts
		WHERE book_content_fts MATCH ?
		ORDER BY bm25(book_content_fts)
		LIMIT ?
	`, escapeQuery(query), sqlLimit(limit))
	if err != nil {
		return nil, classifyError("querying content index", err)
	}
	defer rows.Close()

	var results []driven.ContentRow //nolint:prealloc // size unknown from query
	for rows.Next() {
		var r driven.ContentRow
		var indexedAt string
		if err := rows.Scan(&r.BookID, &r.Content, &r.Chapter, &r.Position,
			&r.PageNumber, &indexedAt, &r.Score); err != nil {
			return nil, fmt.Errorf("scanning content row: %w", err)
		}
		r.IndexedAt = parseTime(indexedAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating content rows: %w", err)
	}
	return results, nil
}

// SearchBookmarks queries the bookmark index ordered by relevance.
func (s *searchIndex) SearchBookmarks(ctx context.Context, query string, limit int) ([]driven.BookmarkRow, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT book_id, bookmark_text, note, chapter, position, created_at,
		       bm25(bookmark_fts)
		FROM bookmark_fts
		WHERE bookmark_fts MATCH ?
		ORDER BY bm25(bookmark_fts)
		LIMIT ?
	`, escapeQuery(query), sqlLimit(limit))
	if err != nil {
		return nil, classifyError("querying bookmark index", err)
	}
	defer rows.Close()

	var results []driven.BookmarkRow //nolint:prealloc // size unknown from query
	for rows.Next() {
		var r driven.BookmarkRow
		var createdAt string
		if err := rows.Scan(&r.BookID, &r.BookmarkText, &r.Note, &r.Chapter,
			&r.Position, &createdAt, &r.Score); err != nil {
			return nil, fmt.Errorf("scanning bookmark row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookmark rows: %w", err)
	}
	return results, nil
}

// SearchNotes queries the note index ordered by relevance.
func (s *searchIndex) SearchNotes(ctx context.Context, query string, limit int) ([]driven.NoteRow, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT book_id, note_content, note_title, tags, chapter, position, created_at,
		       bm25(note_fts)
		FROM note_fts
		WHERE note_fts MATCH ?
		ORDER BY bm25(note_fts)
		LIMIT ?
	`, escapeQuery(query), sqlLimit(limit))
	if err != nil {
		return nil, classifyError("querying note index", err)
	}
	defer rows.Close()

	var results []driven.NoteRow //nolint:prealloc // size unknown from query
	for rows.Next() {
		var r driven.NoteRow
		var createdAt string
		if err := rows.Scan(&r.BookID, &r.NoteContent, &r.NoteTitle, &r.Tags,
			&r.Chapter, &r.Position, &createdAt, &r.Score); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating note rows: %w", err)
	}
	return results, nil
}

// SuggestTitles returns distinct book titles matching the prefix.
func (s *searchIndex) SuggestTitles(ctx context.Context, prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	// Phrase-prefix query restricted to the title column.
	match := "title:" + escapeQuery(prefix) + "*"

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT DISTINCT title
		FROM book_metadata_fts
		WHERE book_metadata_fts MATCH ?
		ORDER BY title
		LIMIT ?
	`, match, limit)
	if err != nil {
		return nil, classifyError("querying title suggestions", err)
	}
	defer rows.Close()

	var titles []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scanning title: %w", err)
		}
		titles = append(titles, title)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating titles: %w", err)
	}
	return titles, nil
}

// parseTime decodes an RFC3339 timestamp column, returning the zero time
// for empty or unparseable values.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
