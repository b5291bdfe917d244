package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
	"github.com/quill-labs/stacks-cli/internal/core/ports/driven"
)

// indexAdmin implements driven.IndexAdmin.
type indexAdmin struct {
	store *Store
}

var _ driven.IndexAdmin = (*indexAdmin)(nil)

// Initialize creates the indexes and auxiliary tables if absent.
func (a *indexAdmin) Initialize(ctx context.Context) error {
	return a.store.Initialize(ctx)
}

// Rebuild drops and recreates all four content indexes. All indexed
// content is lost and must be re-supplied by the caller.
func (a *indexAdmin) Rebuild(ctx context.Context) error {
	for _, table := range indexTables {
		if _, err := a.store.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("dropping %s: %w", table, err)
		}
	}

	for _, ddl := range indexDDL {
		if _, err := a.store.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("recreating index: %w", err)
		}
	}
	return nil
}

// Optimize issues the FTS5 merge command to each index.
func (a *indexAdmin) Optimize(ctx context.Context) error {
	for _, table := range indexTables {
		stmt := fmt.Sprintf("INSERT INTO %s(%s) VALUES('optimize')", table, table)
		if _, err := a.store.db.ExecContext(ctx, stmt); err != nil {
			return classifyError(fmt.Sprintf("optimizing %s", table), err)
		}
	}
	return nil
}

// IndexBook replaces the content rows for a book and upserts its
// metadata row. FTS5 tables have no ON CONFLICT support, so upsert is
// delete-then-insert within one transaction.
func (a *indexAdmin) IndexBook(ctx context.Context, bookID string, chapters []domain.ChapterText, meta *domain.BookMetadata) error {
	tx, err := a.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC().Format(time.RFC3339)

	if _, err := tx.ExecContext(ctx, "DELETE FROM book_content_fts WHERE book_id = ?", bookID); err != nil {
		return classifyError("clearing content rows", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO book_content_fts (book_id, content, chapter, position, page_number, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing content insert: %w", err)
	}
	defer stmt.Close()

	for _, ch := range chapters {
		if _, err := stmt.ExecContext(ctx, bookID, ch.Text, ch.Chapter,
			ch.Position, ch.PageNumber, now); err != nil {
			return fmt.Errorf("inserting content row: %w", err)
		}
	}

	if meta != nil {
		if err := upsertMetadata(ctx, tx, bookID, meta, now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// RemoveBook deletes all rows for a book across every index. Removing a
// book that was never indexed is not an error.
func (a *indexAdmin) RemoveBook(ctx context.Context, bookID string) error {
	for _, table := range indexTables {
		stmt := fmt.Sprintf("DELETE FROM %s WHERE book_id = ?", table)
		if _, err := a.store.db.ExecContext(ctx, stmt, bookID); err != nil {
			return classifyError(fmt.Sprintf("deleting from %s", table), err)
		}
	}
	return nil
}

// UpdateBookMetadata merges non-empty fields into the metadata row.
// No-op when meta is nil.
func (a *indexAdmin) UpdateBookMetadata(ctx context.Context, bookID string, meta *domain.BookMetadata) error {
	if meta == nil {
		return nil
	}

	tx, err := a.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC().Format(time.RFC3339)
	if err := upsertMetadata(ctx, tx, bookID, meta, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// AddBookmark replaces the bookmark row at the same book position.
func (a *indexAdmin) AddBookmark(ctx context.Context, bookID string, bookmark domain.Bookmark) error {
	createdAt := bookmark.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tx, err := a.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM bookmark_fts WHERE book_id = ? AND position = ?",
		bookID, bookmark.Position); err != nil {
		return classifyError("clearing bookmark row", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO bookmark_fts (book_id, bookmark_text, note, chapter, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, bookID, bookmark.Text, bookmark.Note, bookmark.Chapter,
		bookmark.Position, createdAt.Format(time.RFC3339)); err != nil {
		return classifyError("inserting bookmark row", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// AddNote replaces the note row at the same book position.
func (a *indexAdmin) AddNote(ctx context.Context, bookID string, note domain.Note) error {
	createdAt := note.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tx, err := a.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM note_fts WHERE book_id = ? AND position = ?",
		bookID, note.Position); err != nil {
		return classifyError("clearing note row", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO note_fts (book_id, note_content, note_title, tags, chapter, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, bookID, note.Content, note.Title, note.Tags, note.Chapter,
		note.Position, createdAt.Format(time.RFC3339)); err != nil {
		return classifyError("inserting note row", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Stats returns diagnostic index counts.
func (a *indexAdmin) Stats(ctx context.Context) (domain.SearchStats, error) {
	var stats domain.SearchStats

	counts := []struct {
		query string
		dst   *int
	}{
		{"SELECT COUNT(DISTINCT book_id) FROM book_metadata_fts", &stats.IndexedBooks},
		{"SELECT COUNT(*) FROM book_content_fts", &stats.ContentEntries},
		{"SELECT COUNT(*) FROM bookmark_fts", &stats.BookmarkItems},
		{"SELECT COUNT(*) FROM note_fts", &stats.NoteItems},
		{"SELECT COUNT(*) FROM search_history", &stats.HistoryEntries},
	}

	for _, c := range counts {
		if err := a.store.db.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return domain.SearchStats{}, classifyError("counting index rows", err)
		}
	}
	return stats, nil
}

// upsertMetadata merges non-empty fields over any existing metadata row
// for the book, then rewrites the row.
func upsertMetadata(ctx context.Context, tx *sql.Tx, bookID string, meta *domain.BookMetadata, now string) error {
	merged := *meta

	row := tx.QueryRowContext(ctx, `
		SELECT title, author, description, genre, language
		FROM book_metadata_fts WHERE book_id = ?
	`, bookID)

	var existing domain.BookMetadata
	switch err := row.Scan(&existing.Title, &existing.Author, &existing.Description,
		&existing.Genre, &existing.Language); {
	case err == nil:
		if merged.Title == "" {
			merged.Title = existing.Title
		}
		if merged.Author == "" {
			merged.Author = existing.Author
		}
		if merged.Description == "" {
			merged.Description = existing.Description
		}
		if merged.Genre == "" {
			merged.Genre = existing.Genre
		}
		if merged.Language == "" {
			merged.Language = existing.Language
		}
	case errors.Is(err, sql.ErrNoRows):
		// First index of this book; nothing to merge.
	default:
		return classifyError("reading metadata row", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM book_metadata_fts WHERE book_id = ?", bookID); err != nil {
		return classifyError("clearing metadata row", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO book_metadata_fts (book_id, title, author, description, genre, language, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, bookID, merged.Title, merged.Author, merged.Description,
		merged.Genre, merged.Language, now); err != nil {
		return classifyError("inserting metadata row", err)
	}
	return nil
}
