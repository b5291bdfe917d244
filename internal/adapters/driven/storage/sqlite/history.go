package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
	"github.com/quill-labs/stacks-cli/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore on the search_history table.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Load returns the persisted history, most recent first.
func (h *historyStore) Load(ctx context.Context) ([]domain.RecentSearch, error) {
	rows, err := h.store.db.QueryContext(ctx, `
		SELECT query, created_at FROM search_history ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, classifyError("loading search history", err)
	}
	defer rows.Close()

	var entries []domain.RecentSearch
	for rows.Next() {
		var entry domain.RecentSearch
		var createdAt string
		if err := rows.Scan(&entry.Query, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entry.CreatedAt = parseTime(createdAt)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}
	return entries, nil
}

// Replace overwrites the persisted history with the given snapshot.
func (h *historyStore) Replace(ctx context.Context, entries []domain.RecentSearch) error {
	tx, err := h.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM search_history"); err != nil {
		return classifyError("clearing search history", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO search_history (query, created_at) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing history insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		createdAt := entry.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		if _, err := stmt.ExecContext(ctx, entry.Query, createdAt.Format(time.RFC3339)); err != nil {
			return classifyError("inserting history row", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Clear removes all persisted history entries.
func (h *historyStore) Clear(ctx context.Context) error {
	if _, err := h.store.db.ExecContext(ctx, "DELETE FROM search_history"); err != nil {
		return classifyError("clearing search history", err)
	}
	return nil
}
