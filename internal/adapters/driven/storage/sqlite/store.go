package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/quill-labs/stacks-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/quill-labs/stacks-cli/internal/core/domain"
	"github.com/quill-labs/stacks-cli/internal/core/ports/driven"
)

// The four FTS5 content indexes. Identifier and timestamp columns are
// UNINDEXED so they do not pollute term matching.
var indexDDL = []string{
	`CREATE VIRTUAL TABLE IF NOT EXISTS book_metadata_fts USING fts5(
		book_id UNINDEXED,
		title,
		author,
		description,
		genre,
		language,
		indexed_at UNINDEXED
	)`,
	`CREATE VIRTUAL TABLE IF NOT EXISTS book_content_fts USING fts5(
		book_id UNINDEXED,
		content,
		chapter,
		position UNINDEXED,
		page_number UNINDEXED,
		indexed_at UNINDEXED
	)`,
	`CREATE VIRTUAL TABLE IF NOT EXISTS bookmark_fts USING fts5(
		book_id UNINDEXED,
		bookmark_text,
		note,
		chapter,
		position UNINDEXED,
		created_at UNINDEXED
	)`,
	`CREATE VIRTUAL TABLE IF NOT EXISTS note_fts USING fts5(
		book_id UNINDEXED,
		note_content,
		note_title,
		tags,
		chapter,
		position UNINDEXED,
		created_at UNINDEXED
	)`,
}

var indexTables = []string{
	"book_metadata_fts",
	"book_content_fts",
	"bookmark_fts",
	"note_fts",
}

// Store is the unified SQLite-backed storage providing access to all
// driven storage ports through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the library search database in the
// specified data directory. If dataDir is empty, defaults to
// ~/.stacks/data/library.db. Indexes are not created until Initialize.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".stacks", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "library.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &Store{
		db:   db,
		path: dbPath,
	}, nil
}

// Initialize idempotently creates the auxiliary tables (via migrations)
// and the four FTS5 content indexes.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.migrate(migrations.FS); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for _, ddl := range indexDDL {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SearchIndex returns a SearchIndex interface backed by this store.
func (s *Store) SearchIndex() driven.SearchIndex {
	return &searchIndex{store: s}
}

// IndexAdmin returns an IndexAdmin interface backed by this store.
func (s *Store) IndexAdmin() driven.IndexAdmin {
	return &indexAdmin{store: s}
}

// HistoryStore returns a HistoryStore interface backed by this store.
func (s *Store) HistoryStore() driven.HistoryStore {
	return &historyStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// classifyError maps low-level store failures onto the domain taxonomy
// where the message is diagnostic enough to do so.
func classifyError(op string, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "no such table"):
		return fmt.Errorf("%w: %v", domain.ErrIndexNotInitialized, err)
	case strings.Contains(msg, "malformed"), strings.Contains(msg, "corrupt"):
		return fmt.Errorf("%w: %v", domain.ErrIndexCorrupted, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
