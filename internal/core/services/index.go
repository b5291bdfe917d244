package services

import (
	"context"
	"fmt"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
	"github.com/quill-labs/stacks-cli/internal/core/ports/driven"
	"github.com/quill-labs/stacks-cli/internal/core/ports/driving"
	"github.com/quill-labs/stacks-cli/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// HistoryLoader loads persisted search history. Satisfied by
// SearchService so initialization can warm the history in one step.
type HistoryLoader interface {
	LoadHistory(ctx context.Context) error
}

// IndexService manages the search index lifecycle. It shares an
// Availability gate with SearchService so a rebuild blocks searches.
type IndexService struct {
	admin     driven.IndexAdmin
	extractor driven.TextExtractor
	avail     *Availability
	history   HistoryLoader
}

// NewIndexService creates a new index lifecycle service.
// The extractor is optional (can be nil); indexing from a source path is
// then unavailable, but metadata updates and removals still work.
func NewIndexService(admin driven.IndexAdmin, extractor driven.TextExtractor, avail *Availability) *IndexService {
	return &IndexService{
		admin:     admin,
		extractor: extractor,
		avail:     avail,
	}
}

// SetHistoryLoader wires the search service's history load into
// Initialize.
func (s *IndexService) SetHistoryLoader(l HistoryLoader) {
	s.history = l
}

// Initialize idempotently creates all indexes and auxiliary tables,
// then loads the persisted search history.
func (s *IndexService) Initialize(ctx context.Context) error {
	logger.Section("Index Initialization")

	if err := s.admin.Initialize(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIndexCreationFailed, err)
	}
	s.avail.MarkInitialized()

	if s.history != nil {
		// A history load failure degrades to an empty history; the
		// indexes themselves are usable.
		if err := s.history.LoadHistory(ctx); err != nil {
			logger.Warn("History unavailable: %v", err)
		}
	}

	logger.Info("Search indexes ready")
	return nil
}

// IndexBook extracts text from the book at sourcePath and upserts its
// content and metadata rows. Re-indexing a book replaces its prior
// content.
func (s *IndexService) IndexBook(ctx context.Context, bookID, sourcePath string, format domain.BookFormat) error {
	if err := s.avail.Ready(); err != nil {
		return err
	}
	if s.extractor == nil {
		return &domain.UnavailableError{Reason: "text extraction not configured"}
	}

	logger.Debug("Indexing book %s from %s (%s)", bookID, sourcePath, format)

	meta, chapters, err := s.extractor.Extract(ctx, sourcePath, format)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", sourcePath, err)
	}

	if err := s.admin.IndexBook(ctx, bookID, chapters, meta); err != nil {
		return &domain.DatabaseError{Op: "index book", Err: err}
	}

	logger.Info("Indexed book %s: %d chapters", bookID, len(chapters))
	return nil
}

// RemoveBook deletes a book from every index. Removing a book that was
// never indexed is not an error.
func (s *IndexService) RemoveBook(ctx context.Context, bookID string) error {
	if err := s.avail.Ready(); err != nil {
		return err
	}

	if err := s.admin.RemoveBook(ctx, bookID); err != nil {
		return &domain.DatabaseError{Op: "remove book", Err: err}
	}
	return nil
}

// UpdateBookMetadata partially updates a book's metadata index row.
// A nil meta is a no-op.
func (s *IndexService) UpdateBookMetadata(ctx context.Context, bookID string, meta *domain.BookMetadata) error {
	if meta == nil {
		return nil
	}
	if err := s.avail.Ready(); err != nil {
		return err
	}

	if err := s.admin.UpdateBookMetadata(ctx, bookID, meta); err != nil {
		return &domain.DatabaseError{Op: "update book metadata", Err: err}
	}
	return nil
}

// IndexBookmark upserts a bookmark into the bookmark index.
func (s *IndexService) IndexBookmark(ctx context.Context, bookID string, bookmark domain.Bookmark) error {
	if err := s.avail.Ready(); err != nil {
		return err
	}

	if err := s.admin.AddBookmark(ctx, bookID, bookmark); err != nil {
		return &domain.DatabaseError{Op: "index bookmark", Err: err}
	}
	return nil
}

// IndexNote upserts a note into the note index.
func (s *IndexService) IndexNote(ctx context.Context, bookID string, note domain.Note) error {
	if err := s.avail.Ready(); err != nil {
		return err
	}

	if err := s.admin.AddNote(ctx, bookID, note); err != nil {
		return &domain.DatabaseError{Op: "index note", Err: err}
	}
	return nil
}

// Rebuild drops and recreates all indexes. Destructive: every book must
// be re-indexed afterwards. Searches and indexing fail with a temporary
// UnavailableError while the rebuild runs.
func (s *IndexService) Rebuild(ctx context.Context) error {
	if err := s.avail.BeginRebuild(); err != nil {
		return err
	}
	defer s.avail.EndRebuild()

	logger.Section("Index Rebuild")

	if err := s.admin.Rebuild(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIndexCreationFailed, err)
	}

	logger.Info("Indexes rebuilt; previously indexed content must be re-supplied")
	return nil
}

// Optimize compacts the indexes. Failure affects performance only, never
// correctness, so callers may log and continue.
func (s *IndexService) Optimize(ctx context.Context) error {
	if err := s.avail.Ready(); err != nil {
		return err
	}

	if err := s.admin.Optimize(ctx); err != nil {
		logger.Warn("Index optimization failed: %v", err)
		return fmt.Errorf("%w: %w", domain.ErrOptimizationFailed, err)
	}
	return nil
}

// Stats returns diagnostic index counts.
func (s *IndexService) Stats(ctx context.Context) (domain.SearchStats, error) {
	if err := s.avail.Ready(); err != nil {
		return domain.SearchStats{}, err
	}

	stats, err := s.admin.Stats(ctx)
	if err != nil {
		return domain.SearchStats{}, &domain.DatabaseError{Op: "stats", Err: err}
	}
	return stats, nil
}
