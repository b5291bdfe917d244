package driven

import (
	"context"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

// TextExtractor produces plain text per chapter from a local book file.
// This is the boundary to the text-extraction collaborator; Stacks only
// consumes its output and never parses book formats itself.
type TextExtractor interface {
	// Extract reads the book at path and returns its metadata and
	// chapter texts in position order.
	Extract(ctx context.Context, path string, format domain.BookFormat) (*domain.BookMetadata, []domain.ChapterText, error)
}
