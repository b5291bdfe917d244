// Package plaintext extracts indexable text from plain text book files.
// Richer formats (EPUB, PDF) are handled by external extraction tools;
// this extractor covers the txt fallback.
package plaintext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
	"github.com/quill-labs/stacks-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// chapterSeparator splits a text file into chapters. Two or more blank
// lines mark a chapter boundary.
const chapterSeparator = "\n\n\n"

// Extractor handles plain text book files.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract reads the file at path and returns derived metadata plus its
// text split into chapters.
func (e *Extractor) Extract(ctx context.Context, path string, format domain.BookFormat) (*domain.BookMetadata, []domain.ChapterText, error) {
	if format != domain.FormatTXT {
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	meta := &domain.BookMetadata{
		Title: titleFromPath(path),
	}

	return meta, splitChapters(string(raw)), nil
}

// splitChapters breaks the text on blank-line runs, one chapter per
// section. The first line of each section becomes the chapter name.
func splitChapters(text string) []domain.ChapterText {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var chapters []domain.ChapterText
	for _, section := range strings.Split(text, chapterSeparator) {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		name := section
		if idx := strings.IndexByte(section, '\n'); idx >= 0 {
			name = section[:idx]
		}
		name = strings.TrimSpace(name)

		chapters = append(chapters, domain.ChapterText{
			Chapter:  name,
			Position: len(chapters) + 1,
			Text:     section,
		})
	}
	return chapters
}

// titleFromPath derives a human-readable title from the file name.
func titleFromPath(path string) string {
	filename := filepath.Base(path)

	ext := filepath.Ext(filename)
	if ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}

	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")

	return filename
}
