package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

func writeTestBook(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestExtract_SingleChapter(t *testing.T) {
	path := writeTestBook(t, "field_notes.txt", "Field Notes\nObservations from the garden.")

	meta, chapters, err := New().Extract(context.Background(), path, domain.FormatTXT)
	require.NoError(t, err)

	require.NotNil(t, meta)
	assert.Equal(t, "field notes", meta.Title)

	require.Len(t, chapters, 1)
	assert.Equal(t, "Field Notes", chapters[0].Chapter)
	assert.Equal(t, 1, chapters[0].Position)
	assert.Contains(t, chapters[0].Text, "Observations")
}

func TestExtract_MultipleChapters(t *testing.T) {
	content := "Chapter One\nIt begins.\n\n\nChapter Two\nIt continues.\n\n\nChapter Three\nIt ends."
	path := writeTestBook(t, "novel.txt", content)

	_, chapters, err := New().Extract(context.Background(), path, domain.FormatTXT)
	require.NoError(t, err)

	require.Len(t, chapters, 3)
	assert.Equal(t, "Chapter One", chapters[0].Chapter)
	assert.Equal(t, "Chapter Two", chapters[1].Chapter)
	assert.Equal(t, "Chapter Three", chapters[2].Chapter)
	for i, ch := range chapters {
		assert.Equal(t, i+1, ch.Position)
	}
}

func TestExtract_WindowsLineEndings(t *testing.T) {
	content := "One\r\nfirst text\r\n\r\n\r\nTwo\r\nsecond text"
	path := writeTestBook(t, "dos.txt", content)

	_, chapters, err := New().Extract(context.Background(), path, domain.FormatTXT)
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	assert.Equal(t, "One", chapters[0].Chapter)
	assert.Equal(t, "Two", chapters[1].Chapter)
}

func TestExtract_EmptyFile(t *testing.T) {
	path := writeTestBook(t, "empty.txt", "")

	_, chapters, err := New().Extract(context.Background(), path, domain.FormatTXT)
	require.NoError(t, err)
	assert.Empty(t, chapters)
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	_, _, err := New().Extract(context.Background(), "book.epub", domain.FormatEPUB)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestExtract_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")

	_, _, err := New().Extract(context.Background(), path, domain.FormatTXT)
	assert.Error(t, err)
}

func TestExtract_CancelledContext(t *testing.T) {
	path := writeTestBook(t, "book.txt", "content")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := New().Extract(ctx, path, domain.FormatTXT)
	assert.ErrorIs(t, err, context.Canceled)
}
