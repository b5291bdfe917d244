package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

func TestIndexRebuildCmd_Rebuilds(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "rebuild"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	mock := indexService.(*mockIndexService)
	assert.Equal(t, 1, mock.rebuildCalls)
	assert.Contains(t, buf.String(), "Indexes rebuilt")
}

func TestIndexOptimizeCmd_Optimizes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "optimize"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	mock := indexService.(*mockIndexService)
	assert.Equal(t, 1, mock.optimizeCalls)
	assert.Contains(t, buf.String(), "Indexes optimized.")
}

func TestIndexStatsCmd_PrintsCounts(t *testing.T) {
	oldService := searchService
	oldIndex := indexService
	searchService = &mockSearchService{}
	indexService = &mockIndexService{
		stats: domain.SearchStats{
			IndexedBooks:   3,
			ContentEntries: 120,
			BookmarkItems:  7,
			NoteItems:      4,
			HistoryEntries: 15,
		},
	}
	defer func() {
		searchService = oldService
		indexService = oldIndex
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Indexed books:    3")
	assert.Contains(t, buf.String(), "Content entries:  120")
	assert.Contains(t, buf.String(), "History entries:  15")
}

func TestIndexStatsCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "stats", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		statsJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"indexedBooks"`)
}

func TestIndexRebuildCmd_ServiceError(t *testing.T) {
	oldService := searchService
	oldIndex := indexService
	searchService = &mockSearchService{}
	indexService = &mockIndexService{err: domain.ErrIndexCreationFailed}
	defer func() {
		searchService = oldService
		indexService = oldIndex
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"index", "rebuild"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIndexCreationFailed)
}
