package cli

import (
	"context"
	"time"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	response    *domain.SearchResponse
	suggestions []string
	recent      []domain.RecentSearch
	err         error

	savedQueries []string
	clearCalls   int
	lastQuery    domain.SearchQuery
}

func (m *mockSearchService) Search(_ context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	if m.response == nil {
		return &domain.SearchResponse{
			Results:    []domain.SearchResult{},
			Pagination: query.Pagination,
		}, nil
	}
	return m.response, nil
}

func (m *mockSearchService) SearchMetadata(ctx context.Context, text string) (*domain.SearchResponse, error) {
	return m.Search(ctx, domain.NewSearchQuery(text))
}

func (m *mockSearchService) SearchContent(ctx context.Context, text string) (*domain.SearchResponse, error) {
	return m.Search(ctx, domain.NewSearchQuery(text))
}

func (m *mockSearchService) SearchBookmarks(ctx context.Context, text string) (*domain.SearchResponse, error) {
	return m.Search(ctx, domain.NewSearchQuery(text))
}

func (m *mockSearchService) SearchNotes(ctx context.Context, text string) (*domain.SearchResponse, error) {
	return m.Search(ctx, domain.NewSearchQuery(text))
}

func (m *mockSearchService) Suggestions(_ context.Context, _ string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.suggestions, nil
}

func (m *mockSearchService) RecentSearches() []domain.RecentSearch {
	return m.recent
}

func (m *mockSearchService) SaveToHistory(_ context.Context, query string) error {
	m.savedQueries = append(m.savedQueries, query)
	return nil
}

func (m *mockSearchService) ClearHistory(_ context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.clearCalls++
	return nil
}

// mockIndexService is a mock implementation of driving.IndexService.
type mockIndexService struct {
	stats domain.SearchStats
	err   error

	indexedBooks  []string
	removedBooks  []string
	updatedMeta   map[string]*domain.BookMetadata
	bookmarks     map[string]domain.Bookmark
	notes         map[string]domain.Note
	rebuildCalls  int
	optimizeCalls int
}

func (m *mockIndexService) Initialize(_ context.Context) error {
	return m.err
}

func (m *mockIndexService) IndexBook(_ context.Context, bookID, _ string, _ domain.BookFormat) error {
	if m.err != nil {
		return m.err
	}
	m.indexedBooks = append(m.indexedBooks, bookID)
	return nil
}

func (m *mockIndexService) RemoveBook(_ context.Context, bookID string) error {
	if m.err != nil {
		return m.err
	}
	m.removedBooks = append(m.removedBooks, bookID)
	return nil
}

func (m *mockIndexService) UpdateBookMetadata(_ context.Context, bookID string, meta *domain.BookMetadata) error {
	if m.err != nil {
		return m.err
	}
	if m.updatedMeta == nil {
		m.updatedMeta = make(map[string]*domain.BookMetadata)
	}
	m.updatedMeta[bookID] = meta
	return nil
}

func (m *mockIndexService) IndexBookmark(_ context.Context, bookID string, bookmark domain.Bookmark) error {
	if m.err != nil {
		return m.err
	}
	if m.bookmarks == nil {
		m.bookmarks = make(map[string]domain.Bookmark)
	}
	m.bookmarks[bookID] = bookmark
	return nil
}

func (m *mockIndexService) IndexNote(_ context.Context, bookID string, note domain.Note) error {
	if m.err != nil {
		return m.err
	}
	if m.notes == nil {
		m.notes = make(map[string]domain.Note)
	}
	m.notes[bookID] = note
	return nil
}

func (m *mockIndexService) Rebuild(_ context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.rebuildCalls++
	return nil
}

func (m *mockIndexService) Optimize(_ context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.optimizeCalls++
	return nil
}

func (m *mockIndexService) Stats(_ context.Context) (domain.SearchStats, error) {
	return m.stats, m.err
}

// setupTestServices swaps the package-level services for mocks with one
// canned search result. The returned cleanup restores the originals.
func setupTestServices() func() {
	oldSearch := searchService
	oldIndex := indexService

	searchService = &mockSearchService{
		response: &domain.SearchResponse{
			Results: []domain.SearchResult{
				{
					ID:             "book-1_metadata",
					Type:           domain.ResultTypeMetadata,
					Title:          "Flutter Development Guide",
					Description:    "Jane Trellis",
					RelevanceScore: 0.9,
					BookID:         "book-1",
					DateAdded:      time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
				},
			},
			TotalCount: 1,
			Pagination: domain.DefaultPagination(),
		},
	}
	indexService = &mockIndexService{}

	return func() {
		searchService = oldSearch
		indexService = oldIndex
	}
}
