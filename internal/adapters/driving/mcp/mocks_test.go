package mcp

import (
	"context"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	response    *domain.SearchResponse
	suggestions []string
	recent      []domain.RecentSearch
	lastQuery   domain.SearchQuery
	err         error
}

func (m *mockSearchService) Search(_ context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	if m.response == nil {
		return &domain.SearchResponse{Results: []domain.SearchResult{}}, nil
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

func (m *mockSearchService) SaveToHistory(_ context.Context, _ string) error {
	return m.err
}

func (m *mockSearchService) ClearHistory(_ context.Context) error {
	return m.err
}

// mockIndexService is a mock implementation of driving.IndexService.
type mockIndexService struct {
	stats domain.SearchStats
	err   error
}

func (m *mockIndexService) Initialize(_ context.Context) error {
	return m.err
}

func (m *mockIndexService) IndexBook(_ context.Context, _, _ string, _ domain.BookFormat) error {
	return m.err
}

func (m *mockIndexService) RemoveBook(_ context.Context, _ string) error {
	return m.err
}

func (m *mockIndexService) UpdateBookMetadata(_ context.Context, _ string, _ *domain.BookMetadata) error {
	return m.err
}

func (m *mockIndexService) IndexBookmark(_ context.Context, _ string, _ domain.Bookmark) error {
	return m.err
}

func (m *mockIndexService) IndexNote(_ context.Context, _ string, _ domain.Note) error {
	return m.err
}

func (m *mockIndexService) Rebuild(_ context.Context) error {
	return m.err
}

func (m *mockIndexService) Optimize(_ context.Context) error {
	return m.err
}

func (m *mockIndexService) Stats(_ context.Context) (domain.SearchStats, error) {
	return m.stats, m.err
}
