package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		mockSearch := &mockSearchService{
			response: &domain.SearchResponse{
				Results: []domain.SearchResult{
					{
						ID:             "book-1_content_3",
						Type:           domain.ResultTypeContent,
						BookID:         "book-1",
						Title:          "Chapter 3",
						Description:    "Flutter Development Guide",
						RelevanceScore: 0.8,
						Context:        "Chapter 3",
						Position:       3,
						Snippet:        "...widgets compose into trees...",
					},
				},
				TotalCount: 1,
			},
		}

		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "widgets", Limit: 10}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, 1, output.TotalCount)
		require.Len(t, output.Results, 1)
		assert.Equal(t, "book-1_content_3", output.Results[0].ID)
		assert.Equal(t, "content", output.Results[0].Type)
		assert.Equal(t, "book-1", output.Results[0].BookID)
		assert.Equal(t, "Chapter 3", output.Results[0].Title)
		assert.Equal(t, 0.8, output.Results[0].Score)
		assert.Equal(t, 3, output.Results[0].Position)
		assert.Equal(t, "...widgets compose into trees...", output.Results[0].Snippet)
	})

	t.Run("default limit is 10", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "widgets", Limit: 0}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Equal(t, 10, mockSearch.lastQuery.Pagination.Limit)
	})

	t.Run("types restrict the search", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "widgets", Types: []string{"note", "bookmark"}}
		_, _, err = server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, []domain.SearchResultType{
			domain.ResultTypeNote,
			domain.ResultTypeBookmark,
		}, mockSearch.lastQuery.Filters.ResultTypes)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		mockSearch := &mockSearchService{
			err: errors.New("search failed"),
		}

		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "widgets"}
		_, _, err = server.handleSearch(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}

func TestServer_handleSuggest(t *testing.T) {
	ctx := context.Background()

	t.Run("returns suggestions", func(t *testing.T) {
		mockSearch := &mockSearchService{
			suggestions: []string{"flutter", "flutter widgets"},
		}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, output, err := server.handleSuggest(ctx, nil, SuggestInput{Partial: "flu"})

		require.NoError(t, err)
		assert.Equal(t, []string{"flutter", "flutter widgets"}, output.Suggestions)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mockSearch := &mockSearchService{err: errors.New("index unavailable")}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, _, err = server.handleSuggest(ctx, nil, SuggestInput{Partial: "flu"})
		assert.Error(t, err)
	})
}

func TestServer_handleRecentSearches(t *testing.T) {
	ctx := context.Background()

	t.Run("returns history entries", func(t *testing.T) {
		created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		mockSearch := &mockSearchService{
			recent: []domain.RecentSearch{
				{Query: "flutter", CreatedAt: created},
				{Query: "dart", CreatedAt: created.Add(-time.Hour)},
			},
		}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, output, err := server.handleRecentSearches(ctx, nil, RecentSearchesInput{})

		require.NoError(t, err)
		require.Len(t, output.Searches, 2)
		assert.Equal(t, "flutter", output.Searches[0].Query)
		assert.Equal(t, "2026-05-01T12:00:00Z", output.Searches[0].CreatedAt)
		assert.Equal(t, "dart", output.Searches[1].Query)
	})

	t.Run("empty history", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		_, output, err := server.handleRecentSearches(ctx, nil, RecentSearchesInput{})

		require.NoError(t, err)
		assert.Empty(t, output.Searches)
	})
}
