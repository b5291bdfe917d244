package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SearchQuery)
		wantErr error
	}{
		{
			name:   "valid query",
			mutate: func(q *SearchQuery) {},
		},
		{
			name:    "empty text",
			mutate:  func(q *SearchQuery) { q.Text = "" },
			wantErr: ErrEmptyQuery,
		},
		{
			name:    "whitespace only",
			mutate:  func(q *SearchQuery) { q.Text = " \t\n " },
			wantErr: ErrEmptyQuery,
		},
		{
			name:    "single rune",
			mutate:  func(q *SearchQuery) { q.Text = "a" },
			wantErr: ErrQueryTooShort,
		},
		{
			name:    "single rune with padding",
			mutate:  func(q *SearchQuery) { q.Text = "  a  " },
			wantErr: ErrQueryTooShort,
		},
		{
			name:   "two multi-byte runes",
			mutate: func(q *SearchQuery) { q.Text = "日本" },
		},
		{
			name:   "special characters accepted",
			mutate: func(q *SearchQuery) { q.Text = `"SELECT * FROM" OR NOT` },
		},
		{
			name:    "negative offset",
			mutate:  func(q *SearchQuery) { q.Pagination.Offset = -1 },
			wantErr: ErrInvalidPagination,
		},
		{
			name:    "zero limit",
			mutate:  func(q *SearchQuery) { q.Pagination.Limit = 0 },
			wantErr: ErrInvalidPagination,
		},
		{
			name:    "negative limit",
			mutate:  func(q *SearchQuery) { q.Pagination.Limit = -5 },
			wantErr: ErrInvalidPagination,
		},
		{
			name: "known filter types",
			mutate: func(q *SearchQuery) {
				q.Filters.ResultTypes = []SearchResultType{ResultTypeMetadata, ResultTypeChapter}
			},
		},
		{
			name: "unknown filter type",
			mutate: func(q *SearchQuery) {
				q.Filters.ResultTypes = []SearchResultType{"hologram"}
			},
			wantErr: ErrInvalidFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewSearchQuery("valid query")
			tt.mutate(&q)

			err := q.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidQuery)
		})
	}
}

func TestNewSearchQuery_Defaults(t *testing.T) {
	q := NewSearchQuery("flutter")

	assert.Equal(t, "flutter", q.Text)
	assert.Equal(t, SortByRelevance, q.Sort.Field)
	assert.Equal(t, SortDescending, q.Sort.Order)
	assert.Equal(t, 0, q.Pagination.Offset)
	assert.Equal(t, 20, q.Pagination.Limit)
	assert.Empty(t, q.Filters.ResultTypes)
}

func TestSearchResultType_Valid(t *testing.T) {
	valid := []SearchResultType{
		ResultTypeMetadata, ResultTypeContent, ResultTypeBookmark,
		ResultTypeNote, ResultTypeChapter, ResultTypeTableOfContents,
	}
	for _, rt := range valid {
		assert.True(t, rt.Valid(), "%s", rt)
	}

	assert.False(t, SearchResultType("").Valid())
	assert.False(t, SearchResultType("hologram").Valid())
}

func TestSearchResponse_HasMore(t *testing.T) {
	resp := SearchResponse{
		Results:    make([]SearchResult, 10),
		TotalCount: 25,
		Pagination: SearchPagination{Offset: 0, Limit: 10},
	}
	assert.True(t, resp.HasMore())

	resp.Pagination.Offset = 20
	resp.Results = make([]SearchResult, 5)
	assert.False(t, resp.HasMore())

	empty := SearchResponse{TotalCount: 0}
	assert.False(t, empty.HasMore())
}
