package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MinQueryLength is the minimum trimmed query length accepted by Validate.
const MinQueryLength = 2

// SearchResultType identifies which index produced a result.
type SearchResultType string

// Result types. Chapter and table-of-contents are reserved for future
// producers; the four core indexes never emit them.
const (
	ResultTypeMetadata        SearchResultType = "metadata"
	ResultTypeContent         SearchResultType = "content"
	ResultTypeBookmark        SearchResultType = "bookmark"
	ResultTypeNote            SearchResultType = "note"
	ResultTypeChapter         SearchResultType = "chapter"
	ResultTypeTableOfContents SearchResultType = "tableOfContents"
)

// Valid reports whether t is a known result type.
func (t SearchResultType) Valid() bool {
	switch t {
	case ResultTypeMetadata, ResultTypeContent, ResultTypeBookmark,
		ResultTypeNote, ResultTypeChapter, ResultTypeTableOfContents:
		return true
	}
	return false
}

// SortField selects the comparator used when ordering merged results.
type SortField string

// Sort fields.
const (
	SortByRelevance    SortField = "relevance"
	SortByTitle        SortField = "title"
	SortByDateAdded    SortField = "dateAdded"
	SortByDateModified SortField = "dateModified"
	SortByPosition     SortField = "position"
)

// SortOrder is the direction applied to the chosen comparator.
type SortOrder string

// Sort orders.
const (
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// SearchSort configures result ordering. The zero value is not meaningful;
// use DefaultSort.
type SearchSort struct {
	Field SortField
	Order SortOrder
}

// DefaultSort returns the default ordering: relevance, best match first.
func DefaultSort() SearchSort {
	return SearchSort{Field: SortByRelevance, Order: SortDescending}
}

// SearchPagination slices the merged result set.
type SearchPagination struct {
	// Offset is the number of results to skip. Must be >= 0.
	Offset int `json:"offset"`

	// Limit is the maximum number of results returned. Must be > 0.
	Limit int `json:"limit"`
}

// DefaultPagination returns the first page with a sensible page size.
func DefaultPagination() SearchPagination {
	return SearchPagination{Offset: 0, Limit: 20}
}

// SearchFilters restricts which indexes a search runs against.
type SearchFilters struct {
	// ResultTypes limits the search to specific indexes.
	// Empty means all four core indexes.
	ResultTypes []SearchResultType
}

// SearchQuery is a full search request.
type SearchQuery struct {
	Text       string
	Filters    SearchFilters
	Sort       SearchSort
	Pagination SearchPagination
}

// NewSearchQuery builds a query with default sort and pagination.
func NewSearchQuery(text string) SearchQuery {
	return SearchQuery{
		Text:       text,
		Sort:       DefaultSort(),
		Pagination: DefaultPagination(),
	}
}

// Validate checks the query before any index is touched.
// Validation order matches the documented contract: empty text first,
// then length, then pagination, then filters. Special characters are
// never rejected here; escaping for the index query syntax is the
// executor's responsibility.
func (q SearchQuery) Validate() error {
	trimmed := strings.TrimSpace(q.Text)
	if trimmed == "" {
		return ErrEmptyQuery
	}
	if utf8.RuneCountInString(trimmed) < MinQueryLength {
		return ErrQueryTooShort
	}
	if q.Pagination.Offset < 0 || q.Pagination.Limit <= 0 {
		return ErrInvalidPagination
	}
	for _, t := range q.Filters.ResultTypes {
		if !t.Valid() {
			return ErrInvalidFilter
		}
	}
	return nil
}

// SearchResult is a single hit from one of the indexes.
type SearchResult struct {
	// ID is unique within a single response: "{bookID}_{sourceTag}[_{position}]".
	ID string `json:"id"`

	// Type identifies the producing index.
	Type SearchResultType `json:"type"`

	// Title is the display headline (book title, chapter name, note title...).
	Title string `json:"title"`

	// Description is the secondary display line.
	Description string `json:"description"`

	// RelevanceScore is the normalized engine score in [0,1].
	// Display-only; ordering is derived from the raw engine score.
	RelevanceScore float64 `json:"relevanceScore"`

	// BookID references the book the hit belongs to.
	BookID string `json:"bookId"`

	// Context carries source-specific context such as a chapter name.
	Context string `json:"context,omitempty"`

	// Position is the in-book position for content, bookmark and note hits.
	Position int `json:"position,omitempty"`

	// Snippet is a bounded text window around the first match occurrence.
	Snippet string `json:"snippet,omitempty"`

	// DateAdded is when the backing record was indexed or created.
	DateAdded time.Time `json:"dateAdded,omitempty"`

	// DateModified is the last modification of the backing record.
	DateModified time.Time `json:"dateModified,omitempty"`
}

// SearchResponse is the outcome of a successful search. An empty Results
// slice with a nil error means "no matches", which is not a failure.
type SearchResponse struct {
	Results []SearchResult `json:"results"`

	// TotalCount is the pre-pagination match count, so callers can
	// compute whether more pages exist.
	TotalCount int `json:"totalCount"`

	// Pagination echoes the request.
	Pagination SearchPagination `json:"pagination"`

	// ExecutionTimeMs is the wall time of the whole pipeline.
	ExecutionTimeMs int64 `json:"executionTimeMs"`
}

// HasMore reports whether results exist beyond the returned page.
func (r SearchResponse) HasMore() bool {
	return r.Pagination.Offset+len(r.Results) < r.TotalCount
}

// SearchStats is diagnostic index information. Shape carries no
// stability guarantee.
type SearchStats struct {
	IndexedBooks   int `json:"indexedBooks"`
	ContentEntries int `json:"contentEntries"`
	BookmarkItems  int `json:"bookmarkItems"`
	NoteItems      int `json:"noteItems"`
	HistoryEntries int `json:"historyEntries"`
}
