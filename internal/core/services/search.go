package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
	"github.com/quill-labs/stacks-cli/internal/core/ports/driven"
	"github.com/quill-labs/stacks-cli/internal/core/ports/driving"
	"github.com/quill-labs/stacks-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// DefaultSearchTimeout bounds the whole fan-out-merge-paginate pipeline.
const DefaultSearchTimeout = 30 * time.Second

// suggestionCacheSize bounds the partial-query suggestion cache.
const suggestionCacheSize = 128

// noFetchLimit asks the executors for every match. Non-positive limits
// mean "no limit" at the SearchIndex port.
const noFetchLimit = 0

// executorOrder fixes the concatenation order of source outputs so that
// relevance ties break deterministically.
var executorOrder = []domain.SearchResultType{
	domain.ResultTypeMetadata,
	domain.ResultTypeContent,
	domain.ResultTypeBookmark,
	domain.ResultTypeNote,
}

// SearchService provides multi-source full-text search over the four
// content indexes, plus search history and autocomplete suggestions.
type SearchService struct {
	index   driven.SearchIndex
	store   driven.HistoryStore
	avail   *Availability
	timeout time.Duration

	history *historyList

	suggestions *lru.Cache[string, []string]
}

// NewSearchService creates a new search service. The history store is
// optional (can be nil); history is then session-scoped only.
func NewSearchService(index driven.SearchIndex, store driven.HistoryStore, avail *Availability) *SearchService {
	cache, _ := lru.New[string, []string](suggestionCacheSize)
	return &SearchService{
		index:       index,
		store:       store,
		avail:       avail,
		timeout:     DefaultSearchTimeout,
		history:     newHistoryList(domain.MaxHistoryEntries),
		suggestions: cache,
	}
}

// SetTimeout overrides the pipeline timeout. Used by tests to inject a
// short deadline.
func (s *SearchService) SetTimeout(d time.Duration) {
	if d > 0 {
		s.timeout = d
	}
}

// Search performs a full multi-source search.
func (s *SearchService) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query.Text)

	// Validation happens before any index is touched.
	if err := query.Validate(); err != nil {
		logger.Debug("Query rejected: %v", err)
		return nil, err
	}
	if err := s.avail.Ready(); err != nil {
		return nil, err
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sources := selectSources(query.Filters)
	text := strings.TrimSpace(query.Text)

	// Fetch every match: TotalCount is the pre-pagination count, so the
	// page boundary must not cap the executors.
	merged, err := s.fanOut(ctx, sources, text, noFetchLimit)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("Search timed out after %s", s.timeout)
			return nil, &domain.TimeoutError{Query: query.Text, Timeout: s.timeout}
		}
		logger.Warn("Search failed: %v", err)
		return nil, err
	}

	logger.Debug("Merged results: %d", len(merged))

	sortResults(merged, query.Sort)

	total := len(merged)
	page := applyPagination(merged, query.Pagination)

	logger.Info("Final results: %d of %d", len(page), total)

	return &domain.SearchResponse{
		Results:         page,
		TotalCount:      total,
		Pagination:      query.Pagination,
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// SearchMetadata searches only the book metadata index.
func (s *SearchService) SearchMetadata(ctx context.Context, text string) (*domain.SearchResponse, error) {
	return s.searchSingle(ctx, text, domain.ResultTypeMetadata)
}

// SearchContent searches only the book content index.
func (s *SearchService) SearchContent(ctx context.Context, text string) (*domain.SearchResponse, error) {
	return s.searchSingle(ctx, text, domain.ResultTypeContent)
}

// SearchBookmarks searches only the bookmark index.
func (s *SearchService) SearchBookmarks(ctx context.Context, text string) (*domain.SearchResponse, error) {
	return s.searchSingle(ctx, text, domain.ResultTypeBookmark)
}

// SearchNotes searches only the note index.
func (s *SearchService) SearchNotes(ctx context.Context, text string) (*domain.SearchResponse, error) {
	return s.searchSingle(ctx, text, domain.ResultTypeNote)
}

func (s *SearchService) searchSingle(ctx context.Context, text string, t domain.SearchResultType) (*domain.SearchResponse, error) {
	query := domain.NewSearchQuery(text)
	query.Filters.ResultTypes = []domain.SearchResultType{t}
	return s.Search(ctx, query)
}

// selectSources resolves the filter set to the executors that will run.
// Reserved result types (chapter, tableOfContents) have no producer and
// are silently skipped.
func selectSources(filters domain.SearchFilters) []domain.SearchResultType {
	if len(filters.ResultTypes) == 0 {
		return executorOrder
	}

	requested := make(map[domain.SearchResultType]bool, len(filters.ResultTypes))
	for _, t := range filters.ResultTypes {
		requested[t] = true
	}

	var sources []domain.SearchResultType
	for _, t := range executorOrder {
		if requested[t] {
			sources = append(sources, t)
		}
	}
	return sources
}

// sourceResult carries one executor's outcome through the fan-out channel.
type sourceResult struct {
	source  domain.SearchResultType
	results []domain.SearchResult
	err     error
}

// fanOut runs all selected executors concurrently and waits for every one
// before merging, so total latency is bounded by the slowest source. Any
// executor failure fails the whole search; on timeout, partial results
// from faster sources are discarded.
func (s *SearchService) fanOut(ctx context.Context, sources []domain.SearchResultType, text string, limit int) ([]domain.SearchResult, error) {
	resultChan := make(chan sourceResult, len(sources))

	for _, src := range sources {
		go func(src domain.SearchResultType) {
			results, err := s.searchSource(ctx, src, text, limit)
			resultChan <- sourceResult{source: src, results: results, err: err}
		}(src)
	}

	bySource := make(map[domain.SearchResultType][]domain.SearchResult, len(sources))
	for range sources {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case r := <-resultChan:
			if r.err != nil {
				return nil, r.err
			}
			bySource[r.source] = r.results
		}
	}

	// Concatenate in fixed executor order. Sources are peers: no
	// weighting, no cross-source deduplication.
	var merged []domain.SearchResult
	for _, src := range executorOrder {
		merged = append(merged, bySource[src]...)
	}
	return merged, nil
}

// searchSource dispatches to one executor and maps its typed rows into
// the common result shape.
func (s *SearchService) searchSource(ctx context.Context, src domain.SearchResultType, text string, limit int) ([]domain.SearchResult, error) {
	switch src {
	case domain.ResultTypeMetadata:
		rows, err := s.index.SearchMetadata(ctx, text, limit)
		if err != nil {
			return nil, &domain.DatabaseError{Op: "search metadata", Err: err}
		}
		return mapMetadataRows(rows, text), nil

	case domain.ResultTypeContent:
		rows, err := s.index.SearchContent(ctx, text, limit)
		if err != nil {
			return nil, &domain.DatabaseError{Op: "search content", Err: err}
		}
		return mapContentRows(rows, text), nil

	case domain.ResultTypeBookmark:
		rows, err := s.index.SearchBookmarks(ctx, text, limit)
		if err != nil {
			return nil, &domain.DatabaseError{Op: "search bookmarks", Err: err}
		}
		return mapBookmarkRows(rows, text), nil

	case domain.ResultTypeNote:
		rows, err := s.index.SearchNotes(ctx, text, limit)
		if err != nil {
			return nil, &domain.DatabaseError{Op: "search notes", Err: err}
		}
		return mapNoteRows(rows, text), nil
	}

	return nil, fmt.Errorf("unknown search source %q", src)
}

// mapMetadataRows converts metadata index rows into results.
func mapMetadataRows(rows []driven.MetadataRow, query string) []domain.SearchResult {
	results := make([]domain.SearchResult, len(rows))
	for i, r := range rows {
		results[i] = domain.SearchResult{
			ID:             fmt.Sprintf("%s_metadata", r.BookID),
			Type:           domain.ResultTypeMetadata,
			Title:          r.Title,
			Description:    r.Author,
			RelevanceScore: NormalizeScore(r.Score),
			BookID:         r.BookID,
			Context:        r.Genre,
			DateAdded:      r.IndexedAt,
			DateModified:   r.IndexedAt,
		}
		if r.Description != "" {
			results[i].Snippet = ExtractSnippet(r.Description, query)
		}
	}
	return results
}

// mapContentRows converts content index rows into results, enriching
// each with a snippet around the first match.
func mapContentRows(rows []driven.ContentRow, query string) []domain.SearchResult {
	results := make([]domain.SearchResult, len(rows))
	for i, r := range rows {
		title := r.Chapter
		if title == "" {
			title = fmt.Sprintf("Chapter %d", r.Position)
		}
		snippet := ExtractSnippet(r.Content, query)
		results[i] = domain.SearchResult{
			ID:             fmt.Sprintf("%s_content_%d", r.BookID, r.Position),
			Type:           domain.ResultTypeContent,
			Title:          title,
			Description:    snippet,
			RelevanceScore: NormalizeScore(r.Score),
			BookID:         r.BookID,
			Context:        r.Chapter,
			Position:       r.Position,
			Snippet:        snippet,
			DateAdded:      r.IndexedAt,
			DateModified:   r.IndexedAt,
		}
	}
	return results
}

// mapBookmarkRows converts bookmark index rows into results.
func mapBookmarkRows(rows []driven.BookmarkRow, query string) []domain.SearchResult {
	results := make([]domain.SearchResult, len(rows))
	for i, r := range rows {
		results[i] = domain.SearchResult{
			ID:             fmt.Sprintf("%s_bookmark_%d", r.BookID, r.Position),
			Type:           domain.ResultTypeBookmark,
			Title:          r.BookmarkText,
			Description:    r.Note,
			RelevanceScore: NormalizeScore(r.Score),
			BookID:         r.BookID,
			Context:        r.Chapter,
			Position:       r.Position,
			Snippet:        ExtractSnippet(joinNonEmpty(r.BookmarkText, r.Note), query),
			DateAdded:      r.CreatedAt,
			DateModified:   r.CreatedAt,
		}
	}
	return results
}

// mapNoteRows converts note index rows into results.
func mapNoteRows(rows []driven.NoteRow, query string) []domain.SearchResult {
	results := make([]domain.SearchResult, len(rows))
	for i, r := range rows {
		title := r.NoteTitle
		if title == "" {
			title = ExtractSnippet(r.NoteContent, query)
		}
		results[i] = domain.SearchResult{
			ID:             fmt.Sprintf("%s_note_%d", r.BookID, r.Position),
			Type:           domain.ResultTypeNote,
			Title:          title,
			Description:    r.NoteContent,
			RelevanceScore: NormalizeScore(r.Score),
			BookID:         r.BookID,
			Context:        r.Chapter,
			Position:       r.Position,
			Snippet:        ExtractSnippet(r.NoteContent, query),
			DateAdded:      r.CreatedAt,
			DateModified:   r.CreatedAt,
		}
	}
	return results
}

// joinNonEmpty joins the non-empty parts with a single space.
func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
