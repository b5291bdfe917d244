package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string   `json:"query" jsonschema:"the search query to run against the library"`
	Types []string `json:"types,omitempty" jsonschema:"restrict to result types: metadata, content, bookmark, note"`
	Limit int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results    []SearchResultOutput `json:"results"`
	Count      int                  `json:"count"`
	TotalCount int                  `json:"total_count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	BookID      string  `json:"book_id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Score       float64 `json:"score"`
	Context     string  `json:"context,omitempty"`
	Position    int     `json:"position,omitempty"`
	Snippet     string  `json:"snippet,omitempty"`
}

// SuggestInput is the input schema for the suggest tool.
type SuggestInput struct {
	Partial string `json:"partial" jsonschema:"partial query text to complete"`
}

// SuggestOutput is the output schema for the suggest tool.
type SuggestOutput struct {
	Suggestions []string `json:"suggestions"`
}

// RecentSearchesInput is the input schema for the recent_searches tool.
type RecentSearchesInput struct{}

// RecentSearchOutput represents a single history entry.
type RecentSearchOutput struct {
	Query     string `json:"query"`
	CreatedAt string `json:"created_at"`
}

// RecentSearchesOutput is the output schema for the recent_searches tool.
type RecentSearchesOutput struct {
	Searches []RecentSearchOutput `json:"searches"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search book metadata, content, bookmarks and notes in the library",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "Suggest query completions from search history and book titles",
	}, s.handleSuggest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recent_searches",
		Description: "List recent search queries, most recent first",
	}, s.handleRecentSearches)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	query := domain.NewSearchQuery(input.Query)
	if input.Limit > 0 {
		query.Pagination.Limit = input.Limit
	} else {
		query.Pagination.Limit = 10
	}
	for _, t := range input.Types {
		query.Filters.ResultTypes = append(query.Filters.ResultTypes, domain.SearchResultType(t))
	}

	resp, err := s.ports.Search.Search(ctx, query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results:    make([]SearchResultOutput, len(resp.Results)),
		Count:      len(resp.Results),
		TotalCount: resp.TotalCount,
	}

	for i := range resp.Results {
		r := &resp.Results[i]
		output.Results[i] = SearchResultOutput{
			ID:          r.ID,
			Type:        string(r.Type),
			BookID:      r.BookID,
			Title:       r.Title,
			Description: r.Description,
			Score:       r.RelevanceScore,
			Context:     r.Context,
			Position:    r.Position,
			Snippet:     r.Snippet,
		}
	}

	return nil, output, nil
}

// handleSuggest handles the suggest tool invocation.
func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	suggestions, err := s.ports.Search.Suggestions(ctx, input.Partial)
	if err != nil {
		return nil, SuggestOutput{}, err
	}
	return nil, SuggestOutput{Suggestions: suggestions}, nil
}

// handleRecentSearches handles the recent_searches tool invocation.
func (s *Server) handleRecentSearches(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ RecentSearchesInput,
) (*mcp.CallToolResult, RecentSearchesOutput, error) {
	recent := s.ports.Search.RecentSearches()

	output := RecentSearchesOutput{
		Searches: make([]RecentSearchOutput, len(recent)),
	}
	for i, r := range recent {
		output.Searches[i] = RecentSearchOutput{
			Query:     r.Query,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		}
	}

	return nil, output, nil
}
