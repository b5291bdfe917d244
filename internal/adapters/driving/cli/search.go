package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

var (
	searchTypes  []string
	searchSort   string
	searchOrder  string
	searchLimit  int
	searchOffset int
	searchJSON   bool
)

// Result rendering styles.
var (
	resultTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))

	resultTypeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	resultMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	resultSnippetStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				PaddingLeft(6)

	noResultsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the library",
	Long: `Searches book metadata, book content, bookmarks and notes in one
pass and merges the results by relevance.

Use --type to restrict the search to specific indexes:
  stacks search --type metadata --type note "flutter"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringArrayVarP(&searchTypes, "type", "t", nil,
		"result types to search (metadata, content, bookmark, note)")
	searchCmd.Flags().StringVar(&searchSort, "sort", string(domain.SortByRelevance),
		"sort field (relevance, title, dateAdded, dateModified, position)")
	searchCmd.Flags().StringVar(&searchOrder, "order", string(domain.SortDescending),
		"sort order (ascending, descending)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "number of results to skip")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	query := domain.NewSearchQuery(args[0])
	query.Sort = domain.SearchSort{
		Field: domain.SortField(searchSort),
		Order: domain.SortOrder(searchOrder),
	}
	query.Pagination = domain.SearchPagination{
		Offset: searchOffset,
		Limit:  searchLimit,
	}
	for _, t := range searchTypes {
		query.Filters.ResultTypes = append(query.Filters.ResultTypes, domain.SearchResultType(t))
	}

	resp, err := searchService.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	// Successful searches go into the history; a persistence failure
	// must not fail the search itself.
	if err := searchService.SaveToHistory(cmd.Context(), args[0]); err != nil {
		cmd.PrintErrf("Warning: could not save to history: %v\n", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, resp)
	}
	return outputSearchStyled(cmd, resp)
}

func outputSearchJSON(cmd *cobra.Command, resp *domain.SearchResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchStyled(cmd *cobra.Command, resp *domain.SearchResponse) error {
	if len(resp.Results) == 0 {
		cmd.Println(noResultsStyle.Render("No results found."))
		return nil
	}

	for i, r := range resp.Results {
		header := fmt.Sprintf("[%d] %s %s",
			resp.Pagination.Offset+i+1,
			resultTitleStyle.Render(r.Title),
			resultTypeStyle.Render("("+string(r.Type)+")"))
		cmd.Println(header)

		meta := []string{fmt.Sprintf("book %s", r.BookID)}
		if r.Context != "" {
			meta = append(meta, r.Context)
		}
		if r.Position > 0 {
			meta = append(meta, fmt.Sprintf("position %d", r.Position))
		}
		meta = append(meta, fmt.Sprintf("score %.2f", r.RelevanceScore))
		cmd.Println("      " + resultMetaStyle.Render(strings.Join(meta, " · ")))

		if r.Snippet != "" {
			cmd.Println(resultSnippetStyle.Render(r.Snippet))
		}
		cmd.Println()
	}

	summary := fmt.Sprintf("%d of %d results", len(resp.Results), resp.TotalCount)
	if resp.HasMore() {
		summary += fmt.Sprintf(" (use --offset %d for more)", resp.Pagination.Offset+len(resp.Results))
	}
	cmd.Println(resultMetaStyle.Render(summary))
	return nil
}
