package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [partial]",
	Short: "Autocomplete a partial query",
	Long: `Returns query suggestions for a partial input, combining recent
searches with matching book titles.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	suggestions, err := searchService.Suggestions(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetching suggestions: %w", err)
	}

	if len(suggestions) == 0 {
		cmd.Println(noResultsStyle.Render("No suggestions."))
		return nil
	}
	for _, s := range suggestions {
		cmd.Println(s)
	}
	return nil
}
