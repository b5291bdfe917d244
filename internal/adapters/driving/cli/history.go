package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long:  `Lists recent searches, most recent first.`,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the search history",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	recent := searchService.RecentSearches()
	if len(recent) == 0 {
		cmd.Println(noResultsStyle.Render("No recent searches."))
		return nil
	}

	for _, entry := range recent {
		cmd.Printf("%s  %s\n",
			resultMetaStyle.Render(entry.CreatedAt.Local().Format("2006-01-02 15:04")),
			entry.Query)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	if err := searchService.ClearHistory(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("Search history cleared.")
	return nil
}
