package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsJSON bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the search indexes",
}

var indexRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Drop and recreate all indexes",
	Long: `Drops and recreates every search index. All indexed content is
lost and every book must be re-added afterwards. Searches fail while
the rebuild runs.`,
	RunE: runIndexRebuild,
}

var indexOptimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Compact the indexes",
	Long: `Merges index segments for faster queries. Safe to run at any
time; failure affects performance only.`,
	RunE: runIndexOptimize,
}

var indexStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	RunE:  runIndexStats,
}

func init() {
	indexStatsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")

	indexCmd.AddCommand(indexRebuildCmd)
	indexCmd.AddCommand(indexOptimizeCmd)
	indexCmd.AddCommand(indexStatsCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndexRebuild(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	if err := indexService.Rebuild(cmd.Context()); err != nil {
		return fmt.Errorf("rebuilding indexes: %w", err)
	}
	cmd.Println("Indexes rebuilt. Re-add your books to repopulate them.")
	return nil
}

func runIndexOptimize(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	if err := indexService.Optimize(cmd.Context()); err != nil {
		return fmt.Errorf("optimizing indexes: %w", err)
	}
	cmd.Println("Indexes optimized.")
	return nil
}

func runIndexStats(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	stats, err := indexService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading index stats: %w", err)
	}

	if statsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Indexed books:    %d\n", stats.IndexedBooks)
	cmd.Printf("Content entries:  %d\n", stats.ContentEntries)
	cmd.Printf("Bookmarks:        %d\n", stats.BookmarkItems)
	cmd.Printf("Notes:            %d\n", stats.NoteItems)
	cmd.Printf("History entries:  %d\n", stats.HistoryEntries)
	return nil
}
