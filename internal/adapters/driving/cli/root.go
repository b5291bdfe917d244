// Package cli provides the stacks command-line interface.
// Commands are thin shells over the driving ports; all search and index
// semantics live in the core services.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/quill-labs/stacks-cli/internal/adapters/driven/config/file"
	"github.com/quill-labs/stacks-cli/internal/adapters/driven/extract/plaintext"
	"github.com/quill-labs/stacks-cli/internal/adapters/driven/storage/sqlite"
	"github.com/quill-labs/stacks-cli/internal/core/ports/driving"
	"github.com/quill-labs/stacks-cli/internal/core/services"
	"github.com/quill-labs/stacks-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Package-level services, wired once by initServices. Tests substitute
// mocks directly.
var (
	searchService driving.SearchService
	indexService  driving.IndexService

	store *sqlite.Store
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stacks",
	Short: "Search your personal digital library",
	Long: `Stacks indexes the books, bookmarks and notes of your personal
library into local full-text indexes and searches them offline.

All data stays on this machine; no network access is required.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		switch cmd.Name() {
		case "version", "help", "completion":
			return nil
		}
		return initServices(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// initServices builds the composition root: config, store, shared
// availability gate, then the two services. Idempotent.
func initServices(cmd *cobra.Command) error {
	if searchService != nil || indexService != nil {
		return nil
	}

	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, err = sqlite.NewStore(cfg.GetString("data.dir"))
	if err != nil {
		return fmt.Errorf("opening library database: %w", err)
	}

	avail := services.NewAvailability()
	search := services.NewSearchService(store.SearchIndex(), store.HistoryStore(), avail)
	if timeout := searchTimeoutFromConfig(cfg.GetInt("search.timeout_seconds")); timeout > 0 {
		search.SetTimeout(timeout)
	}

	index := services.NewIndexService(store.IndexAdmin(), plaintext.New(), avail)
	index.SetHistoryLoader(search)

	if err := index.Initialize(cmd.Context()); err != nil {
		return fmt.Errorf("initializing search indexes: %w", err)
	}

	searchService = search
	indexService = index
	return nil
}

// searchTimeoutFromConfig converts the configured timeout to a duration;
// zero or unset keeps the service default.
func searchTimeoutFromConfig(seconds int) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// Execute runs the root command.
func Execute() {
	defer func() {
		if store != nil {
			store.Close() //nolint:errcheck
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
