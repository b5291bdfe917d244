package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Manage indexed books",
	Long:  `Add, update, or remove books from the search indexes.`,
}

var (
	bookID       string
	bookFormat   string
	bookTitle    string
	bookAuthor   string
	bookDesc     string
	bookGenre    string
	bookLanguage string
)

var bookAddCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Index a book file",
	Long: `Extracts text from the book at the given path and indexes its
content and metadata. Re-adding a book with the same ID replaces its
indexed content.`,
	Args: cobra.ExactArgs(1),
	RunE: runBookAdd,
}

var bookRemoveCmd = &cobra.Command{
	Use:   "remove [book-id]",
	Short: "Remove a book from all indexes",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookRemove,
}

var bookUpdateCmd = &cobra.Command{
	Use:   "update [book-id]",
	Short: "Update a book's metadata",
	Long: `Updates the metadata index row for a book. Only the provided
flags change; omitted fields keep their current values.`,
	Args: cobra.ExactArgs(1),
	RunE: runBookUpdate,
}

func init() {
	bookAddCmd.Flags().StringVar(&bookID, "id", "", "book ID (generated when omitted)")
	bookAddCmd.Flags().StringVarP(&bookFormat, "format", "f", "", "book format (epub, pdf, txt; inferred from extension when omitted)")

	bookUpdateCmd.Flags().StringVar(&bookTitle, "title", "", "book title")
	bookUpdateCmd.Flags().StringVar(&bookAuthor, "author", "", "book author")
	bookUpdateCmd.Flags().StringVar(&bookDesc, "description", "", "book description")
	bookUpdateCmd.Flags().StringVar(&bookGenre, "genre", "", "book genre")
	bookUpdateCmd.Flags().StringVar(&bookLanguage, "language", "", "book language")

	bookCmd.AddCommand(bookAddCmd)
	bookCmd.AddCommand(bookRemoveCmd)
	bookCmd.AddCommand(bookUpdateCmd)
	rootCmd.AddCommand(bookCmd)
}

func runBookAdd(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	path := args[0]

	id := bookID
	if id == "" {
		id = uuid.New().String()
	}

	format := domain.BookFormat(bookFormat)
	if format == "" {
		format = formatFromPath(path)
	}

	if err := indexService.IndexBook(cmd.Context(), id, path, format); err != nil {
		return fmt.Errorf("indexing book: %w", err)
	}

	cmd.Printf("Indexed %s as book %s\n", filepath.Base(path), id)
	return nil
}

func runBookRemove(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	if err := indexService.RemoveBook(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("removing book: %w", err)
	}
	cmd.Printf("Removed book %s from all indexes\n", args[0])
	return nil
}

func runBookUpdate(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	meta := &domain.BookMetadata{
		Title:       bookTitle,
		Author:      bookAuthor,
		Description: bookDesc,
		Genre:       bookGenre,
		Language:    bookLanguage,
	}
	if *meta == (domain.BookMetadata{}) {
		return errors.New("at least one metadata flag is required")
	}

	if err := indexService.UpdateBookMetadata(cmd.Context(), args[0], meta); err != nil {
		return fmt.Errorf("updating metadata: %w", err)
	}
	cmd.Printf("Updated metadata for book %s\n", args[0])
	return nil
}

// formatFromPath infers the book format from the file extension.
func formatFromPath(path string) domain.BookFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".epub":
		return domain.FormatEPUB
	case ".pdf":
		return domain.FormatPDF
	default:
		return domain.FormatTXT
	}
}
