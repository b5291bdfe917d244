package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

var (
	bookmarkText    string
	bookmarkNote    string
	bookmarkChapter string
	bookmarkPos     int

	noteTitle   string
	noteContent string
	noteTags    string
	noteChapter string
	notePos     int
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage indexed bookmarks",
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add [book-id]",
	Short: "Index a bookmark",
	Long: `Adds a bookmark to the bookmark index. A bookmark at the same
position in the same book is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runBookmarkAdd,
}

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage indexed notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add [book-id]",
	Short: "Index a note",
	Long: `Adds a note to the note index. A note at the same position in
the same book is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteAdd,
}

func init() {
	bookmarkAddCmd.Flags().StringVar(&bookmarkText, "text", "", "bookmark label (required)")
	bookmarkAddCmd.Flags().StringVar(&bookmarkNote, "note", "", "annotation attached to the bookmark")
	bookmarkAddCmd.Flags().StringVar(&bookmarkChapter, "chapter", "", "chapter name")
	bookmarkAddCmd.Flags().IntVar(&bookmarkPos, "position", 0, "in-book position")
	bookmarkCmd.AddCommand(bookmarkAddCmd)
	rootCmd.AddCommand(bookmarkCmd)

	noteAddCmd.Flags().StringVar(&noteTitle, "title", "", "note title")
	noteAddCmd.Flags().StringVar(&noteContent, "content", "", "note content (required)")
	noteAddCmd.Flags().StringVar(&noteTags, "tags", "", "space-separated tags")
	noteAddCmd.Flags().StringVar(&noteChapter, "chapter", "", "chapter name")
	noteAddCmd.Flags().IntVar(&notePos, "position", 0, "in-book position")
	noteCmd.AddCommand(noteAddCmd)
	rootCmd.AddCommand(noteCmd)
}

func runBookmarkAdd(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}
	if bookmarkText == "" {
		return errors.New("--text is required")
	}

	bookmark := domain.Bookmark{
		Text:     bookmarkText,
		Note:     bookmarkNote,
		Chapter:  bookmarkChapter,
		Position: bookmarkPos,
	}
	if err := indexService.IndexBookmark(cmd.Context(), args[0], bookmark); err != nil {
		return fmt.Errorf("indexing bookmark: %w", err)
	}
	cmd.Printf("Indexed bookmark for book %s\n", args[0])
	return nil
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}
	if noteContent == "" {
		return errors.New("--content is required")
	}

	note := domain.Note{
		Title:    noteTitle,
		Content:  noteContent,
		Tags:     noteTags,
		Chapter:  noteChapter,
		Position: notePos,
	}
	if err := indexService.IndexNote(cmd.Context(), args[0], note); err != nil {
		return fmt.Errorf("indexing note: %w", err)
	}
	cmd.Printf("Indexed note for book %s\n", args[0])
	return nil
}
