package domain

import "time"

// BookFormat is the source file format a book was extracted from.
type BookFormat string

// Supported book formats.
const (
	FormatEPUB BookFormat = "epub"
	FormatPDF  BookFormat = "pdf"
	FormatTXT  BookFormat = "txt"
)

// BookMetadata carries the searchable metadata fields for a book.
// A nil *BookMetadata on update means "no change".
type BookMetadata struct {
	Title       string
	Author      string
	Description string
	Genre       string
	Language    string
}

// ChapterText is one unit of extracted book text, keyed by its in-book
// position. Produced by the text-extraction collaborator prior to indexing.
type ChapterText struct {
	// Chapter is the human-readable chapter name.
	Chapter string

	// Position is the sequential index of the chapter within the book.
	Position int

	// PageNumber is the page the chapter starts on, when known.
	PageNumber int

	// Text is the extracted plain text.
	Text string
}

// Bookmark is a user bookmark to be indexed for search.
type Bookmark struct {
	// Text is the bookmark label.
	Text string

	// Note is an optional annotation attached to the bookmark.
	Note string

	Chapter   string
	Position  int
	CreatedAt time.Time
}

// Note is a user note to be indexed for search.
type Note struct {
	Title   string
	Content string

	// Tags is a space-separated tag list.
	Tags string

	Chapter   string
	Position  int
	CreatedAt time.Time
}

// RecentSearch is one entry of the bounded search history,
// most-recent-first. Query text is unique within the history.
type RecentSearch struct {
	Query     string    `json:"query"`
	CreatedAt time.Time `json:"createdAt"`
}

// MaxHistoryEntries bounds the search history.
const MaxHistoryEntries = 50

// MaxSuggestions caps suggestion lists returned to callers.
const MaxSuggestions = 10
