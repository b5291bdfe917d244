package services

import "strings"

// SnippetWindow is the approximate size, in runes, of extracted snippets.
const SnippetWindow = 150

// ellipsis marks a snippet edge that does not coincide with a text boundary.
const ellipsis = "..."

// ExtractSnippet returns a bounded window of text centered on the first
// case-insensitive occurrence of query. Text shorter than the window is
// returned unmodified. When the query does not occur, the leading window
// is returned with a trailing ellipsis. Ellipses are only added at edges
// that do not touch the text boundary.
func ExtractSnippet(text, query string) string {
	runes := []rune(text)
	if len(runes) <= SnippetWindow {
		return text
	}

	idx := runeIndexFold(text, strings.TrimSpace(query))
	if idx < 0 {
		return string(runes[:SnippetWindow]) + ellipsis
	}

	start := idx - SnippetWindow/2
	if start < 0 {
		start = 0
	}
	end := start + SnippetWindow
	if end > len(runes) {
		end = len(runes)
		start = end - SnippetWindow
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = ellipsis + snippet
	}
	if end < len(runes) {
		snippet += ellipsis
	}
	return snippet
}

// runeIndexFold returns the rune offset of the first case-insensitive
// occurrence of substr in s, or -1. Compares rune windows with EqualFold;
// ToLower can change byte lengths (e.g. U+0130), so byte offsets in a
// lowered copy do not map back onto the original.
func runeIndexFold(s, substr string) int {
	if substr == "" {
		return -1
	}
	text := []rune(s)
	pattern := []rune(substr)
	if len(pattern) == 0 || len(pattern) > len(text) {
		return -1
	}
	for i := 0; i+len(pattern) <= len(text); i++ {
		if strings.EqualFold(string(text[i:i+len(pattern)]), string(pattern)) {
			return i
		}
	}
	return -1
}
