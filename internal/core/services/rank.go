package services

import (
	"sort"
	"strings"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

// NormalizeScore maps a raw engine relevance score onto [0,1] for display.
//
// SQLite's bm25() returns scores <= 0 where more negative means a better
// match. The transform s = -raw / (1 - raw) is strictly monotonic in -raw,
// so ordering by the normalized score is identical to ordering by the raw
// score. The formula is a calibration constant: changing it alters the
// percentages users see, so keep it stable across releases.
func NormalizeScore(raw float64) float64 {
	if raw >= 0 {
		return 0
	}
	return -raw / (1 - raw)
}

// sortResults orders merged results in place per the requested sort.
// The sort is stable: ties preserve executor-then-row order.
func sortResults(results []domain.SearchResult, s domain.SearchSort) {
	var less func(a, b domain.SearchResult) bool

	switch s.Field {
	case domain.SortByTitle:
		less = func(a, b domain.SearchResult) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case domain.SortByPosition:
		// Results without a position sort as position 0.
		less = func(a, b domain.SearchResult) bool {
			return a.Position < b.Position
		}
	case domain.SortByDateAdded:
		less = func(a, b domain.SearchResult) bool {
			return a.DateAdded.Before(b.DateAdded)
		}
	case domain.SortByDateModified:
		less = func(a, b domain.SearchResult) bool {
			return a.DateModified.Before(b.DateModified)
		}
	default: // relevance
		less = func(a, b domain.SearchResult) bool {
			return a.RelevanceScore < b.RelevanceScore
		}
	}

	descending := s.Order == domain.SortDescending
	sort.SliceStable(results, func(i, j int) bool {
		if descending {
			return less(results[j], results[i])
		}
		return less(results[i], results[j])
	})
}

// applyPagination slices results to [offset, offset+limit), clamped to
// the slice bounds.
func applyPagination(results []domain.SearchResult, p domain.SearchPagination) []domain.SearchResult {
	if p.Offset >= len(results) {
		return []domain.SearchResult{}
	}

	end := p.Offset + p.Limit
	if end > len(results) {
		end = len(results)
	}

	return results[p.Offset:end]
}
