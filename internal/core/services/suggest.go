package services

import (
	"context"
	"strings"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
	"github.com/quill-labs/stacks-cli/internal/logger"
)

// historySuggestionBudget is the share of the suggestion list reserved
// for recent-search matches; the remainder comes from indexed book titles.
const historySuggestionBudget = domain.MaxSuggestions / 2

// Suggestions returns autocomplete candidates for a partial query.
// Results come from recent-search history first, topped up with book
// titles from the metadata index, capped at domain.MaxSuggestions and
// cached per exact partial string. A title-lookup failure degrades to
// history-only suggestions rather than failing the call.
func (s *SearchService) Suggestions(ctx context.Context, partial string) ([]string, error) {
	partial = strings.TrimSpace(partial)
	if partial == "" {
		return []string{}, nil
	}

	if cached, ok := s.suggestions.Get(partial); ok {
		logger.Debug("Suggestion cache hit for %q", partial)
		return cached, nil
	}

	lower := strings.ToLower(partial)
	out := make([]string, 0, domain.MaxSuggestions)

	for _, e := range s.history.snapshot() {
		if len(out) >= historySuggestionBudget {
			break
		}
		if strings.Contains(strings.ToLower(e.Query), lower) {
			out = append(out, e.Query)
		}
	}

	titles, err := s.index.SuggestTitles(ctx, partial, domain.MaxSuggestions-len(out))
	if err != nil {
		// Non-fatal: suggestions degrade to history matches only. The
		// degraded list is not cached, so a transient store error does
		// not pin an incomplete entry until the next history write.
		logger.Warn("Title suggestions unavailable: %v", err)
		return out, nil
	}

	for _, t := range titles {
		if len(out) >= domain.MaxSuggestions {
			break
		}
		if !containsFold(out, t) {
			out = append(out, t)
		}
	}

	s.suggestions.Add(partial, out)
	return out, nil
}

// containsFold reports whether list contains s, case-insensitively.
func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
