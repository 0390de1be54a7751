// Package search finds sections by header title for jump-to-section.
package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"
)

// Match is one search hit
type Match struct {
	Index          int    // Section index
	Title          string // Section title
	MatchedIndexes []int  // Matched character positions (empty for fallback hits)
	Score          int    // Higher is better
}

// Finder searches a fixed list of section titles
type Finder struct {
	titles []string
	logger *slog.Logger
}

// NewFinder creates a finder over titles
func NewFinder(titles []string, logger *slog.Logger) *Finder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Finder{titles: titles, logger: logger}
}

// Find returns matches ordered best first. Subsequence matches come from
// sahilm/fuzzy, which ignores case and reports byte offsets into the
// original title; when none exist, a case-folded, accent-insensitive ranked
// search is tried.
func (f *Finder) Find(query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	found := sahilm.Find(query, f.titles)
	if len(found) > 0 {
		matches := make([]Match, len(found))
		for i, m := range found {
			matches[i] = Match{
				Index:          m.Index,
				Title:          f.titles[m.Index],
				MatchedIndexes: m.MatchedIndexes,
				Score:          m.Score,
			}
		}
		return matches
	}

	ranks := fuzzy.RankFindNormalizedFold(query, f.titles)
	if len(ranks) == 0 {
		f.logger.Debug("search found nothing", "query", query)
		return nil
	}
	sort.Sort(ranks)
	matches := make([]Match, len(ranks))
	for i, r := range ranks {
		matches[i] = Match{
			Index: r.OriginalIndex,
			Title: r.Target,
			Score: -r.Distance,
		}
	}
	return matches
}

// Best returns the top match
func (f *Finder) Best(query string) (Match, bool) {
	matches := f.Find(query)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

// Suggest returns the title closest to query by edit distance, for "did you
// mean" hints. It reports false when there are no titles.
func (f *Finder) Suggest(query string) (string, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(f.titles) == 0 {
		return "", false
	}

	best, bestDist := -1, 0
	for i, t := range f.titles {
		d := levenshtein.ComputeDistance(query, strings.ToLower(t))
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return f.titles[best], true
}
