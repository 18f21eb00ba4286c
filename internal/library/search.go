package library

import (
	"context"
	"sort"
	"strings"

	"relparse/internal/textutil"
)

const (
	defaultSearchLimit = 20
	minSearchScore     = 0.3
)

// Search ranks entries by title similarity to query. Titles containing the
// whole query as words score at least minSearchScore; anything below that is
// dropped. A non-positive limit uses the default of 20.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	queryKey := textutil.SortKey(query)
	if queryKey == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	entries, err := s.queryEntries(ctx, "SELECT "+entryColumns+" FROM entries ORDER BY sort_key, season, path")
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, limit)
	for _, entry := range entries {
		score := textutil.Similarity(query, entry.Title)
		if score < minSearchScore && containsWords(textutil.SortKey(entry.Title), queryKey) {
			score = minSearchScore
		}
		if score < minSearchScore {
			continue
		}
		results = append(results, SearchResult{Entry: entry, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func containsWords(haystack, needle string) bool {
	return strings.Contains(" "+haystack+" ", " "+needle+" ")
}
