package match

import (
	"sort"
)

const (
	// DefaultThreshold is the minimum similarity for a suggestion.
	DefaultThreshold = 0.6
	// DefaultLimit caps the number of suggestions.
	DefaultLimit = 3
)

// Suggestion is a ranked candidate name.
type Suggestion struct {
	Name  string
	Score float64
}

type suggestConfig struct {
	threshold float64
	limit     int
}

// SuggestOption configures Suggest.
type SuggestOption func(*suggestConfig)

// WithThreshold sets the minimum similarity.
func WithThreshold(threshold float64) SuggestOption {
	return func(c *suggestConfig) { c.threshold = threshold }
}

// WithLimit caps the result size. Zero or less means unlimited.
func WithLimit(limit int) SuggestOption {
	return func(c *suggestConfig) { c.limit = limit }
}

// Rank scores every candidate against name and returns those reaching the
// threshold, best first. Ties are broken alphabetically.
func Rank(name string, candidates []string, opts ...SuggestOption) []Suggestion {
	cfg := suggestConfig{threshold: DefaultThreshold, limit: DefaultLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	seen := make(map[string]bool, len(candidates))

	var ranked []Suggestion

	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true

		if score := Similarity(name, c); score >= cfg.threshold {
			ranked = append(ranked, Suggestion{Name: c, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].Name < ranked[j].Name
	})

	if cfg.limit > 0 && len(ranked) > cfg.limit {
		ranked = ranked[:cfg.limit]
	}

	return ranked
}

// Suggest returns the names of Rank.
func Suggest(name string, candidates []string, opts ...SuggestOption) []string {
	ranked := Rank(name, candidates, opts...)
	if len(ranked) == 0 {
		return nil
	}

	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.Name
	}

	return names
}
