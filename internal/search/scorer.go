package search

import "strings"

// Relevance tier bonuses. Tiers are additive: a record collects every bonus it qualifies for.
const (
	ScoreExact         = 1000
	ScorePrefix        = 500
	ScoreSurnamePrefix = 400
	ScoreWordPrefix    = 300
	ScoreNameSubstring = 100
)

// Score ranks f against an already-normalized query. Higher is more relevant.
func Score(f *Fields, normalizedQuery string) int {
	q := normalizedQuery
	score := 0

	if f.Name == q || f.DisplayName == q {
		score += ScoreExact
	}
	if strings.HasPrefix(f.Name, q) || strings.HasPrefix(f.DisplayName, q) {
		score += ScorePrefix
	}
	if n := len(f.nameWords); n > 1 && strings.HasPrefix(f.nameWords[n-1], q) {
		score += ScoreSurnamePrefix
	}
	if startsAnyWord(f.nameWords, q) {
		score += ScoreWordPrefix
	}
	if strings.Contains(f.Name, q) {
		score += ScoreNameSubstring
	}
	return score
}
