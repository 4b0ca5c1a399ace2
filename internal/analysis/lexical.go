package analysis

import "errors"

// ErrEmptyVocabulary is returned when a passage yields no tokens (empty
// input, all punctuation, or only single-character/numeric fragments).
// Callers are expected to match it with errors.Is and substitute a
// fallback passage rather than render partial results.
var ErrEmptyVocabulary = errors.New("passage contains no analyzable words")

// LexicalStats holds aggregate word-length statistics for a token sequence.
type LexicalStats struct {
	Count           int     `json:"count"`
	AverageLength   float64 `json:"average_length"`
	MinLength       int     `json:"min_length"`
	MaxLength       int     `json:"max_length"`
	AdvancedCount   int     `json:"advanced_count"`
	AdvancedRatio   float64 `json:"advanced_ratio"`
	TotalCharacters int     `json:"total_characters"`
}

// Words longer than lexicalAdvancedLength count as advanced vocabulary.
// This threshold is tuned independently from the scoring and bucketing
// threshold of 8; the two are intentionally distinct.
const lexicalAdvancedLength = 7

// AnalyzeLexical computes word-length statistics from a token sequence.
// Returns ErrEmptyVocabulary when the sequence is empty, since the average
// is undefined without tokens.
func AnalyzeLexical(tokens []string) (LexicalStats, error) {
	if len(tokens) == 0 {
		return LexicalStats{}, ErrEmptyVocabulary
	}

	stats := LexicalStats{
		Count:     len(tokens),
		MinLength: len(tokens[0]),
	}

	for _, tok := range tokens {
		n := len(tok)
		stats.TotalCharacters += n
		if n < stats.MinLength {
			stats.MinLength = n
		}
		if n > stats.MaxLength {
			stats.MaxLength = n
		}
		if n > lexicalAdvancedLength {
			stats.AdvancedCount++
		}
	}

	stats.AverageLength = float64(stats.TotalCharacters) / float64(stats.Count)
	stats.AdvancedRatio = float64(stats.AdvancedCount) / float64(stats.Count) * 100.0
	return stats, nil
}
