package analysis

import "github.com/prosegauge/prosegauge/internal/textkit"

// StructuralTier is a coarse sentence-complexity class derived from average
// sentence length measured in raw characters, not words.
type StructuralTier string

// Structural tiers.
const (
	TierSimple   StructuralTier = "simple"
	TierModerate StructuralTier = "moderate"
	TierComplex  StructuralTier = "complex"
)

// Average sentence lengths (in characters) above these bounds move a passage
// into the moderate and complex tiers.
const (
	moderateSentenceLength = 50
	complexSentenceLength  = 80
)

// StructuralStats holds sentence and punctuation metrics for raw text.
type StructuralStats struct {
	SentenceCount         int            `json:"sentence_count"`
	AverageSentenceLength float64        `json:"average_sentence_length"`
	CommaCount            int            `json:"comma_count"`
	SemicolonCount        int            `json:"semicolon_count"`
	Tier                  StructuralTier `json:"tier"`
}

// AnalyzeStructure scans raw text for sentence terminators and clause
// punctuation. It operates on the original text, independent of
// tokenization, and cannot fail: the sentence divisor is floored at 1 so a
// passage without terminators still produces a defined average.
func AnalyzeStructure(raw string) StructuralStats {
	stats := StructuralStats{
		SentenceCount:  textkit.CountSentences(raw),
		CommaCount:     textkit.CountRune(raw, ','),
		SemicolonCount: textkit.CountRune(raw, ';'),
	}

	divisor := stats.SentenceCount
	if divisor < 1 {
		divisor = 1
	}
	stats.AverageSentenceLength = float64(len(raw)) / float64(divisor)

	switch {
	case stats.AverageSentenceLength > complexSentenceLength:
		stats.Tier = TierComplex
	case stats.AverageSentenceLength > moderateSentenceLength:
		stats.Tier = TierModerate
	default:
		stats.Tier = TierSimple
	}

	return stats
}
