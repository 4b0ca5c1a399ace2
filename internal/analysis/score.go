package analysis

// Complexity weighting. Every character contributes baseWeight; words longer
// than 8 characters take the advanced multiplier, and words longer than 12
// additionally take the technical multiplier (the two stack for 13+).
const (
	baseWeight          = 1.2
	advancedWordLength  = 8
	advancedMultiplier  = 1.5
	technicalWordLength = 12
	technicalMultiplier = 1.3

	scoreDivisor = 8.0
	scoreCeiling = 10.0
)

// Score reduces a token sequence to a single complexity score in [0, 10].
// The per-token weighted lengths are averaged, rescaled by a fixed divisor,
// and clipped at the ceiling. The clipping is deliberately lossy: passages
// far above the ceiling all score 10.0. Returns ErrEmptyVocabulary for an
// empty sequence.
func Score(tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, ErrEmptyVocabulary
	}

	total := 0.0
	for _, tok := range tokens {
		w := float64(len(tok)) * baseWeight
		if len(tok) > advancedWordLength {
			w *= advancedMultiplier
		}
		if len(tok) > technicalWordLength {
			w *= technicalMultiplier
		}
		total += w
	}

	raw := total / float64(len(tokens))
	score := raw / scoreDivisor
	if score > scoreCeiling {
		score = scoreCeiling
	}
	return score, nil
}
