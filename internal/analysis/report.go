// Package analysis implements the passage analysis pipeline: tokenization
// feeds lexical statistics, a complexity score, and vocabulary buckets,
// while structural metrics are scanned from the raw text independently.
// Every entry point is a pure function of its input; a Report carries all
// derived records so rendering stays out of the core.
package analysis

import (
	"github.com/prosegauge/prosegauge/internal/advice"
	"github.com/prosegauge/prosegauge/internal/textkit"
)

// Report bundles every record derived from one passage.
type Report struct {
	Lexical    LexicalStats    `json:"lexical"`
	Structure  StructuralStats `json:"structure"`
	Score      float64         `json:"complexity_score"`
	Vocabulary Buckets         `json:"vocabulary"`
	Advice     advice.Set      `json:"advice"`
}

// Run analyzes raw passage text and returns the full report. It is the
// single entry point exposed to the presentation layer. Returns
// ErrEmptyVocabulary when tokenization yields no words; the caller's
// recovery is to substitute a fallback passage and retry once.
func Run(raw string) (*Report, error) {
	tokens := textkit.Tokenize(raw)

	lexical, err := AnalyzeLexical(tokens)
	if err != nil {
		return nil, err
	}

	score, err := Score(tokens)
	if err != nil {
		return nil, err
	}

	return &Report{
		Lexical:    lexical,
		Structure:  AnalyzeStructure(raw),
		Score:      score,
		Vocabulary: Classify(tokens),
		Advice:     advice.Recommend(len(raw), score),
	}, nil
}
