// Package prosegauge analyses English prose passages and reports vocabulary,
// sentence structure, a complexity score, and writing recommendations.
//
// The package surface is intentionally small. Analyze runs the full pipeline
// on a raw passage, and the advice doc helpers expose the embedded tier
// documentation used by the command-line help.
package prosegauge

import (
	"github.com/prosegauge/prosegauge/internal/advice"
	"github.com/prosegauge/prosegauge/internal/analysis"
)

// Report is the combined result of analysing one passage.
type Report = analysis.Report

// ErrEmptyVocabulary is returned when a passage yields no countable words.
var ErrEmptyVocabulary = analysis.ErrEmptyVocabulary

// Analyze runs the full analysis pipeline on a raw passage.
func Analyze(raw string) (*Report, error) {
	return analysis.Run(raw)
}

// AdviceInfo holds metadata for one embedded advice tier document.
type AdviceInfo = advice.DocInfo

// ListAdvice returns all embedded advice tier docs sorted by ID.
func ListAdvice() ([]AdviceInfo, error) {
	return advice.ListDocs()
}

// LookupAdvice finds an advice tier doc by ID (e.g. "ADV001") or tier name
// (e.g. "basic") and returns its full README content.
func LookupAdvice(query string) (string, error) {
	return advice.LookupDoc(query)
}
