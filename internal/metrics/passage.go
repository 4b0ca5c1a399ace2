// Package metrics defines the registry of passage metrics used for listing
// and ranking passage files.
package metrics

import (
	"github.com/prosegauge/prosegauge/internal/textkit"
)

// Passage is the shared metric input for a single passage. Tokenization is
// computed lazily and cached so every selected metric shares one pass.
type Passage struct {
	Path string
	Raw  string

	tokens      []string
	tokensReady bool
}

// NewPassage constructs a Passage wrapper for metric computation.
func NewPassage(path, raw string) *Passage {
	return &Passage{
		Path: path,
		Raw:  raw,
	}
}

// CharacterCount returns the raw passage length in bytes.
func (p *Passage) CharacterCount() int {
	return len(p.Raw)
}

// SentenceCount returns the number of sentence terminators in the raw text.
func (p *Passage) SentenceCount() int {
	return textkit.CountSentences(p.Raw)
}

// Tokens returns the normalized word tokens of the passage.
func (p *Passage) Tokens() []string {
	if !p.tokensReady {
		p.tokens = textkit.Tokenize(p.Raw)
		p.tokensReady = true
	}
	return p.tokens
}

// WordCount returns the number of tokens.
func (p *Passage) WordCount() int {
	return len(p.Tokens())
}
