// Package textkit provides the low-level text primitives shared by the
// analysis pipeline: word tokenization and raw punctuation counting.
package textkit

import "strings"

// Tokenize splits text into normalized word tokens. Each whitespace-delimited
// fragment is reduced to its ASCII letters, lowercased, and kept only when at
// least two characters remain. Digits, punctuation, and single-letter words
// are dropped. An empty input yields no tokens.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))

	var b strings.Builder
	for _, field := range fields {
		b.Reset()
		for _, r := range field {
			switch {
			case r >= 'a' && r <= 'z':
				b.WriteRune(r)
			case r >= 'A' && r <= 'Z':
				b.WriteRune(r + ('a' - 'A'))
			}
		}
		if b.Len() >= 2 {
			tokens = append(tokens, b.String())
		}
	}
	return tokens
}

// CountSentences counts sentence terminators ('.', '!', '?') in raw text.
func CountSentences(text string) int {
	n := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			n++
		}
	}
	return n
}

// CountRune counts occurrences of r in raw text.
func CountRune(text string, r rune) int {
	return strings.Count(text, string(r))
}
