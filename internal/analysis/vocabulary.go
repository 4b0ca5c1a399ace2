package analysis

import "strings"

// Bucketing thresholds. Words of 6-8 characters fall in a neutral band that
// belongs to neither bucket; this gap is intentional and covered by tests.
const (
	basicWordLength  = 5
	bucketWordLength = 8
)

// Buckets partitions tokens into basic and advanced vocabulary, preserving
// original passage order in each bucket for deterministic sampling.
type Buckets struct {
	Basic    []string `json:"basic"`
	Advanced []string `json:"advanced"`
}

// Classify partitions a token sequence by word length: basic when at most 5
// characters, advanced when longer than 8.
func Classify(tokens []string) Buckets {
	var b Buckets
	for _, tok := range tokens {
		switch {
		case len(tok) <= basicWordLength:
			b.Basic = append(b.Basic, tok)
		case len(tok) > bucketWordLength:
			b.Advanced = append(b.Advanced, tok)
		}
	}
	return b
}

// Sample joins up to n leading elements of a bucket with ", ".
func Sample(bucket []string, n int) string {
	if len(bucket) > n {
		bucket = bucket[:n]
	}
	return strings.Join(bucket, ", ")
}
