package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/prosegauge/prosegauge/internal/textkit"
)

func TestScore_Empty(t *testing.T) {
	_, err := Score(nil)
	if !errors.Is(err, ErrEmptyVocabulary) {
		t.Fatalf("err = %v, want ErrEmptyVocabulary", err)
	}
}

// "a a a" tokenizes to nothing (single letters dropped), so scoring the
// result reports an empty vocabulary.
func TestScore_AllTokensFiltered(t *testing.T) {
	tokens := textkit.Tokenize("a a a")
	if len(tokens) != 0 {
		t.Fatalf("tokens = %v, want none", tokens)
	}
	if _, err := Score(tokens); !errors.Is(err, ErrEmptyVocabulary) {
		t.Fatalf("err = %v, want ErrEmptyVocabulary", err)
	}
}

func TestScore_SingleWord(t *testing.T) {
	// "testing": 7 chars, no multipliers. 7*1.2/8 = 1.05.
	got, err := Score([]string{"testing"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if math.Abs(got-1.05) > 1e-9 {
		t.Fatalf("score = %f, want 1.05", got)
	}
}

// Multipliers stack: a 13+ character word takes both the advanced and the
// technical bonus.
func TestScore_CumulativeMultipliers(t *testing.T) {
	word := strings.Repeat("x", 13)
	got, err := Score([]string{word})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	want := 13.0 * 1.2 * 1.5 * 1.3 / 8.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("score = %f, want %f", got, want)
	}
}

func TestScore_NineCharTakesOneMultiplier(t *testing.T) {
	got, err := Score([]string{"ninechars"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	want := 9.0 * 1.2 * 1.5 / 8.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("score = %f, want %f", got, want)
	}
}

func TestScore_CeilingClamp(t *testing.T) {
	long := strings.Repeat("z", 60)
	got, err := Score([]string{long, long, long})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != 10.0 {
		t.Fatalf("score = %f, want clamp at 10.0", got)
	}
}

// Appending a longer word never decreases the score while the sequence
// stays under the ceiling.
func TestScore_MonotoneUnderCeiling(t *testing.T) {
	base := []string{"go", "run", "code"}
	before, err := Score(base)
	if err != nil {
		t.Fatalf("Score(base): %v", err)
	}

	after, err := Score(append(base, "methodologies"))
	if err != nil {
		t.Fatalf("Score(extended): %v", err)
	}

	if after < before {
		t.Fatalf("score decreased after appending longer word: %f -> %f", before, after)
	}
}
