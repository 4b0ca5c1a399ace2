package metrics

import (
	"math"
	"strings"
	"testing"
)

func TestParseScope(t *testing.T) {
	scope, err := ParseScope("file")
	if err != nil {
		t.Fatalf("ParseScope(file): %v", err)
	}
	if scope != ScopeFile {
		t.Fatalf("scope = %q, want %q", scope, ScopeFile)
	}

	if _, err := ParseScope("sentence"); err == nil {
		t.Fatal("expected error for unsupported scope")
	}
}

func TestParseOrder(t *testing.T) {
	order, err := ParseOrder("asc")
	if err != nil {
		t.Fatalf("ParseOrder(asc): %v", err)
	}
	if order != OrderAsc {
		t.Fatalf("order = %q, want %q", order, OrderAsc)
	}

	order, err = ParseOrder("")
	if err != nil {
		t.Fatalf("ParseOrder(empty): %v", err)
	}
	if order != OrderDesc {
		t.Fatalf("default order = %q, want %q", order, OrderDesc)
	}

	if _, err := ParseOrder("sideways"); err == nil {
		t.Fatal("expected error for invalid order")
	}
}

func TestResolve_Defaults(t *testing.T) {
	defs, err := Resolve(ScopeFile, nil)
	if err != nil {
		t.Fatalf("Resolve defaults: %v", err)
	}
	if len(defs) == 0 {
		t.Fatal("expected default metrics")
	}
	if defs[0].ID != "MET001" {
		t.Fatalf("first default metric = %q, want MET001", defs[0].ID)
	}
}

func TestResolve_UnknownMetricHasActionableError(t *testing.T) {
	_, err := Resolve(ScopeFile, []string{"bogus"})
	if err == nil {
		t.Fatal("expected unknown metric error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "unknown metric") {
		t.Fatalf("error = %q, expected unknown metric message", msg)
	}
	if !strings.Contains(msg, "available:") {
		t.Fatalf("error = %q, expected available list", msg)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" characters, words , ,complexity ")
	want := []string{"characters", "words", "complexity"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuiltins_Computable(t *testing.T) {
	raw := "Structured concurrency simplifies resource management. Short words too."
	p := NewPassage("sample.txt", raw)

	defs := ForScope(ScopeFile)
	if len(defs) == 0 {
		t.Fatal("expected file metrics")
	}

	values := make(map[string]Value, len(defs))
	for _, def := range defs {
		v, err := def.Compute(p)
		if err != nil {
			t.Fatalf("compute(%s): %v", def.Name, err)
		}
		if !v.Available {
			t.Fatalf("metric %s unexpectedly unavailable", def.Name)
		}
		values[def.Name] = v
	}

	if values["characters"].Number != float64(len(raw)) {
		t.Fatalf("characters = %.0f, want %d", values["characters"].Number, len(raw))
	}
	if values["words"].Number != 8 {
		t.Fatalf("words = %.0f, want 8", values["words"].Number)
	}
	if values["sentences"].Number != 2 {
		t.Fatalf("sentences = %.0f, want 2", values["sentences"].Number)
	}
	if values["complexity"].Number <= 0 || values["complexity"].Number > 10 {
		t.Fatalf("complexity = %.2f, want in (0, 10]", values["complexity"].Number)
	}
}

// Word-derived metrics are unavailable, not zero, for unanalyzable passages.
func TestBuiltins_EmptyPassageUnavailable(t *testing.T) {
	p := NewPassage("noise.txt", "1 2 3 !!!")

	for _, name := range []string{"avg-word-length", "advanced-ratio", "complexity"} {
		def, ok := LookupScope(ScopeFile, name)
		if !ok {
			t.Fatalf("metric %s not found", name)
		}
		v, err := def.Compute(p)
		if err != nil {
			t.Fatalf("compute(%s): %v", name, err)
		}
		if v.Available {
			t.Fatalf("metric %s should be unavailable for empty vocabulary", name)
		}
	}

	def, _ := LookupScope(ScopeFile, "characters")
	v, err := def.Compute(p)
	if err != nil || !v.Available {
		t.Fatalf("characters should stay available: %v %v", v, err)
	}
}

func TestComplexity_HarderPassageScoresHigher(t *testing.T) {
	def, ok := LookupScope(ScopeFile, "complexity")
	if !ok {
		t.Fatal("complexity metric not found")
	}

	plain, err := def.Compute(NewPassage("plain.txt", "the cat sat on the mat"))
	if err != nil {
		t.Fatalf("plain complexity: %v", err)
	}
	dense, err := def.Compute(NewPassage(
		"dense.txt",
		"computational methodologies necessitate sophisticated infrastructure",
	))
	if err != nil {
		t.Fatalf("dense complexity: %v", err)
	}

	if dense.Number <= plain.Number {
		t.Fatalf(
			"dense score %.2f should exceed plain %.2f",
			dense.Number, plain.Number,
		)
	}
}

func TestJSONValue_Rounding(t *testing.T) {
	def := Definition{Kind: KindFloat, Precision: 1}
	got := JSONValue(def, AvailableValue(1.06))
	if f, ok := got.(float64); !ok || math.Abs(f-1.1) > 1e-9 {
		t.Fatalf("JSONValue = %v, want 1.1", got)
	}

	if JSONValue(def, UnavailableValue()) != nil {
		t.Fatal("unavailable value should encode as nil")
	}
}
