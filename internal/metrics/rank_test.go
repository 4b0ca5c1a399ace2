package metrics

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "Plain words here.")
	b := writeFile(t, dir, "b.md", "Some **emphasized** prose here.")

	defs, err := Resolve(ScopeFile, []string{"characters", "words"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	rows, err := Collect([]string{a, b}, defs)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	// Markdown is reduced to plain text before measurement, so the markup
	// asterisks never count as characters.
	mdChars := rows[1].Metrics["characters"].Number
	if mdChars >= float64(len("Some **emphasized** prose here.")) {
		t.Fatalf("markdown characters = %.0f, want markup stripped", mdChars)
	}
	if rows[1].Metrics["words"].Number != 4 {
		t.Fatalf("markdown words = %.0f, want 4", rows[1].Metrics["words"].Number)
	}
}

func TestCollect_MissingFile(t *testing.T) {
	defs := Defaults(ScopeFile)
	if _, err := Collect([]string{"no/such/passage.txt"}, defs); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSortRows(t *testing.T) {
	def := Definition{Name: "words", Kind: KindInteger}
	rows := []Row{
		{Path: "b.txt", Metrics: map[string]Value{"words": AvailableValue(5)}},
		{Path: "a.txt", Metrics: map[string]Value{"words": AvailableValue(9)}},
		{Path: "c.txt", Metrics: map[string]Value{"words": UnavailableValue()}},
	}

	SortRows(rows, def, OrderDesc)
	if rows[0].Path != "a.txt" || rows[1].Path != "b.txt" || rows[2].Path != "c.txt" {
		t.Fatalf("desc order = %v", paths(rows))
	}

	SortRows(rows, def, OrderAsc)
	if rows[0].Path != "b.txt" || rows[1].Path != "a.txt" || rows[2].Path != "c.txt" {
		t.Fatalf("asc order = %v", paths(rows))
	}
}

func TestSortRows_TieBreaksByPath(t *testing.T) {
	def := Definition{Name: "words", Kind: KindInteger}
	rows := []Row{
		{Path: "z.txt", Metrics: map[string]Value{"words": AvailableValue(3)}},
		{Path: "a.txt", Metrics: map[string]Value{"words": AvailableValue(3)}},
	}
	SortRows(rows, def, OrderDesc)
	if rows[0].Path != "a.txt" {
		t.Fatalf("tie order = %v, want path order", paths(rows))
	}
}

func TestLimitRows(t *testing.T) {
	rows := []Row{{Path: "a"}, {Path: "b"}, {Path: "c"}}
	if got := LimitRows(rows, 2); len(got) != 2 {
		t.Fatalf("LimitRows(2) = %d rows", len(got))
	}
	if got := LimitRows(rows, 0); len(got) != 3 {
		t.Fatalf("LimitRows(0) = %d rows, want all", len(got))
	}
}

func TestFormatValue(t *testing.T) {
	intDef := Definition{Kind: KindInteger}
	if got := FormatValue(intDef, AvailableValue(42)); got != "42" {
		t.Errorf("integer = %q, want 42", got)
	}

	floatDef := Definition{Kind: KindFloat, Precision: 2}
	if got := FormatValue(floatDef, AvailableValue(1.055)); got != "1.05" && got != "1.06" {
		t.Errorf("float = %q, want two decimals", got)
	}

	if got := FormatValue(intDef, UnavailableValue()); got != "-" {
		t.Errorf("unavailable = %q, want -", got)
	}
}

func paths(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Path
	}
	return out
}
