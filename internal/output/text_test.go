package output

import (
	"strings"
	"testing"

	"github.com/prosegauge/prosegauge/internal/analysis"
)

func sampleResult(t *testing.T) Result {
	t.Helper()
	rep, err := analysis.Run(
		"The implementation of sophisticated methodologies requires care. " +
			"Short words help too.",
	)
	if err != nil {
		t.Fatalf("analysis.Run: %v", err)
	}
	return Result{Source: "<sample>", Report: rep}
}

func TestTextFormatter_Sections(t *testing.T) {
	var sb strings.Builder
	f := &TextFormatter{}
	if err := f.Format(&sb, []Result{sampleResult(t)}); err != nil {
		t.Fatalf("Format: %v", err)
	}
	got := sb.String()

	for _, want := range []string{
		"TEXT ANALYSIS RESULTS",
		"SENTENCE STRUCTURE",
		"COMPLEXITY",
		"VOCABULARY",
		"RECOMMENDATIONS",
		"Complexity Level:",
		"Total Words Analyzed:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\033[") {
		t.Error("uncolored output contains ANSI escapes")
	}
}

func TestTextFormatter_Color(t *testing.T) {
	var sb strings.Builder
	f := &TextFormatter{Color: true}
	if err := f.Format(&sb, []Result{sampleResult(t)}); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(sb.String(), "\033[36m") {
		t.Error("colored output missing cyan headings")
	}
}

func TestTextFormatter_ChartSegments(t *testing.T) {
	var sb strings.Builder
	f := &TextFormatter{}
	res := sampleResult(t)
	if err := f.Format(&sb, []Result{res}); err != nil {
		t.Fatalf("Format: %v", err)
	}

	line := ""
	for _, l := range strings.Split(sb.String(), "\n") {
		if strings.HasPrefix(l, "Complexity Level:") {
			line = l
			break
		}
	}
	if line == "" {
		t.Fatal("no chart line in output")
	}
	segments := strings.Count(line, "■") + strings.Count(line, "□")
	if segments != chartSegments {
		t.Fatalf("chart has %d segments, want %d", segments, chartSegments)
	}
	if want := strings.Count(line, "■"); want != int(res.Report.Score) {
		t.Fatalf("filled segments = %d, want %d", want, int(res.Report.Score))
	}
}

func TestTextFormatter_MultipleResults(t *testing.T) {
	var sb strings.Builder
	f := &TextFormatter{}
	res := sampleResult(t)
	if err := f.Format(&sb, []Result{res, res}); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got := strings.Count(sb.String(), "PASSAGE: <sample>"); got != 2 {
		t.Fatalf("passage headings = %d, want 2", got)
	}
}
