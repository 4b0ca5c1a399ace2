package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/prosegauge/prosegauge/internal/analysis"
)

// TextFormatter renders reports as sectioned, human-readable text with an
// ASCII complexity chart. When Color is true, section headings are printed
// in cyan and the score in yellow.
type TextFormatter struct {
	Color bool
}

const chartSegments = 10

// Format writes each result as a block of sections separated by a rule.
func (f *TextFormatter) Format(w io.Writer, results []Result) error {
	for i, res := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := f.formatOne(w, res); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatOne(w io.Writer, res Result) error {
	rep := res.Report

	if len(res.Source) > 0 {
		if err := f.heading(w, "PASSAGE: "+res.Source); err != nil {
			return err
		}
	}

	if err := f.heading(w, "TEXT ANALYSIS RESULTS"); err != nil {
		return err
	}
	lex := rep.Lexical
	if _, err := fmt.Fprintf(w,
		"Total Words Analyzed:      %d\n"+
			"Average Word Length:       %.2f characters\n"+
			"Minimum Word Length:       %d characters\n"+
			"Maximum Word Length:       %d characters\n"+
			"Advanced Vocabulary Ratio: %.2f%%\n"+
			"Total Character Count:     %d\n",
		lex.Count, lex.AverageLength, lex.MinLength, lex.MaxLength,
		lex.AdvancedRatio, lex.TotalCharacters,
	); err != nil {
		return err
	}

	if err := f.heading(w, "SENTENCE STRUCTURE"); err != nil {
		return err
	}
	st := rep.Structure
	if _, err := fmt.Fprintf(w,
		"Sentences Detected:        %d\n"+
			"Average Sentence Length:   %.1f characters\n"+
			"Comma Usage:               %d\n"+
			"Semicolon Usage:           %d\n"+
			"Assessment:                %s sentence structures\n",
		st.SentenceCount, st.AverageSentenceLength,
		st.CommaCount, st.SemicolonCount, st.Tier,
	); err != nil {
		return err
	}

	if err := f.heading(w, "COMPLEXITY"); err != nil {
		return err
	}
	if err := f.writeChart(w, rep.Score); err != nil {
		return err
	}

	if err := f.heading(w, "VOCABULARY"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"Basic Terms (%d): %s\n"+
			"Advanced Terms (%d): %s\n",
		len(rep.Vocabulary.Basic), analysis.Sample(rep.Vocabulary.Basic, 5),
		len(rep.Vocabulary.Advanced), analysis.Sample(rep.Vocabulary.Advanced, 5),
	); err != nil {
		return err
	}

	if err := f.heading(w, "RECOMMENDATIONS"); err != nil {
		return err
	}
	adv := rep.Advice
	if _, err := fmt.Fprintf(w,
		"Assessment:     %s\n"+
			"Recommendation: %s\n"+
			"Strategy:       %s\n"+
			"Example:        %s\n",
		adv.Assessment, adv.Primary, adv.Strategy, adv.Example,
	); err != nil {
		return err
	}
	for _, note := range adv.StructuralNotes {
		if _, err := fmt.Fprintf(w, "  - %s\n", note); err != nil {
			return err
		}
	}

	return nil
}

// writeChart renders the score as a filled/empty segment bar.
func (f *TextFormatter) writeChart(w io.Writer, score float64) error {
	filled := int(score)
	if filled > chartSegments {
		filled = chartSegments
	}
	bar := strings.Repeat("■", filled) + strings.Repeat("□", chartSegments-filled)

	scoreText := fmt.Sprintf("%.2f/10.0", score)
	if f.Color {
		scoreText = "\033[33m" + scoreText + "\033[0m"
	}
	if _, err := fmt.Fprintf(w, "Complexity Level: %s (%s)\n", bar, scoreText); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "Scale: □□□□□ Basic | ■■■■■ Intermediate | ■■■■■■■■■■ Advanced")
	return err
}

func (f *TextFormatter) heading(w io.Writer, title string) error {
	if f.Color {
		_, err := fmt.Fprintf(w, "\n\033[36m%s\033[0m\n", title)
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
	return err
}
