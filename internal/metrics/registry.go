package metrics

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/prosegauge/prosegauge/internal/analysis"
)

var registry = []Definition{
	{
		ID:           "MET001",
		Name:         "characters",
		Description:  "Raw passage length in characters.",
		Scope:        ScopeFile,
		Kind:         KindInteger,
		Precision:    0,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(p *Passage) (Value, error) {
			return AvailableValue(float64(p.CharacterCount())), nil
		},
	},
	{
		ID:           "MET002",
		Name:         "words",
		Description:  "Normalized word token count.",
		Scope:        ScopeFile,
		Kind:         KindInteger,
		Precision:    0,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(p *Passage) (Value, error) {
			return AvailableValue(float64(p.WordCount())), nil
		},
	},
	{
		ID:           "MET003",
		Name:         "sentences",
		Description:  "Sentence terminator count ('.', '!', '?').",
		Scope:        ScopeFile,
		Kind:         KindInteger,
		Precision:    0,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(p *Passage) (Value, error) {
			return AvailableValue(float64(p.SentenceCount())), nil
		},
	},
	{
		ID:           "MET004",
		Name:         "avg-word-length",
		Description:  "Mean token length in characters.",
		Scope:        ScopeFile,
		Kind:         KindFloat,
		Precision:    2,
		Default:      false,
		DefaultOrder: OrderDesc,
		Compute: func(p *Passage) (Value, error) {
			stats, err := analysis.AnalyzeLexical(p.Tokens())
			if err != nil {
				return emptyAsUnavailable(err)
			}
			return AvailableValue(stats.AverageLength), nil
		},
	},
	{
		ID:           "MET005",
		Name:         "advanced-ratio",
		Description:  "Percentage of tokens longer than seven characters.",
		Scope:        ScopeFile,
		Kind:         KindFloat,
		Precision:    1,
		Default:      false,
		DefaultOrder: OrderDesc,
		Compute: func(p *Passage) (Value, error) {
			stats, err := analysis.AnalyzeLexical(p.Tokens())
			if err != nil {
				return emptyAsUnavailable(err)
			}
			return AvailableValue(stats.AdvancedRatio), nil
		},
	},
	{
		ID:           "MET006",
		Name:         "complexity",
		Description:  "Weighted-length complexity score (0-10).",
		Scope:        ScopeFile,
		Kind:         KindFloat,
		Precision:    2,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(p *Passage) (Value, error) {
			score, err := analysis.Score(p.Tokens())
			if err != nil {
				return emptyAsUnavailable(err)
			}
			return AvailableValue(score), nil
		},
	},
}

// emptyAsUnavailable maps an empty-vocabulary failure to an unavailable
// value so one unanalyzable file does not abort a ranking run; other errors
// propagate.
func emptyAsUnavailable(err error) (Value, error) {
	if errors.Is(err, analysis.ErrEmptyVocabulary) {
		return UnavailableValue(), nil
	}
	return UnavailableValue(), err
}

// All returns all metrics sorted by ID.
func All() []Definition {
	defs := append([]Definition(nil), registry...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// ForScope returns all metrics for a scope, sorted by ID.
func ForScope(scope Scope) []Definition {
	all := All()
	defs := make([]Definition, 0, len(all))
	for _, def := range all {
		if def.Scope == scope {
			defs = append(defs, def)
		}
	}
	return defs
}

// Defaults returns default-selected metrics for a scope.
func Defaults(scope Scope) []Definition {
	defs := ForScope(scope)
	out := make([]Definition, 0, len(defs))
	for _, def := range defs {
		if def.Default {
			out = append(out, def)
		}
	}
	return out
}

// Lookup searches by metric ID (case-insensitive) or by name.
func Lookup(query string) (Definition, bool) {
	for _, def := range All() {
		if matches(def, query) {
			return def, true
		}
	}
	return Definition{}, false
}

// LookupScope searches by metric ID (case-insensitive) or name within scope.
func LookupScope(scope Scope, query string) (Definition, bool) {
	for _, def := range ForScope(scope) {
		if matches(def, query) {
			return def, true
		}
	}
	return Definition{}, false
}

// Resolve resolves user-selected metric names/IDs for a scope.
// Empty names returns default metrics.
func Resolve(scope Scope, names []string) ([]Definition, error) {
	if len(names) == 0 {
		return Defaults(scope), nil
	}

	seen := make(map[string]struct{}, len(names))
	defs := make([]Definition, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		def, ok := LookupScope(scope, name)
		if !ok {
			return nil, unknownMetricErr(scope, name)
		}

		if _, exists := seen[def.ID]; exists {
			continue
		}
		seen[def.ID] = struct{}{}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no metrics selected")
	}
	return defs, nil
}

// SplitList parses comma-separated metric names.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matches(def Definition, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	return strings.EqualFold(def.ID, q) || def.Name == strings.ToLower(q)
}

func unknownMetricErr(scope Scope, name string) error {
	return fmt.Errorf(
		"unknown metric %q (available: %s)",
		name,
		strings.Join(availableNames(scope), ", "),
	)
}

func availableNames(scope Scope) []string {
	defs := ForScope(scope)
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}
