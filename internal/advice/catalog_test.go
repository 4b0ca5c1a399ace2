package advice

import (
	"strings"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	cat, err := loadCatalog()
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}

	for _, tier := range []string{"basic", "intermediate", "advanced"} {
		if _, ok := cat.Proficiency[tier]; !ok {
			t.Errorf("catalog missing proficiency tier %q", tier)
		}
	}
	for _, key := range []string{"short", "long", "balanced"} {
		if len(cat.Length[key]) == 0 {
			t.Errorf("catalog missing length notes for %q", key)
		}
	}
}

func TestValidateCatalogCUE_RejectsMissingField(t *testing.T) {
	bad := map[string]any{
		"proficiency": map[string]any{
			"basic": map[string]any{
				"assessment": "x",
				// primary, strategy, example missing
			},
			"intermediate": map[string]any{},
			"advanced":     map[string]any{},
		},
		"length": map[string]any{
			"short":    []any{"x"},
			"long":     []any{"x"},
			"balanced": []any{"x"},
		},
	}
	if err := validateCatalogCUE(catalogSchema, bad); err == nil {
		t.Fatal("expected validation error for incomplete catalog")
	}
}

func TestValidateCatalogCUE_RejectsEmptyStrings(t *testing.T) {
	entry := map[string]any{
		"assessment": "", "primary": "p", "strategy": "s", "example": "e",
	}
	full := map[string]any{
		"assessment": "a", "primary": "p", "strategy": "s", "example": "e",
	}
	bad := map[string]any{
		"proficiency": map[string]any{
			"basic": entry, "intermediate": full, "advanced": full,
		},
		"length": map[string]any{
			"short":    []any{"x"},
			"long":     []any{"x"},
			"balanced": []any{"x"},
		},
	}
	err := validateCatalogCUE(catalogSchema, bad)
	if err == nil {
		t.Fatal("expected validation error for empty assessment")
	}
	if !strings.Contains(err.Error(), "assessment") &&
		!strings.Contains(err.Error(), "conflict") {
		t.Logf("validation error: %v", err)
	}
}
