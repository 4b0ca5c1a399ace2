package advice

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yml
var catalogYAML []byte

//go:embed schema.cue
var catalogSchema string

// Entry is the advice copy for one proficiency tier.
type Entry struct {
	Assessment string `yaml:"assessment" json:"assessment"`
	Primary    string `yaml:"primary" json:"primary"`
	Strategy   string `yaml:"strategy" json:"strategy"`
	Example    string `yaml:"example" json:"example"`
}

// Catalog holds all advice copy, keyed by proficiency and length tiers.
type Catalog struct {
	Proficiency map[string]Entry    `yaml:"proficiency" json:"proficiency"`
	Length      map[string][]string `yaml:"length" json:"length"`
}

// loadCatalog decodes the embedded catalog and validates it against the
// embedded CUE schema before use.
func loadCatalog() (*Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(catalogYAML, &raw); err != nil {
		return nil, fmt.Errorf("parsing advice catalog: %w", err)
	}

	if err := validateCatalogCUE(catalogSchema, raw); err != nil {
		return nil, fmt.Errorf("advice catalog does not satisfy schema: %w", err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(catalogYAML, &cat); err != nil {
		return nil, fmt.Errorf("decoding advice catalog: %w", err)
	}
	return &cat, nil
}

// validateCatalogCUE unifies the decoded catalog with the CUE schema and
// requires a fully concrete result.
func validateCatalogCUE(schema string, data map[string]any) error {
	ctx := cuecontext.New()

	schemaVal := ctx.CompileString(schema)
	if err := schemaVal.Err(); err != nil {
		return fmt.Errorf("invalid CUE schema: %w", err)
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("serialize catalog: %w", err)
	}

	dataVal := ctx.CompileBytes(encoded)
	if err := dataVal.Err(); err != nil {
		return fmt.Errorf("compile catalog: %w", err)
	}

	merged := schemaVal.Unify(dataVal)
	return merged.Validate(cue.Concrete(true))
}

// catalog is loaded once at startup. The catalog ships inside the binary,
// so a malformed catalog is a build defect, not a runtime condition; it is
// treated like a bad regexp literal.
var catalog = mustLoadCatalog()

func mustLoadCatalog() *Catalog {
	cat, err := loadCatalog()
	if err != nil {
		panic(err)
	}
	return cat
}
