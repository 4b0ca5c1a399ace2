// Package advice maps complexity scores and passage lengths to tiers of
// canned improvement guidance. Selection is a pure table lookup over an
// embedded, schema-validated catalog; it cannot fail.
package advice

// Tier is a writing proficiency class selected by complexity score.
type Tier string

// Proficiency tiers.
const (
	TierBasic        Tier = "basic"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// Score bounds between proficiency tiers.
const (
	intermediateScore = 3.0
	advancedScore     = 6.0
)

// Passage lengths (in raw characters) outside this range draw expansion or
// condensation notes instead of the maintain-length notes.
const (
	shortPassageLength = 200
	longPassageLength  = 500
)

// Set is one complete recommendation record: the proficiency axis chosen by
// score and the structural axis chosen by passage length. The two axes are
// independent and both always populated.
type Set struct {
	Tier            Tier     `json:"tier"`
	Assessment      string   `json:"assessment"`
	Primary         string   `json:"primary_recommendation"`
	Strategy        string   `json:"specific_strategy"`
	Example         string   `json:"example"`
	StructuralNotes []string `json:"structural_notes"`
}

// TierForScore selects the proficiency tier for a complexity score.
func TierForScore(score float64) Tier {
	switch {
	case score < intermediateScore:
		return TierBasic
	case score < advancedScore:
		return TierIntermediate
	default:
		return TierAdvanced
	}
}

// Recommend builds the recommendation set for a passage of rawLen characters
// scoring score.
func Recommend(rawLen int, score float64) Set {
	tier := TierForScore(score)
	entry := catalog.Proficiency[string(tier)]

	var lengthKey string
	switch {
	case rawLen < shortPassageLength:
		lengthKey = "short"
	case rawLen > longPassageLength:
		lengthKey = "long"
	default:
		lengthKey = "balanced"
	}

	return Set{
		Tier:            tier,
		Assessment:      entry.Assessment,
		Primary:         entry.Primary,
		Strategy:        entry.Strategy,
		Example:         entry.Example,
		StructuralNotes: catalog.Length[lengthKey],
	}
}
