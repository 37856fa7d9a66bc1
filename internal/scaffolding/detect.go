package scaffolding

// ErrorRecord is one recent low-scoring answer fed to struggle
// detection.
type ErrorRecord struct {
	QuestionType string  `json:"question_type"`
	Score        float64 `json:"score"`
	Concept      string  `json:"concept"`
}

// questionTypeAreas maps question types to the struggle area they
// indicate when answered poorly. Unmapped types count toward
// definition.
var questionTypeAreas = map[string]string{
	"definition":  AreaDefinition,
	"recognition": AreaDefinition,
	"true_false":  AreaDefinition,

	"problem_solving": AreaProcess,
	"breakdown":       AreaProcess,

	"comparison":          AreaRelationship,
	"cause_effect":        AreaRelationship,
	"pattern_recognition": AreaRelationship,

	"scenario":    AreaApplication,
	"case_study":  AreaApplication,
	"design":      AreaApplication,
	"integration": AreaApplication,
}

// areaPriority breaks count ties, most foundational support first.
var areaPriority = []string{AreaDefinition, AreaProcess, AreaRelationship, AreaApplication}

// DetectStruggleArea picks the struggle area most represented among the
// recent errors. Empty input and unmapped question types both resolve
// to definition.
func DetectStruggleArea(errors []ErrorRecord) string {
	if len(errors) == 0 {
		return AreaDefinition
	}

	counts := make(map[string]int, len(areaPriority))
	for _, e := range errors {
		area, ok := questionTypeAreas[e.QuestionType]
		if !ok {
			area = AreaDefinition
		}
		counts[area]++
	}

	best := AreaDefinition
	bestCount := 0
	for _, area := range areaPriority {
		if counts[area] > bestCount {
			best = area
			bestCount = counts[area]
		}
	}
	return best
}
