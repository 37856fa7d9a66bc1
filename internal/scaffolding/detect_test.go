package scaffolding

import "testing"

func TestDetectStruggleArea_Empty(t *testing.T) {
	if got := DetectStruggleArea(nil); got != AreaDefinition {
		t.Errorf("empty errors = %q, want definition", got)
	}
}

func TestDetectStruggleArea_Mapping(t *testing.T) {
	tests := []struct {
		questionType string
		want         string
	}{
		{"definition", AreaDefinition},
		{"recognition", AreaDefinition},
		{"true_false", AreaDefinition},
		{"problem_solving", AreaProcess},
		{"breakdown", AreaProcess},
		{"comparison", AreaRelationship},
		{"cause_effect", AreaRelationship},
		{"pattern_recognition", AreaRelationship},
		{"scenario", AreaApplication},
		{"case_study", AreaApplication},
		{"design", AreaApplication},
		{"integration", AreaApplication},
	}
	for _, tt := range tests {
		got := DetectStruggleArea([]ErrorRecord{{QuestionType: tt.questionType}})
		if got != tt.want {
			t.Errorf("%s: area = %q, want %q", tt.questionType, got, tt.want)
		}
	}
}

func TestDetectStruggleArea_UnmappedDefaultsToDefinition(t *testing.T) {
	errs := []ErrorRecord{{QuestionType: "interpretive_dance"}, {QuestionType: ""}}
	if got := DetectStruggleArea(errs); got != AreaDefinition {
		t.Errorf("unmapped types = %q, want definition", got)
	}
}

func TestDetectStruggleArea_MostCommonWins(t *testing.T) {
	errs := []ErrorRecord{
		{QuestionType: "comparison"},
		{QuestionType: "cause_effect"},
		{QuestionType: "scenario"},
	}
	if got := DetectStruggleArea(errs); got != AreaRelationship {
		t.Errorf("area = %q, want relationship", got)
	}
}

func TestDetectStruggleArea_TieBreaksFoundational(t *testing.T) {
	// One relationship error, one application error: definition and
	// process are absent, relationship wins as the more foundational of
	// the tied pair.
	errs := []ErrorRecord{
		{QuestionType: "comparison"},
		{QuestionType: "scenario"},
	}
	if got := DetectStruggleArea(errs); got != AreaRelationship {
		t.Errorf("area = %q, want relationship", got)
	}
}

func TestSupportFor(t *testing.T) {
	for _, area := range []string{AreaDefinition, AreaProcess, AreaRelationship, AreaApplication} {
		s := SupportFor(area)
		if s.StruggleArea != area {
			t.Errorf("%s: bundle reports area %q", area, s.StruggleArea)
		}
		if len(s.HintTemplates) == 0 || len(s.Strategies) == 0 || len(s.ExamplePrompts) == 0 {
			t.Errorf("%s: incomplete bundle", area)
		}
		if s.Simplification == "" {
			t.Errorf("%s: missing simplification", area)
		}
	}
}

func TestSupportFor_UnknownArea(t *testing.T) {
	s := SupportFor("telepathy")
	if s.StruggleArea != AreaDefinition {
		t.Errorf("unknown area bundle = %q, want definition", s.StruggleArea)
	}
}
