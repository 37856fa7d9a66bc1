package llm

import (
	"testing"
)

func TestGeminiAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := expandAlias(tt.in, geminiAliases); got != tt.want {
			t.Errorf("expandAlias(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{"type": "string"},
			"question_type": map[string]any{
				"type": "string",
				"enum": []any{"recall", "explain", "apply"},
			},
			"hints": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"level": map[string]any{"type": "integer"},
		},
		"required": []any{"question_text", "question_type"},
	}

	schema := toGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["question_text"].Type != "STRING" {
		t.Fatalf("question_text type = %s, want STRING", schema.Properties["question_text"].Type)
	}
	if schema.Properties["level"].Type != "INTEGER" {
		t.Fatalf("level type = %s, want INTEGER", schema.Properties["level"].Type)
	}
	if len(schema.Properties["question_type"].Enum) != 3 {
		t.Fatalf("enum values = %d, want 3", len(schema.Properties["question_type"].Enum))
	}
	if schema.Properties["hints"].Type != "ARRAY" {
		t.Fatalf("hints type = %s, want ARRAY", schema.Properties["hints"].Type)
	}
	if schema.Properties["hints"].Items.Type != "STRING" {
		t.Fatalf("hints items type = %s, want STRING", schema.Properties["hints"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("required = %d, want 2", len(schema.Required))
	}
}
