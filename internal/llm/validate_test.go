package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A minimal question object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question_text": map[string]any{"type": "string"},
				"level":         map[string]any{"type": "integer", "minimum": 1},
				"question_type": map[string]any{"type": "string", "enum": []any{"recall", "explain", "apply"}},
			},
			"required": []any{"question_text", "level"},
		},
	}
}

func TestCheckAgainstSchema_Valid(t *testing.T) {
	raw := json.RawMessage(`{"question_text":"What is a mutex?","level":2,"question_type":"recall"}`)
	if err := checkAgainstSchema(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestCheckAgainstSchema_OptionalFieldOmitted(t *testing.T) {
	raw := json.RawMessage(`{"question_text":"Explain defer.","level":3}`)
	if err := checkAgainstSchema(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestCheckAgainstSchema_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"question_text":"Explain defer."}`)
	err := checkAgainstSchema(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestCheckAgainstSchema_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"question_text":"Explain defer.","level":"three"}`)
	err := checkAgainstSchema(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestCheckAgainstSchema_EnumViolation(t *testing.T) {
	raw := json.RawMessage(`{"question_text":"Explain defer.","level":3,"question_type":"riddle"}`)
	err := checkAgainstSchema(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestCheckAgainstSchema_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := checkAgainstSchema(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestCheckAgainstSchema_EmptyResponse(t *testing.T) {
	if err := checkAgainstSchema(testSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestCheckAgainstSchema_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := checkAgainstSchema(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestCheckAgainstSchema_Nested(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{"type": "string"},
					},
					"required": []any{"text"},
				},
				"hints": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"question", "hints"},
		},
	}

	valid := json.RawMessage(`{"question":{"text":"What does cap() return?"},"hints":["think slices","not length"]}`)
	if err := checkAgainstSchema(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"question":{"text":"What does cap() return?"},"hints":[1,2]}`)
	if err := checkAgainstSchema(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
