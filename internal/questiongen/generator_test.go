package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rahulsv/studyloop/internal/llm"
)

const testSnippet = "Photosynthesis converts light energy into chemical energy inside the chloroplast."

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "What does photosynthesis convert light energy into?",
		"question_type": "definition",
		"answer": "chemical energy",
		"explanation": "The snippet states that photosynthesis converts light energy into chemical energy.",
		"hint": "Look at what the process produces.",
		"concept": "photosynthesis"
	}`)
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validQuestionJSON(),
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{
		Snippet: testSnippet,
		Topic:   "photosynthesis",
		Level:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Type != "definition" {
		t.Errorf("type = %q, want definition", q.Type)
	}
	if q.Answer != "chemical energy" {
		t.Errorf("answer = %q", q.Answer)
	}
	if q.Concept != "photosynthesis" {
		t.Errorf("concept = %q", q.Concept)
	}
	if q.Level != 1 {
		t.Errorf("level = %d, want 1", q.Level)
	}
}

func TestGenerate_TypeNotAllowedAtLevel(t *testing.T) {
	// "definition" is a level-1 type; level 4 does not allow it.
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Snippet: testSnippet,
		Topic:   "photosynthesis",
		Level:   4,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "level-policy" {
		t.Errorf("validator = %q, want level-policy", valErr.Validator)
	}
}

func TestGenerate_HintForbiddenAtHighLevels(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "Break photosynthesis into its inputs and outputs.",
		"question_type": "breakdown",
		"answer": "inputs: light; outputs: chemical energy",
		"explanation": "The snippet names light as the input and chemical energy as the product.",
		"hint": "Start with the inputs.",
		"concept": "photosynthesis"
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Snippet: testSnippet,
		Topic:   "photosynthesis",
		Level:   4,
	})
	if err == nil {
		t.Fatal("expected validation error for hint at level 4")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestGenerate_StructuralFailure(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "What does photosynthesis produce?",
		"question_type": "definition",
		"answer": "",
		"explanation": "See snippet.",
		"hint": "",
		"concept": "photosynthesis"
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Snippet: testSnippet,
		Level:   1,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "structural" {
		t.Errorf("validator = %q, want structural", valErr.Validator)
	}
}

func TestGenerate_LevelClamped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{
		Snippet: testSnippet,
		Level:   0, // Below the minimum, clamps to 1.
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Level != 1 {
		t.Errorf("level = %d, want 1", q.Level)
	}
}

func TestGenerate_SchemaRestrictsTypes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Snippet: testSnippet,
		Level:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	schema := mock.Calls[0].Schema
	if schema == nil {
		t.Fatal("expected a schema on the request")
	}
	if schema.Name != "quiz-question-l1" {
		t.Errorf("schema name = %q", schema.Name)
	}
	props := schema.Definition["properties"].(map[string]any)
	enum := props["question_type"].(map[string]any)["enum"].([]any)
	if len(enum) != 3 {
		t.Errorf("enum size = %d, want 3", len(enum))
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("API error"),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Snippet: testSnippet, Level: 1})
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "LLM generation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestGenerate_ValidatorOrder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	tracker := &trackingValidator{}
	cfg := Config{
		Validators:  []Validator{&alwaysRejectValidator{name: "first"}, tracker},
		MaxTokens:   512,
		Temperature: 0.7,
	}
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), GenerateInput{Snippet: testSnippet, Level: 1})
	if err == nil {
		t.Fatal("expected first validator to reject")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "first" {
		t.Errorf("validator = %q, want first", valErr.Validator)
	}
	if tracker.called {
		t.Error("second validator should not have been called")
	}
}

// alwaysRejectValidator always rejects.
type alwaysRejectValidator struct{ name string }

func (v *alwaysRejectValidator) Name() string { return v.name }
func (v *alwaysRejectValidator) Validate(*Question, GenerateInput) *ValidationError {
	return &ValidationError{Validator: v.name, Message: "rejected", Retryable: true}
}

// trackingValidator records whether it was called.
type trackingValidator struct {
	called bool
}

func (v *trackingValidator) Name() string { return "tracking" }
func (v *trackingValidator) Validate(*Question, GenerateInput) *ValidationError {
	v.called = true
	return nil
}
