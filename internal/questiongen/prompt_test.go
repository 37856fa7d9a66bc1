package questiongen

import (
	"strings"
	"testing"
)

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Snippet:        testSnippet,
		Topic:          "photosynthesis",
		Level:          3,
		PriorQuestions: []string{"What is a chloroplast?"},
	}, DefaultConfig())

	for _, want := range []string{
		"Topic: photosynthesis",
		"Level: 3 (Application)",
		"scenario, case_study, problem_solving",
		"Hints allowed: true",
		testSnippet,
		"1. What is a chloroplast?",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessage_NoHintsAtLevel4(t *testing.T) {
	msg := buildUserMessage(GenerateInput{Snippet: testSnippet, Topic: "x", Level: 4}, DefaultConfig())
	if !strings.Contains(msg, "Hints allowed: false") {
		t.Errorf("expected hints disallowed at level 4:\n%s", msg)
	}
	if !strings.Contains(msg, "Already asked in this session:\nNone") {
		t.Errorf("expected None for empty prior questions:\n%s", msg)
	}
}

func TestBuildUserMessage_StruggleSupport(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Snippet:      testSnippet,
		Topic:        "photosynthesis",
		Level:        2,
		StruggleArea: "process",
	}, DefaultConfig())

	if !strings.Contains(msg, "struggling with process") {
		t.Errorf("expected struggle area in message:\n%s", msg)
	}
	if !strings.Contains(msg, "Identify the sequence of steps") {
		t.Errorf("expected process strategies in message:\n%s", msg)
	}
}

func TestBuildDedup_Caps(t *testing.T) {
	priors := []string{"q1", "q2", "q3", "q4"}
	got := buildDedup(priors, 2)
	if strings.Contains(got, "q1") || strings.Contains(got, "q2") {
		t.Errorf("expected only the newest 2 questions, got:\n%s", got)
	}
	if !strings.Contains(got, "q3") || !strings.Contains(got, "q4") {
		t.Errorf("expected q3 and q4, got:\n%s", got)
	}
}
