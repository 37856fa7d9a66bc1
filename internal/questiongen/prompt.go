package questiongen

import (
	"fmt"
	"strings"

	"github.com/rahulsv/studyloop/internal/difficulty"
	"github.com/rahulsv/studyloop/internal/scaffolding"
)

const systemPrompt = `You are a study tutor creating quiz questions from course material.

Rules:
- Generate a single question grounded strictly in the provided snippet. Do not introduce facts the snippet does not contain.
- The question type must be one of the allowed types for the learner's level.
- The question text should be clear, self-contained, and answerable from the snippet alone.
- The answer must be short, correct, and verifiable against the snippet.
- The explanation should reference the snippet so the learner can check their own answer.
- If hints are allowed, include a hint that points toward the answer without giving it away. If not, leave the hint empty.
- Name the single concept the question tests, in lowercase.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	lv := difficulty.LevelFor(input.Level)

	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Level: %d (%s). %s\n", lv.Level, lv.Name, lv.Description)
	fmt.Fprintf(&b, "Allowed question types: %s\n", strings.Join(lv.QuestionTypes, ", "))
	fmt.Fprintf(&b, "Hints allowed: %t\n", lv.HintAllowance > 0)

	b.WriteString("\nStudy material:\n")
	b.WriteString(input.Snippet)
	b.WriteString("\n")

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	if input.StruggleArea != "" {
		sup := scaffolding.SupportFor(input.StruggleArea)
		fmt.Fprintf(&b, "\n\nThe learner is struggling with %s. %s.\n", sup.StruggleArea, sup.Simplification)
		b.WriteString("Apply these strategies:\n")
		for i, s := range sup.Strategies {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// buildDedup formats prior questions for the prompt, respecting the max
// limit. Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
