// Package quiz drives a quiz through its lifecycle: preparation from
// course material, stepping through questions, and recording results.
package quiz

import (
	"context"
	"fmt"
	"os"

	"github.com/rahulsv/studyloop/internal/retrieval"
	"github.com/rahulsv/studyloop/internal/session"
	"github.com/rahulsv/studyloop/internal/store"
)

const (
	// DefaultMaxChunks is how many course chunks a quiz draws on.
	DefaultMaxChunks = 3

	// hintLength is how much of a snippet the step hint reveals.
	hintLength = 400
)

// warnf reports a non-fatal persistence failure. Storage errors must
// not break an in-flight quiz.
var warnf = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "studyloop: "+format+"\n", args...)
}

// Flow holds the state of one quiz run. A Flow belongs to a single
// session and is not safe for concurrent use.
type Flow struct {
	retriever retrieval.Retriever
	quizzes   store.QuizRepo
	state     *session.State

	snippets      []string
	index         int
	mistakes      int // on the current question
	totalMistakes int
	totalCorrect  int
	details       []store.QuestionDetail
}

// NewFlow creates a quiz flow. The retriever is required; the quiz repo
// may be nil for a purely in-memory quiz.
func NewFlow(r retrieval.Retriever, quizzes store.QuizRepo, state *session.State) *Flow {
	return &Flow{
		retriever: r,
		quizzes:   quizzes,
		state:     state,
	}
}

// PrepareResult is returned by Prepare.
type PrepareResult struct {
	Status         string `json:"status"`
	ErrorMessage   string `json:"error_message,omitempty"`
	Topic          string `json:"topic,omitempty"`
	TotalQuestions int    `json:"total_questions,omitempty"`
	QuizID         int    `json:"quiz_id,omitempty"`
}

// Prepare initializes the quiz from course chunks relevant to topic and
// records the quiz start.
func (f *Flow) Prepare(ctx context.Context, topic string, maxChunks int) PrepareResult {
	if f.retriever == nil {
		return PrepareResult{
			Status:       session.StatusError,
			ErrorMessage: "retriever not initialized, load course material first",
		}
	}
	if maxChunks <= 0 {
		maxChunks = DefaultMaxChunks
	}

	snippets := f.retriever.Rank(topic, maxChunks)
	if len(snippets) == 0 {
		return PrepareResult{
			Status:       session.StatusError,
			ErrorMessage: "no course material found for topic",
		}
	}

	f.snippets = snippets
	f.index = 0
	f.mistakes = 0
	f.totalMistakes = 0
	f.totalCorrect = 0
	f.details = nil
	f.state.Topic = topic
	f.state.QuizID = 0

	if f.quizzes != nil {
		id, err := f.quizzes.Start(ctx, f.state.UserID, f.state.SessionID, topic, len(snippets))
		if err != nil {
			warnf("record quiz start: %v", err)
		} else {
			f.state.QuizID = id
		}
	}

	return PrepareResult{
		Status:         session.StatusSuccess,
		Topic:          topic,
		TotalQuestions: len(snippets),
		QuizID:         f.state.QuizID,
	}
}

// StepResult is returned by Step.
type StepResult struct {
	Status             string `json:"status"`
	ErrorMessage       string `json:"error_message,omitempty"`
	Topic              string `json:"topic,omitempty"`
	QuestionNumber     int    `json:"question_number,omitempty"`
	TotalQuestions     int    `json:"total_questions,omitempty"`
	HintSnippet        string `json:"hint_snippet,omitempty"`
	MistakesOnQuestion int    `json:"mistakes_on_question"`
}

// Step returns the current question's hint snippet and progress.
func (f *Flow) Step() StepResult {
	if len(f.snippets) == 0 {
		return StepResult{
			Status:       session.StatusError,
			ErrorMessage: "quiz not prepared",
		}
	}

	idx := f.clampIndex()
	snippet := f.snippets[idx]
	hint := snippet
	if runes := []rune(snippet); len(runes) > hintLength {
		hint = string(runes[:hintLength])
	}

	return StepResult{
		Status:             session.StatusSuccess,
		Topic:              f.state.Topic,
		QuestionNumber:     idx + 1,
		TotalQuestions:     len(f.snippets),
		HintSnippet:        hint,
		MistakesOnQuestion: f.mistakes,
	}
}

// AdvanceResult is returned by Advance.
type AdvanceResult struct {
	Status             string `json:"status"`
	ErrorMessage       string `json:"error_message,omitempty"`
	Done               bool   `json:"done"`
	NextQuestionNumber int    `json:"next_question_number,omitempty"`
	TotalQuestions     int    `json:"total_questions,omitempty"`
	MistakesOnCurrent  int    `json:"mistakes_on_current"`
	TotalCorrect       int    `json:"total_correct"`
	TotalMistakes      int    `json:"total_mistakes"`
}

// Advance records an answer. A correct answer moves to the next
// question; an incorrect one stays on the same question and counts a
// mistake. Quiz progress is persisted after every call; concept mastery
// is the session tracker's job, not the flow's.
func (f *Flow) Advance(ctx context.Context, correct bool, concept string) AdvanceResult {
	if len(f.snippets) == 0 {
		return AdvanceResult{
			Status:       session.StatusError,
			ErrorMessage: "quiz not prepared",
		}
	}

	if correct {
		name := concept
		if name == "" {
			name = f.state.Topic
		}
		f.details = append(f.details, store.QuestionDetail{
			Number:          f.index + 1,
			Concept:         name,
			DifficultyLevel: f.state.Level,
			Score:           1.0,
			Correct:         true,
			Attempts:        f.mistakes + 1,
		})
		f.index++
		f.totalCorrect++
		f.mistakes = 0
	} else {
		f.mistakes++
		f.totalMistakes++
	}

	if f.quizzes != nil && f.state.QuizID != 0 {
		if err := f.quizzes.UpdateProgress(ctx, f.state.QuizID, f.totalCorrect, f.totalMistakes, f.details); err != nil {
			warnf("persist quiz progress: %v", err)
		}
	}

	done := f.index >= len(f.snippets)
	if done && f.quizzes != nil && f.state.QuizID != 0 {
		if err := f.quizzes.Complete(ctx, f.state.QuizID); err != nil {
			warnf("complete quiz: %v", err)
		}
	}

	next := f.index + 1
	if next > len(f.snippets) {
		next = len(f.snippets)
	}
	return AdvanceResult{
		Status:             session.StatusSuccess,
		Done:               done,
		NextQuestionNumber: next,
		TotalQuestions:     len(f.snippets),
		MistakesOnCurrent:  f.mistakes,
		TotalCorrect:       f.totalCorrect,
		TotalMistakes:      f.totalMistakes,
	}
}

// RevealResult is returned by Reveal.
type RevealResult struct {
	Status         string `json:"status"`
	ErrorMessage   string `json:"error_message,omitempty"`
	Context        string `json:"context,omitempty"`
	QuestionNumber int    `json:"question_number,omitempty"`
	TotalQuestions int    `json:"total_questions,omitempty"`
}

// Reveal returns the full snippet for the current question, for
// learners who need more than the hint.
func (f *Flow) Reveal() RevealResult {
	if len(f.snippets) == 0 {
		return RevealResult{
			Status:       session.StatusError,
			ErrorMessage: "quiz not prepared",
		}
	}

	idx := f.clampIndex()
	return RevealResult{
		Status:         session.StatusSuccess,
		Context:        f.snippets[idx],
		QuestionNumber: idx + 1,
		TotalQuestions: len(f.snippets),
	}
}

// Snippet returns the current snippet text, or "" when the quiz is not
// prepared. Question generation uses it as source material.
func (f *Flow) Snippet() string {
	if len(f.snippets) == 0 {
		return ""
	}
	return f.snippets[f.clampIndex()]
}

// Done reports whether every question has been answered.
func (f *Flow) Done() bool {
	return len(f.snippets) > 0 && f.index >= len(f.snippets)
}

func (f *Flow) clampIndex() int {
	idx := f.index
	if idx > len(f.snippets)-1 {
		idx = len(f.snippets) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
