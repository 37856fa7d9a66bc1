package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rahulsv/studyloop/internal/difficulty"
	"github.com/rahulsv/studyloop/internal/llm"
	"github.com/rahulsv/studyloop/internal/questiongen"
	"github.com/rahulsv/studyloop/internal/quiz"
	"github.com/rahulsv/studyloop/internal/retrieval"
	"github.com/rahulsv/studyloop/internal/session"
	"github.com/rahulsv/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <topic>",
	Short: "Run an adaptive quiz on a topic from your course material",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]
		coursePath, _ := cmd.Flags().GetString("course")
		userID, _ := cmd.Flags().GetString("user")
		maxQuestions, _ := cmd.Flags().GetInt("questions")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		chunks, err := retrieval.LoadFile(coursePath)
		if err != nil {
			return fmt.Errorf("load course material: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		state := session.NewState(userID, uuid.NewString())
		tracker := session.NewTracker(st.EventRepo(), st.ConceptRepo())
		tracker.RestoreLevel(ctx, state)

		// Question generation is optional; without a provider the quiz
		// falls back to recall prompts over the raw snippets.
		var gen questiongen.Generator
		if provider, perr := llm.NewProviderFromEnv(ctx, st.EventRepo()); perr != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", perr)
			fmt.Fprintln(os.Stderr, "Falling back to recall prompts.")
		} else {
			gen = questiongen.New(provider, questiongen.DefaultConfig())
		}

		flow := quiz.NewFlow(retrieval.NewKeywordRetriever(chunks), st.QuizRepo(), state)
		prep := flow.Prepare(ctx, topic, maxQuestions)
		if prep.Status != session.StatusSuccess {
			return fmt.Errorf("%s", prep.ErrorMessage)
		}

		fmt.Printf("Quiz on %q: %d questions. Starting at level %d (%s).\n",
			topic, prep.TotalQuestions, state.Level, levelName(state))
		fmt.Println(`Answer, or type "hint" or "reveal". Ctrl-D quits.`)

		runErr := runQuizLoop(ctx, os.Stdin, flow, tracker, state, gen)
		if err := session.SaveSnapshot(ctx, st.SnapshotRepo(), state); err != nil {
			fmt.Fprintln(os.Stderr, "save session snapshot:", err)
		}
		return runErr
	},
}

func init() {
	quizCmd.Flags().StringP("course", "c", "course.txt", "Path to the course material text file")
	quizCmd.Flags().StringP("user", "u", "learner", "Learner ID")
	quizCmd.Flags().IntP("questions", "n", quiz.DefaultMaxChunks, "Maximum number of questions")
}

// runQuizLoop steps through the quiz on the given input stream until it
// is done or the stream ends.
func runQuizLoop(ctx context.Context, in *os.File, flow *quiz.Flow, tracker *session.Tracker, state *session.State, gen questiongen.Generator) error {
	scanner := bufio.NewScanner(in)
	var priors []string
	var struggleArea string

	for !flow.Done() {
		step := flow.Step()
		if step.Status != session.StatusSuccess {
			return fmt.Errorf("%s", step.ErrorMessage)
		}

		q := generateQuestion(ctx, flow, state, gen, priors, struggleArea)
		fmt.Printf("\n[%d/%d] %s\n", step.QuestionNumber, step.TotalQuestions, q.Text)
		priors = append(priors, q.Text)

		start := time.Now()
		answered := false
		for scanner.Scan() {
			switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
			case "hint":
				showHint(state, q, step.HintSnippet)
				continue
			case "reveal":
				rev := flow.Reveal()
				fmt.Println("\n" + rev.Context)
				continue
			case "":
				continue
			}
			answered = true
			break
		}
		if !answered {
			fmt.Println()
			return nil
		}
		elapsed := time.Since(start).Milliseconds()

		fmt.Printf("Expected: %s\n%s\n", q.Answer, q.Explanation)
		correct, ok := askYesNo(scanner, "Did you get it right? [y/n] ")
		if !ok {
			return nil
		}

		score := 0.0
		if correct {
			score = 1.0
		}
		hintsUsed := state.HintsUsed
		res := tracker.RecordPerformance(ctx, state, session.RecordInput{
			Score:          score,
			ResponseTimeMs: int(elapsed),
			HintsUsed:      hintsUsed,
			Concept:        q.Concept,
			QuestionType:   q.Type,
		})
		flow.Advance(ctx, correct, q.Concept)

		struggleArea = reportAdjustment(ctx, tracker, state, res)
	}

	fmt.Println("\nQuiz complete.")
	fmt.Printf("Finished at level %d (%s).\n", state.Level, levelName(state))
	return nil
}

// generateQuestion asks the LLM for a question on the current snippet,
// falling back to a recall prompt when no generator is available or
// generation fails.
func generateQuestion(ctx context.Context, flow *quiz.Flow, state *session.State, gen questiongen.Generator, priors []string, struggleArea string) *questiongen.Question {
	if gen != nil {
		q, err := gen.Generate(ctx, questiongen.GenerateInput{
			Snippet:        flow.Snippet(),
			Topic:          state.Topic,
			Level:          state.Level,
			PriorQuestions: priors,
			StruggleArea:   struggleArea,
		})
		if err == nil {
			return q
		}
		fmt.Fprintln(os.Stderr, "question generation failed:", err)
	}

	return &questiongen.Question{
		Text:    fmt.Sprintf("In your own words, explain what this part of the material says about %s.", state.Topic),
		Type:    "recall",
		Answer:  flow.Snippet(),
		Concept: state.Topic,
		Level:   state.Level,
	}
}

func showHint(state *session.State, q *questiongen.Question, snippetHint string) {
	if state.HintsRemaining() == 0 {
		fmt.Println("No hints left at this level.")
		return
	}
	remaining := state.UseHint()
	hint := q.Hint
	if hint == "" {
		hint = snippetHint
	}
	fmt.Printf("Hint (%d left): %s\n", remaining, hint)
}

func askYesNo(scanner *bufio.Scanner, prompt string) (answer, ok bool) {
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			fmt.Println()
			return false, false
		}
		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		}
	}
}

// reportAdjustment prints the difficulty decision and, when scaffolding
// kicked in, the support strategies. Returns the detected struggle area
// for the next question's prompt.
func reportAdjustment(ctx context.Context, tracker *session.Tracker, state *session.State, res session.RecordResult) string {
	adj := res.Adjustment
	if adj.NewLevel > adj.PreviousLevel {
		fmt.Printf("Level up: %d -> %d (%s)\n", adj.PreviousLevel, adj.NewLevel, adj.Reason)
	} else if adj.NewLevel < adj.PreviousLevel {
		fmt.Printf("Level down: %d -> %d (%s)\n", adj.PreviousLevel, adj.NewLevel, adj.Reason)
	}

	if !state.ScaffoldingActive {
		return ""
	}
	sc := tracker.Scaffolding(ctx, state)
	if !sc.ScaffoldingActive {
		return ""
	}
	fmt.Printf("Let's slow down. You seem to be struggling with %s questions. Try:\n", sc.StruggleArea)
	for _, s := range sc.Hints.Strategies {
		fmt.Println("  -", s)
	}
	return sc.StruggleArea
}

func levelName(state *session.State) string {
	return difficulty.LevelFor(state.Level).Name
}
