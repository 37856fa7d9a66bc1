package cmd

import (
	"context"
	"fmt"

	"github.com/rahulsv/studyloop/internal/session"
	"github.com/rahulsv/studyloop/internal/store"
	"github.com/spf13/cobra"
)

// asInt reads a numeric snapshot field. JSON round-tripping through the
// store turns ints into float64.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		stats, err := st.QuizRepo().Stats(ctx, userID)
		if err != nil {
			return fmt.Errorf("aggregate stats: %w", err)
		}

		if stats.TotalQuizzes == 0 && stats.ConceptsSeen == 0 {
			fmt.Println("No activity recorded yet. Run `studyloop quiz` to get started.")
			return nil
		}

		fmt.Printf("Quizzes:        %d\n", stats.TotalQuizzes)
		fmt.Printf("Questions:      %d (%d correct, %d mistakes)\n",
			stats.TotalQuestions, stats.TotalCorrect, stats.TotalMistakes)
		fmt.Printf("Topics studied: %d\n", stats.TopicsStudied)
		fmt.Printf("Concepts seen:  %d\n", stats.ConceptsSeen)
		fmt.Printf("Avg mastery:    %.0f%%\n", stats.AvgMastery*100)
		fmt.Printf("Mastered:       %d\n", stats.MasteredCount)
		if stats.ActiveGaps > 0 {
			fmt.Printf("Open gaps:      %d\n", stats.ActiveGaps)
		}

		snap, err := session.LastSession(ctx, st.SnapshotRepo(), userID)
		if err != nil {
			return fmt.Errorf("query last session: %w", err)
		}
		if snap != nil {
			fmt.Printf("\nLast session (%s):\n", snap.Timestamp.Local().Format("2006-01-02 15:04"))
			if topic, ok := snap.Data["topic"].(string); ok && topic != "" {
				fmt.Printf("  Topic: %s\n", topic)
			}
			if level, ok := asInt(snap.Data["level"]); ok {
				fmt.Printf("  Level: %d\n", level)
			}
			if n, ok := asInt(snap.Data["questions_answered"]); ok {
				fmt.Printf("  Questions answered: %d\n", n)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("user", "u", "learner", "Learner ID")
}
