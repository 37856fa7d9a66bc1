package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rahulsv/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		topic, _ := cmd.Flags().GetString("topic")
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		quizzes, err := st.QuizRepo().History(context.Background(), userID, topic, limit)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}

		if len(quizzes) == 0 {
			fmt.Println("No quizzes recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-20s  %9s  %8s  %s\n", "ID", "Started", "Topic", "Correct", "Mistakes", "Done")
		fmt.Println(strings.Repeat("-", 72))
		for _, q := range quizzes {
			done := "no"
			if !q.CompletedAt.IsZero() {
				done = "yes"
			}
			fmt.Printf("%-5d  %-16s  %-20s  %4d/%-4d  %8d  %s\n",
				q.ID,
				q.StartedAt.Local().Format("2006-01-02 15:04"),
				truncate(q.Topic, 20),
				q.CorrectAnswers, q.TotalQuestions,
				q.TotalMistakes,
				done,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringP("user", "u", "learner", "Learner ID")
	historyCmd.Flags().StringP("topic", "t", "", "Filter by topic")
	historyCmd.Flags().IntP("limit", "n", 10, "Number of quizzes to show")
}
