package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rahulsv/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "List concept mastery, weakest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		weakOnly, _ := cmd.Flags().GetBool("weak")

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
		repo := st.ConceptRepo()

		var rows []store.ConceptMastery
		if weakOnly {
			rows, err = repo.WeakConcepts(ctx, userID, threshold)
		} else {
			rows, err = repo.AllMastery(ctx, userID, 0)
		}
		if err != nil {
			return fmt.Errorf("query concepts: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No concepts tracked yet.")
			return nil
		}

		fmt.Printf("%-28s  %8s  %6s  %8s  %s\n", "Concept", "Mastery", "Seen", "Max Lvl", "Struggle")
		fmt.Println(strings.Repeat("-", 64))
		for _, c := range rows {
			struggle := c.StruggleArea
			if struggle == "" {
				struggle = "-"
			}
			fmt.Printf("%-28s  %7.0f%%  %6d  %8d  %s\n",
				truncate(c.ConceptName, 28), c.MasteryLevel*100, c.TimesSeen, c.MaxDifficulty, struggle)
		}
		return nil
	},
}

func init() {
	conceptsCmd.Flags().StringP("user", "u", "learner", "Learner ID")
	conceptsCmd.Flags().Float64P("threshold", "t", 0.6, "Mastery threshold for --weak")
	conceptsCmd.Flags().BoolP("weak", "w", false, "Show only concepts below the threshold")
}
