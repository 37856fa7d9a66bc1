package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rahulsv/studyloop/internal/difficulty"
	"github.com/rahulsv/studyloop/internal/session"
	"github.com/rahulsv/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Show or set the difficulty level",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		setTo, _ := cmd.Flags().GetInt("set")

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
		state := session.NewState(userID, uuid.NewString())
		tracker := session.NewTracker(st.EventRepo(), st.ConceptRepo())
		tracker.RestoreLevel(ctx, state)

		if setTo == 0 {
			res := tracker.Level(state)
			fmt.Printf("Level %d (%s)\n", res.Level, res.Name)
			fmt.Printf("Question types: %v\n", res.QuestionTypes)
			fmt.Printf("Hint allowance: %d\n", res.HintAllowance)
			return nil
		}

		res := tracker.SetLevel(ctx, state, setTo)
		fmt.Printf("Level set: %d -> %d (%s)\n", res.PreviousLevel, res.NewLevel, res.LevelName)
		return nil
	},
}

func init() {
	levelCmd.Flags().StringP("user", "u", "learner", "Learner ID")
	levelCmd.Flags().IntP("set", "s", 0,
		fmt.Sprintf("Set the level (%d-%d)", difficulty.MinLevel, difficulty.MaxLevel))
}
