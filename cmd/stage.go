package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jaemin/econquiz/internal/quiz"
	"github.com/jaemin/econquiz/internal/store"
)

var stageCmd = &cobra.Command{
	Use:   "stage <file.json>",
	Short: "Stage a problem-set file as the active quiz",
	Long:  "Validates a problem-set JSON file and stages it as the active set, replacing any previously staged one. The next `econquiz` run starts the quiz on it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read problem set: %w", err)
		}

		var set quiz.ProblemSet
		if err := json.Unmarshal(raw, &set); err != nil {
			return fmt.Errorf("parse problem set: %w", err)
		}

		// Fill in what a hand-exported file may omit, then validate
		// the normalized payload the same way the store does on load.
		if set.ID == "" {
			set.ID = uuid.New().String()
		}
		if set.Source == "" {
			set.Source = quiz.SourceGenerated
		}
		if set.CreatedAt.IsZero() {
			set.CreatedAt = time.Now()
		}

		normalized, err := json.Marshal(&set)
		if err != nil {
			return fmt.Errorf("encode problem set: %w", err)
		}
		if err := store.ValidateProblemSet(normalized); err != nil {
			return fmt.Errorf("invalid problem set: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.StageRepo().Stage(context.Background(), &set); err != nil {
			return fmt.Errorf("stage problem set: %w", err)
		}

		fmt.Printf("Staged %d questions (set %s)\n", len(set.Items), set.ID)
		return nil
	},
}
