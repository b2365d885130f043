package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaemin/econquiz/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the staged problem set and local attempt trace",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to clear local data without --yes")
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

		if err := st.StageRepo().Clear(context.Background()); err != nil {
			return fmt.Errorf("clear staged set: %w", err)
		}
		if err := st.Reset(context.Background()); err != nil {
			return fmt.Errorf("clear local trace: %w", err)
		}

		fmt.Println("Local data cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm clearing all local data")
}
