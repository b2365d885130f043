package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaemin/econquiz/internal/api"
	"github.com/jaemin/econquiz/internal/quiz"
)

var attemptsCmd = &cobra.Command{
	Use:   "attempts",
	Short: "List past attempts (plain text, for scripts)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("size")

		client := api.NewClient(cfg)
		resp, err := client.ListAttempts(context.Background(), page, size)
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		for _, a := range resp.Items {
			fmt.Printf("%s\t%s\t%d/%d\t%d%%\t%s\n",
				a.AttemptID,
				quiz.FormatAttemptDate(a.CreatedAt),
				a.Correct, a.Total,
				a.Score,
				quiz.FormatDuration(a.Duration()),
			)
		}
		fmt.Printf("page %d of %d (%d attempts)\n", resp.Page, resp.Pages, resp.Total)
		return nil
	},
}

func init() {
	attemptsCmd.Flags().Int("page", 1, "Page number (1-based)")
	attemptsCmd.Flags().Int("size", 10, "Attempts per page")
}
