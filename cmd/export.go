package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaemin/econquiz/internal/api"
	"github.com/jaemin/econquiz/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <attempt-id>",
	Short: "Download a graded attempt as JSON or CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		formatFlag, _ := cmd.Flags().GetString("format")
		var format api.ExportFormat
		switch formatFlag {
		case "json":
			format = api.ExportJSON
		case "csv":
			format = api.ExportCSV
		default:
			return fmt.Errorf("unknown format %q (want json or csv)", formatFlag)
		}

		outDir, _ := cmd.Flags().GetString("out")

		client := api.NewClient(cfg)
		path, err := export.Save(context.Background(), client, args[0], format, outDir)
		if err != nil {
			return fmt.Errorf("export attempt: %w", err)
		}

		fmt.Println("Saved", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "json", "Export format: json or csv")
	exportCmd.Flags().String("out", ".", "Directory to write the export into")
}
