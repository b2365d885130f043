package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaemin/econquiz/internal/api"
	"github.com/jaemin/econquiz/internal/app"
	"github.com/jaemin/econquiz/internal/demoflag"
	"github.com/jaemin/econquiz/internal/store"
)

// runApp opens the store, builds the API client, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
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

	eventRepo := st.EventRepo()

	client := api.NewClient(cfg)
	api.WithLogging(client, eventRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := demoflag.NewWatcher(client, cfg.DemoPollInterval)
	watcher.Start(ctx)

	return app.Run(app.Options{
		Client:    client,
		EventRepo: eventRepo,
		StageRepo: st.StageRepo(),
		Config:    cfg,
		Watcher:   watcher,
	})
}
