package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/shiksha/internal/app"
	"github.com/abhisek/shiksha/internal/catalog"
	"github.com/abhisek/shiksha/internal/config"
	"github.com/abhisek/shiksha/internal/logger"
	"github.com/abhisek/shiksha/internal/speech"
	"github.com/abhisek/shiksha/internal/store"
)

// openApp loads config, opens the store, builds the container, and
// restores the latest snapshot. The returned closer saves state and
// releases the database.
func openApp(cmd *cobra.Command) (*app.App, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	if cfg.DBPath != "" {
		if p, _ := cmd.Flags().GetString("db"); p == "" {
			dbPath = cfg.DBPath
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	opts := app.Options{
		Snapshots:    st.SnapshotRepo(),
		Logger:       log,
		SnapshotKeep: cfg.SnapshotKeep,
	}
	if cfg.CatalogPath != "" {
		cat, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("load catalog: %w", err)
		}
		opts.Catalog = cat
	}
	if cfg.TTS.Enabled {
		synth := speech.NewAI4BharatClient(cfg.AudioDir,
			speech.WithBaseURL(cfg.TTS.BaseURL),
			speech.WithAPIKey(cfg.TTS.APIKey),
			speech.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
		)
		opts.Speech = speech.NewService(speech.NewCache(), synth)
	}

	a := app.New(opts)
	if err := a.LoadState(cmd.Context()); err != nil {
		st.Close()
		return nil, nil, err
	}

	closer := func() error {
		defer st.Close()
		defer func() { _ = log.Sync() }()
		if err := a.SaveState(cmd.Context(), time.Now()); err != nil {
			log.Warn("save state", zap.Error(err))
			return err
		}
		return nil
	}
	return a, closer, nil
}
