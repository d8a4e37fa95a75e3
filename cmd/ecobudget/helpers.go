package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/DVDHSN/EcoBudget/internal/config"
	"github.com/DVDHSN/EcoBudget/internal/engine"
	"github.com/DVDHSN/EcoBudget/internal/storage"
)

// openEngine opens the budget database and constructs the engine. The
// returned cleanup stops the engine's background work and closes the
// store.
func openEngine(ctx context.Context) (*engine.Engine, func(), error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open budget database: %w", err)
	}

	eng, err := engine.New(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to start budget engine: %w", err)
	}

	cleanup := func() {
		_ = eng.Close()
		if err := store.Close(); err != nil {
			slog.Error("failed to close budget database", "error", err)
		}
	}
	return eng, cleanup, nil
}
