package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"palpite/internal/config"
	"palpite/internal/engine"
	"palpite/internal/history"
	"palpite/internal/keywords"
	"palpite/internal/scorer"
	"palpite/internal/storage"
)

// initStorage opens the database (creating and migrating it if needed).
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/palpite/palpite.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadKeywordTable returns the configured keyword table, defaulting to
// the compiled-in one.
func loadKeywordTable() (*keywords.Table, error) {
	path := viper.GetString("keywords.file")
	if path == "" {
		return keywords.DefaultTable(), nil
	}
	return keywords.LoadFile(config.ExpandPath(path))
}

// initEngine wires the classifiers into an arbiter over the given store.
func initEngine(store *storage.SQLiteStorage) (*engine.Engine, error) {
	table, err := loadKeywordTable()
	if err != nil {
		return nil, err
	}

	cfg := engine.DefaultConfig()
	if fallback := viper.GetString("categories.fallback"); fallback != "" {
		cfg.Fallback = fallback
	}
	if workers := viper.GetInt("batch.workers"); workers > 0 {
		cfg.BatchWorkers = workers
	}

	s := scorer.New(table, cfg.Fallback)
	return engine.NewWithConfig(history.New(store), s, cfg), nil
}

// currentUser returns the user id selected by flag or config.
func currentUser() string {
	user := viper.GetString("user.id")
	if user == "" {
		user = "default"
	}
	return user
}
