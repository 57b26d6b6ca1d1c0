package main

import (
	"context"
	"fmt"
	"strings"

	"questforge/internal/config"
	"questforge/internal/dialogue"
	"questforge/internal/store"
	"questforge/internal/store/postgres"
	"questforge/internal/store/sqlite"
)

const configPath = "questforge.yaml"

func openDB(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	dsn := cfg.Database.DSN
	var db store.Store
	var err error
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = postgres.New(ctx, dsn)
	case strings.HasPrefix(dsn, "sqlite://"):
		db, err = sqlite.New(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported dsn scheme in %q", dsn)
	}
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close(ctx)
		return nil, err
	}
	return db, nil
}

// loadCorpus reads the dialogue corpus named by the config, or nil when the
// project has none configured.
func loadCorpus(cfg *config.ProjectConfig) (*dialogue.Corpus, error) {
	if cfg.Dialogue == "" {
		return nil, nil
	}
	return dialogue.LoadFile(cfg.Dialogue)
}

func loadCatalogs(cfg *config.ProjectConfig) (*config.Catalogs, error) {
	if cfg.Catalogs == "" {
		return nil, nil
	}
	return config.LoadCatalogs(cfg.Catalogs)
}
