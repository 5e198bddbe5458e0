package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"commander/config"
)

// NewHistory creates a HistoryStore based on the storage configuration
func NewHistory(ctx context.Context, cfg *config.StorageConfig) (HistoryStore, error) {
	if cfg == nil {
		return NewMemoryHistory(), nil
	}

	switch cfg.Backend {
	case "sqlite":
		// Ensure directory exists
		dir := filepath.Dir(cfg.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create storage directory %s: %w", dir, err)
		}
		return NewSQLiteHistory(cfg.Path)

	case "postgres":
		return NewPostgresHistory(ctx, cfg.DSN)

	case "memory":
		return NewMemoryHistory(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %s (expected 'memory', 'sqlite' or 'postgres')", cfg.Backend)
	}
}
