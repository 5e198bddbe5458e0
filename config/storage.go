package config

import "fmt"

// StorageConfig defines the storage backend for command history
type StorageConfig struct {
	Backend string `hcl:"backend,optional"` // "memory", "sqlite" or "postgres"
	Path    string `hcl:"path,optional"`    // SQLite file path (default: ".commander/history.db")
	DSN     string `hcl:"dsn,optional"`     // PostgreSQL connection string
}

// Defaults fills in default values for unset fields
func (s *StorageConfig) Defaults() {
	if s.Backend == "" {
		s.Backend = "sqlite"
	}
	if s.Path == "" {
		s.Path = ".commander/history.db"
	}
}

// Validate checks that the backend is known and has what it needs
func (s *StorageConfig) Validate() error {
	switch s.Backend {
	case "memory", "sqlite":
		return nil
	case "postgres":
		if s.DSN == "" {
			return fmt.Errorf("dsn is required when backend is 'postgres'")
		}
		return nil
	default:
		return fmt.Errorf("unknown backend '%s' (expected 'memory', 'sqlite' or 'postgres')", s.Backend)
	}
}
