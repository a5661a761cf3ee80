package storage

import (
	"fmt"

	"github.com/robosketch/engine/internal/config"
	"github.com/robosketch/engine/internal/storage/memory"
	"github.com/robosketch/engine/internal/storage/sqlite"
)

// NewBackend creates an archive backend based on configuration.
func NewBackend(cfg config.StorageConfig) (Backend, error) {
	switch cfg.Type {
	case "sqlite":
		return sqlite.New(cfg.Sqlite.Path)
	case "memory":
		return memory.New(cfg.Memory.OutputDir), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
