// internal/storage/factory.go
package storage

import (
	"errors"
	"fmt"

	"github.com/carrierops/interpreter/internal/config"
	"github.com/carrierops/interpreter/internal/database"
	"github.com/carrierops/interpreter/internal/logging"
	gormstorage "github.com/carrierops/interpreter/internal/storage/gorm"
	"github.com/carrierops/interpreter/internal/storage/memory"
	sqlitestorage "github.com/carrierops/interpreter/internal/storage/sqlite"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Dependencies are the shared services a journal backend may need.
type Dependencies struct {
	Fs         afero.Fs
	LogManager *logging.SlogManager
	Logger     zerolog.Logger
}

// NewBackend creates a storage backend based on configuration
func NewBackend(cfg config.StorageConfig, deps Dependencies) (Backend, error) {
	switch cfg.Type {
	case "postgres":
		return newPostgres(cfg, deps)
	case "sqlite":
		return sqlitestorage.New(cfg.SQLite, cfg.FlushInterval, deps.LogManager)
	case "memory", "":
		return memory.New(cfg.Memory, deps.Fs), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// newPostgres connects to Postgres and falls back to the SQLite backend when
// the server is unreachable.
func newPostgres(cfg config.StorageConfig, deps Dependencies) (Backend, error) {
	m := database.NewManager(deps.Logger)
	if err := m.Connect(); err != nil {
		if !errors.Is(err, database.ErrUnreachable) {
			return nil, err
		}
		deps.Logger.Warn().Err(err).Str("dumpPath", cfg.SQLite.DumpPath).Msg("Journal falls back to SQLite")
		return sqlitestorage.New(cfg.SQLite, cfg.FlushInterval, deps.LogManager)
	}
	return gormstorage.New(gormstorage.Dependencies{
		DB:            m.DB,
		LogManager:    deps.LogManager,
		FlushInterval: cfg.FlushInterval,
	}), nil
}
