// internal/storage/storage_test.go
package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/carrierops/interpreter/internal/config"
	"github.com/carrierops/interpreter/internal/storage"
	gormstorage "github.com/carrierops/interpreter/internal/storage/gorm"
	"github.com/carrierops/interpreter/internal/storage/memory"
	sqlitestorage "github.com/carrierops/interpreter/internal/storage/sqlite"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ storage.Backend    = (*memory.Backend)(nil)
	_ storage.Exportable = (*memory.Backend)(nil)
	_ storage.Backend    = (*gormstorage.Backend)(nil)
	_ storage.Backend    = (*sqlitestorage.Backend)(nil)
	_ storage.Exportable = (*sqlitestorage.Backend)(nil)
)

func TestNewBackend(t *testing.T) {
	deps := storage.Dependencies{Fs: afero.NewMemMapFs()}

	tests := []struct {
		name    string
		cfg     config.StorageConfig
		check   func(t *testing.T, b storage.Backend)
		wantErr bool
	}{
		{
			name: "memory",
			cfg:  config.StorageConfig{Type: "memory", Memory: config.MemoryConfig{OutputDir: "/out"}},
			check: func(t *testing.T, b storage.Backend) {
				assert.IsType(t, &memory.Backend{}, b)
			},
		},
		{
			name: "empty type defaults to memory",
			cfg:  config.StorageConfig{},
			check: func(t *testing.T, b storage.Backend) {
				assert.IsType(t, &memory.Backend{}, b)
			},
		},
		{
			name: "sqlite",
			cfg: config.StorageConfig{
				Type:          "sqlite",
				FlushInterval: time.Second,
				SQLite:        config.SQLiteConfig{DumpPath: filepath.Join(t.TempDir(), "j.db")},
			},
			check: func(t *testing.T, b storage.Backend) {
				assert.IsType(t, &sqlitestorage.Backend{}, b)
			},
		},
		{
			name:    "unknown",
			cfg:     config.StorageConfig{Type: "cassette"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := storage.NewBackend(tt.cfg, deps)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, b)
		})
	}
}

func TestNewBackend_PostgresFallsBackToSqlite(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("db.host", "127.0.0.1")
	viper.Set("db.port", "1")

	b, err := storage.NewBackend(config.StorageConfig{
		Type:          "postgres",
		FlushInterval: time.Second,
		SQLite:        config.SQLiteConfig{DumpPath: filepath.Join(t.TempDir(), "fallback.db")},
	}, storage.Dependencies{Fs: afero.NewMemMapFs(), Logger: zerolog.Nop()})
	require.NoError(t, err)
	assert.IsType(t, &sqlitestorage.Backend{}, b)
}
