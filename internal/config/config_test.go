package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configDir(t *testing.T, body string) string {
	t.Helper()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	if body != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(body), 0o644))
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	require.NoError(t, Load(configDir(t, "")))

	text := map[string]string{
		"logLevel":          "info",
		"logsDir":           "./carrierlogs",
		"sessionName":       "carrier-ops",
		"storage.type":      "memory",
		"db.host":           "localhost",
		"db.port":           "5432",
		"db.database":       "carrierops",
		"influx.bucket":     "carrier-commands",
		"influx.backupPath": "./journals/influx_backup.lp.gz",
		"graylog.address":   "localhost:12201",
	}
	for key, want := range text {
		assert.Equal(t, want, GetString(key), key)
	}

	durations := map[string]time.Duration{
		"linePause":             100 * time.Millisecond,
		"clockTick":             100 * time.Millisecond,
		"storage.flushInterval": 2 * time.Second,
	}
	for key, want := range durations {
		assert.Equal(t, want, GetDuration(key), key)
	}

	assert.False(t, GetBool("influx.enabled"))
	assert.False(t, GetBool("graylog.enabled"))
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := configDir(t, `{
		"logLevel": "debug",
		"clockTick": "1s",
		"db": { "host": "deck.local", "port": "6543" },
		"influx": { "enabled": true }
	}`)
	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", GetString("logLevel"))
	assert.Equal(t, time.Second, GetDuration("clockTick"))
	assert.Equal(t, "deck.local", GetString("db.host"))
	assert.Equal(t, 6543, GetInt("db.port"))
	assert.True(t, GetBool("influx.enabled"))
	// untouched keys keep their defaults
	assert.Equal(t, "postgres", GetString("db.username"))
}

func TestLoad_MalformedFile(t *testing.T) {
	err := Load(configDir(t, `{ "logLevel": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestGetStorageConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
		want StorageConfig
	}{
		{
			name: "defaults",
			want: StorageConfig{
				Type:          "memory",
				FlushInterval: 2 * time.Second,
				Memory:        MemoryConfig{OutputDir: "./journals", CompressOutput: true},
				SQLite:        SQLiteConfig{DumpPath: "./journals/carrierctl.db", DumpInterval: 30 * time.Second},
			},
		},
		{
			name: "sqlite with plain json export",
			body: `{
				"storage": {
					"type": "sqlite",
					"flushInterval": "500ms",
					"memory": { "outputDir": "/var/journal", "compressOutput": false },
					"sqlite": { "dumpPath": "/var/journal/ops.db", "dumpInterval": "10m" }
				}
			}`,
			want: StorageConfig{
				Type:          "sqlite",
				FlushInterval: 500 * time.Millisecond,
				Memory:        MemoryConfig{OutputDir: "/var/journal"},
				SQLite:        SQLiteConfig{DumpPath: "/var/journal/ops.db", DumpInterval: 10 * time.Minute},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, Load(configDir(t, tt.body)))
			assert.Equal(t, tt.want, GetStorageConfig())
		})
	}
}
