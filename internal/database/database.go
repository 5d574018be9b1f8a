package database

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/carrierops/interpreter/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnreachable marks a journal server that could not be opened or pinged.
// Callers fall back to a local journal on it.
var ErrUnreachable = errors.New("journal database unreachable")

const (
	inMemoryDSN     = "file::memory:?cache=shared"
	maxJournalConns = 10
)

// journal rows are append-only and tiny, so durability is traded for speed
var sqlitePragmas = []string{
	"PRAGMA user_version = 1;",
	"PRAGMA journal_mode = MEMORY;",
	"PRAGMA synchronous = OFF;",
	"PRAGMA cache_size = -32000;",
	"PRAGMA temp_store = MEMORY;",
}

// Manager owns the connection to the remote journal database.
type Manager struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

func NewManager(log zerolog.Logger) *Manager {
	return &Manager{Logger: log}
}

// Connect opens and pings Postgres using the db.* settings. Any failure is
// wrapped in ErrUnreachable.
func (m *Manager) Connect() error {
	host := viper.GetString("db.host")
	m.Logger.Debug().Str("host", host).Msg("Opening journal database")

	db, err := OpenPostgres(PostgresDSN())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	sqlDB.SetMaxOpenConns(maxJournalConns)

	m.DB = db
	m.Logger.Info().Str("host", host).Msg("Journal database connected")
	return nil
}

// PostgresDSN builds the connection string from the db.* settings.
func PostgresDSN() string {
	return fmt.Sprintf(`host=%s port=%s user=%s password=%s dbname=%s sslmode=disable`,
		viper.GetString("db.host"),
		viper.GetString("db.port"),
		viper.GetString("db.username"),
		viper.GetString("db.password"),
		viper.GetString("db.database"),
	)
}

// OpenPostgres opens a lazily-connected Postgres handle.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), gormConfig(1000))
}

// OpenSqlite opens the SQLite journal at path, or a shared in-memory one
// when path is empty.
func OpenSqlite(path string) (*gorm.DB, error) {
	dsn := path
	if dsn == "" {
		dsn = inMemoryDSN
	}
	cfg := gormConfig(500)
	cfg.PrepareStmt = true

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}
	for _, pragma := range sqlitePragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("setting %q: %w", pragma, err)
		}
	}
	return db, nil
}

func gormConfig(batch int) *gorm.Config {
	return &gorm.Config{
		SkipDefaultTransaction: true,
		CreateBatchSize:        batch,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}
}

// Migrate creates or updates the session, command and rejection tables.
// Postgres also gets PostGIS for the position column.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS postgis;`).Error; err != nil {
			return fmt.Errorf("failed to create PostGIS extension: %w", err)
		}
	}
	if err := db.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// VacuumInto copies db into a standalone SQLite file at path, replacing any
// file already there. It returns how long the copy took.
func VacuumInto(db *gorm.DB, path string) (time.Duration, error) {
	if path == "" {
		return 0, errors.New("journal dump path not set")
	}
	// VACUUM INTO refuses to overwrite
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("removing previous dump: %w", err)
	}

	start := time.Now()
	if err := db.Exec("VACUUM INTO 'file:" + path + "';").Error; err != nil {
		return 0, fmt.Errorf("dumping journal to %s: %w", path, err)
	}
	return time.Since(start), nil
}
