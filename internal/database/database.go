package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/killallgit/planner-api/internal/logging"
	"github.com/killallgit/planner-api/internal/models"
	"github.com/killallgit/planner-api/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
}

// Initialize opens a sqlite database at dbPath
func Initialize(dbPath string, verbose bool) (*DB, error) {
	return Open(config.DatabaseConfig{
		Driver:            "sqlite",
		Path:              dbPath,
		EnableForeignKeys: true,
		LogQueries:        verbose,
	})
}

// Open creates a database connection for the configured driver
func Open(cfg config.DatabaseConfig) (*DB, error) {
	logLevel := logger.Error
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", "sqlite":
		dsn, err := sqliteDSN(cfg)
		if err != nil {
			return nil, err
		}
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	maxOpen := cfg.MaxConnections
	if maxOpen <= 0 {
		maxOpen = 10
	}
	maxIdle := cfg.MaxIdleConnections
	if maxIdle <= 0 {
		maxIdle = 5
	}
	lifetime := cfg.ConnectionMaxLifetime
	if lifetime <= 0 {
		lifetime = time.Hour
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)

	return &DB{DB: db}, nil
}

// sqliteDSN builds a mattn/go-sqlite3 DSN with pragmas applied per connection
func sqliteDSN(cfg config.DatabaseConfig) (string, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		dir := filepath.Dir(path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return "", fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	var params []string
	if cfg.EnableForeignKeys {
		params = append(params, "_foreign_keys=on")
	}
	if cfg.EnableWAL && path != ":memory:" {
		params = append(params, "_journal_mode=WAL")
	}
	params = append(params, "_busy_timeout=5000")

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&"), nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(models ...any) error {
	if err := db.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	logging.WithComponent("database").WithField("models", len(models)).Info("migration complete")
	return nil
}

// Migrate creates or updates every application table
func (db *DB) Migrate() error {
	return db.AutoMigrate(models.All()...)
}

// DefaultExerciseName names the exercise seeded for clips cut without an explicit target
const DefaultExerciseName = "Unassigned clips"

// SeedDefaultExercise creates the exercise with the given id when it is missing,
// so clips that fall back to it always reference an existing row.
// It reports whether a row was created.
func (db *DB) SeedDefaultExercise(id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}

	var count int64
	if err := db.Model(&models.Exercise{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up default exercise: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	exercise := models.Exercise{ID: id, Name: DefaultExerciseName}
	if err := db.Create(&exercise).Error; err != nil {
		return false, fmt.Errorf("failed to seed default exercise: %w", err)
	}

	// an explicit id does not advance the postgres sequence
	if db.Dialector.Name() == "postgres" {
		err := db.Exec(`SELECT setval(pg_get_serial_sequence('exercises', 'id'), (SELECT MAX(id) FROM exercises))`).Error
		if err != nil {
			return true, fmt.Errorf("failed to advance exercise sequence: %w", err)
		}
	}
	return true, nil
}

// PendingTables lists application tables that do not exist yet
func (db *DB) PendingTables() []string {
	var pending []string
	migrator := db.DB.Migrator()
	for _, m := range models.All() {
		if !migrator.HasTable(m) {
			if tabler, ok := m.(interface{ TableName() string }); ok {
				pending = append(pending, tabler.TableName())
			}
		}
	}
	return pending
}
