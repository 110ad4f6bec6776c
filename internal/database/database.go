package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bankist/internal/config"
	"bankist/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.StorageConfig
}

// New opens the configured gorm driver without waiting for the server.
// The memory driver has no database and is rejected here.
func New(cfg *config.StorageConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.StorageDriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.StorageDriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("%w: %q has no database", config.ErrUnknownStorageDriver, cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.Account{})
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Initialize opens the database and migrates the schema
func Initialize(cfg *config.Config, log *slog.Logger) (*DB, error) {
	db, err := New(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := NewReadinessWaiter(sqlDB, log).WaitForDatabase(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := db.AutoMigrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if cfg.Storage.Driver == config.StorageDriverSQLite {
		log.Info("Database initialized successfully", "driver", cfg.Storage.Driver, "path", cfg.Storage.SQLitePath)
	} else {
		log.Info("Database initialized successfully", "driver", cfg.Storage.Driver, "host", cfg.Storage.Host, "name", cfg.Storage.Name)
	}

	return db, nil
}
