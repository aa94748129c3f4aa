// Package storage opens the repositories selected by configuration.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shark/internal/config"
	"shark/internal/repository"
	"shark/internal/repository/jsonfile"
	"shark/internal/repository/memory"
	"shark/internal/repository/postgres"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const migrationsURL = "file://migrations"

// Connection retry policy for the postgres driver
var (
	maxRetries = 30
	retryDelay = 2 * time.Second
)

// Stores bundles the repositories of one storage driver
type Stores struct {
	Words   repository.WordRepository
	Archive repository.ArchiveRepository
	Users   repository.UserRepository

	db *sql.DB
}

// Open builds the repositories for cfg.Storage.Driver.
// The file driver keeps bot users in memory.
func Open(cfg *config.Config, logger *zap.Logger) (*Stores, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		logger.Info("Using file storage",
			zap.String("repository", cfg.Storage.RepositoryPath),
			zap.String("archive", cfg.Storage.ArchivePath),
		)
		return &Stores{
			Words:   jsonfile.NewWordRepo(cfg.Storage.RepositoryPath, logger),
			Archive: jsonfile.NewArchiveRepo(cfg.Storage.ArchivePath, logger),
			Users:   memory.NewUserRepo(),
		}, nil

	case config.DriverPostgres:
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection established")

		if err := runMigrations(db, logger); err != nil {
			db.Close()
			return nil, err
		}

		return &Stores{
			Words:   postgres.NewWordRepo(db, logger),
			Archive: postgres.NewArchiveRepo(db, logger),
			Users:   postgres.NewUserRepo(db),
			db:      db,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// Close releases the database connection, if any
func (s *Stores) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations applies pending migrations from ./migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}
	return nil
}
