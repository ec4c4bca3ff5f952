// Package store contains the persistence layer: the database connection
// wrapper and the repositories for users, sessions, documents, and
// comments. It is the sole source of truth for "is this token currently
// valid" and the single synchronization point for shared mutable state.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/aidocs/doc-browser/internal/config"
	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/migrations"
)

// DB wraps *sql.DB together with the name of the driver it was opened
// with, so migrations and error classification can stay driver-aware.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewConnect opens the database described by cfg.DatabaseURL.
//
// A "postgres://" or "postgresql://" URL selects the pgx driver; any
// other value is treated as a SQLite file path (created on first run).
// The connection is pinged before being returned.
func NewConnect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	driver, dsn := driverForDSN(cfg.DatabaseURL)

	if driver == "sqlite3" {
		if err := createLocalDBFileIfNotExists(cfg.DatabaseURL); err != nil {
			log.Err(err).Str("func", "NewConnect").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", driver).Msg("connected to database successfully")

	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	return db, nil
}

// Migrate applies all pending schema migrations for the active driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// driverForDSN maps a DATABASE_URL value to a registered driver name and
// the DSN to open it with. SQLite DSNs get foreign keys enabled so the
// ON DELETE CASCADE rules on comments actually fire.
func driverForDSN(databaseURL string) (driver, dsn string) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return "pgx", databaseURL
	}

	dsn = databaseURL
	if !strings.Contains(dsn, "_foreign_keys") {
		if strings.Contains(dsn, "?") {
			dsn += "&_foreign_keys=on"
		} else {
			dsn += "?_foreign_keys=on"
		}
	}

	return "sqlite3", dsn
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
