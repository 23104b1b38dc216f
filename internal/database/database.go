// Package database contains the logic for opening and preparing
// the SQLite store.
//
// It handles:
//   - creating/opening the database file at the configured path
//   - applying the pragmas the service relies on (WAL, busy timeout)
//   - running idempotent schema migrations before requests are served
//   - loading optional seed data into an empty store
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/campushub/items-api/internal/config"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// Database wraps the SQLite connection handle and a logger.
// It provides a simple object you can pass around the app.
type Database struct {
	DB  *sql.DB
	log *zerolog.Logger
}

// DatabasePingTimeout is the number of seconds to wait for the startup
// ping before considering the database unreachable.
const DatabasePingTimeout = 10

// New creates or opens the SQLite database at the configured path.
//
// The connection is configured with:
//   - WAL mode, so readers are not blocked during writes
//   - NORMAL synchronous mode
//   - the configured busy timeout, which bounds how long an operation
//     waits for the database lock before failing
//   - foreign key enforcement
//
// SQLite supports a single writer at a time, so the pool is capped at one
// connection; every store operation is serialized at that boundary.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db, cfg.Database.BusyTimeoutMS); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info().Str("path", cfg.Database.Path).Msg("connected to the database")

	return &Database{
		DB:  db,
		log: logger,
	}, nil
}

// applyPragmas sets the required SQLite configuration on the connection.
func applyPragmas(db *sql.DB, busyTimeoutMS int) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeoutMS),
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// Close closes the database connection.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection")
	return db.DB.Close()
}
