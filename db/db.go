package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Backend identifies which database driver a connection uses
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// Conn bundles an open database handle with the information the storage
// layer needs to pick the matching adapter.
type Conn struct {
	DB      *sql.DB
	Backend Backend
	// ConnStr is the Postgres connection string, needed to open the
	// dedicated LISTEN connection. Empty for SQLite.
	ConnStr string
}

// Open opens the content database from environment variables.
// DATABASE_URL selects Postgres; otherwise an embedded SQLite file at
// CONTENT_DB_PATH (default "data/content.db") is used.
func Open() (*Conn, error) {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		return openPostgres(connStr)
	}

	path := os.Getenv("CONTENT_DB_PATH")
	if path == "" {
		path = "data/content.db"
	}
	return openSQLite(path)
}

func openPostgres(connStr string) (*Conn, error) {
	database, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := database.PingContext(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✓ Postgres connection established successfully")
	return &Conn{DB: database, Backend: BackendPostgres, ConnStr: connStr}, nil
}

func openSQLite(path string) (*Conn, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database file %s: %w", path, err)
	}

	// WAL keeps readers unblocked during admin saves; busy_timeout covers
	// the brochure/import paths writing concurrently with the poller.
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := database.Exec(pragma); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := database.PingContext(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✓ SQLite database opened at %s", path)
	return &Conn{DB: database, Backend: BackendSQLite}, nil
}

// Close closes the database handle
func (c *Conn) Close() error {
	if c != nil && c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
