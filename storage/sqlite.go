package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS content_sections (
	key        TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteAdapter persists content in an embedded SQLite file — the
// default backend when no DATABASE_URL is configured. SQLite has no
// notification primitive, so Watch polls updated_at; writes from another
// process sharing the file surface within one poll interval.
type SQLiteAdapter struct {
	db           *sql.DB
	pollInterval time.Duration
}

// NewSQLiteAdapter creates the adapter and ensures the schema exists
func NewSQLiteAdapter(db *sql.DB) (*SQLiteAdapter, error) {
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to create content_sections table: %w", err)
	}
	return &SQLiteAdapter{db: db, pollInterval: 2 * time.Second}, nil
}

// Ensure SQLiteAdapter implements Adapter
var _ Adapter = (*SQLiteAdapter)(nil)

// Load reads the blob for key, returning nil if the key is absent
func (s *SQLiteAdapter) Load(ctx context.Context, key string) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM content_sections WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load key %s: %w", key, err)
	}
	return []byte(data), nil
}

// Save upserts the blob under key
func (s *SQLiteAdapter) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO content_sections (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save key %s: %w", key, err)
	}
	return nil
}

// Watch polls for rows whose updated_at moved past the last observed
// watermark and emits their keys. Our own writes are reported too; the
// store tolerates the redundant refresh.
func (s *SQLiteAdapter) Watch(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 16)
	since := time.Now().UnixMilli()

	go func() {
		defer close(ch)
		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			rows, err := s.db.QueryContext(ctx,
				`SELECT key, updated_at FROM content_sections WHERE updated_at > ?`, since)
			if err != nil {
				if ctx.Err() == nil {
					log.Printf("⚠️  content poll failed: %v", err)
				}
				continue
			}

			var changed []string
			for rows.Next() {
				var key string
				var ts int64
				if err := rows.Scan(&key, &ts); err != nil {
					continue
				}
				changed = append(changed, key)
				if ts > since {
					since = ts
				}
			}
			rows.Close()

			for _, key := range changed {
				select {
				case ch <- key:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Close is a no-op: the *sql.DB is owned by the caller
func (s *SQLiteAdapter) Close() error {
	return nil
}
