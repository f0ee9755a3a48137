package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
)

// notifyChannel is the Postgres NOTIFY channel every writer fires on
// Save. Other processes LISTEN on it; this is the cross-process
// equivalent of the browser storage event.
const notifyChannel = "mumbai_homes_content"

const postgresSchema = `
CREATE TABLE IF NOT EXISTS content_sections (
	key        TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at BIGINT NOT NULL
)`

// PostgresAdapter persists one JSON blob per key in a content_sections
// table and signals other processes via LISTEN/NOTIFY.
type PostgresAdapter struct {
	db      *sql.DB
	connStr string // used to open the dedicated LISTEN connection
}

// NewPostgresAdapter creates the adapter and ensures the schema exists
func NewPostgresAdapter(db *sql.DB, connStr string) (*PostgresAdapter, error) {
	if _, err := db.Exec(postgresSchema); err != nil {
		return nil, fmt.Errorf("failed to create content_sections table: %w", err)
	}
	return &PostgresAdapter{db: db, connStr: connStr}, nil
}

// Ensure PostgresAdapter implements Adapter
var _ Adapter = (*PostgresAdapter)(nil)

// Load reads the blob for key, returning nil if the key is absent
func (p *PostgresAdapter) Load(ctx context.Context, key string) ([]byte, error) {
	var data string
	err := p.db.QueryRowContext(ctx,
		`SELECT data FROM content_sections WHERE key = $1`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load key %s: %w", key, err)
	}
	return []byte(data), nil
}

// Save upserts the blob and notifies listeners on other connections
func (p *PostgresAdapter) Save(ctx context.Context, key string, data []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO content_sections (key, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET data = $2, updated_at = $3`,
		key, string(data), time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save key %s: %w", key, err)
	}

	if _, err := p.db.ExecContext(ctx,
		`SELECT pg_notify($1, $2)`, notifyChannel, key); err != nil {
		// The write itself succeeded; a lost notification only delays
		// other processes until their next reload.
		log.Printf("⚠️  pg_notify failed for key %s: %v", key, err)
	}
	return nil
}

// Watch opens a dedicated connection, LISTENs on the notify channel and
// forwards changed keys. The goroutine reconnects on errors until ctx is
// cancelled.
func (p *PostgresAdapter) Watch(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 16)

	go func() {
		defer close(ch)
		for ctx.Err() == nil {
			if err := p.listen(ctx, ch); err != nil && ctx.Err() == nil {
				log.Printf("⚠️  content listener disconnected: %v (reconnecting)", err)
				select {
				case <-time.After(2 * time.Second):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

func (p *PostgresAdapter) listen(ctx context.Context, ch chan<- string) error {
	conn, err := pgx.Connect(ctx, p.connStr)
	if err != nil {
		return fmt.Errorf("failed to open listen connection: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, `LISTEN `+notifyChannel); err != nil {
		return fmt.Errorf("failed to LISTEN: %w", err)
	}

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		select {
		case ch <- n.Payload:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close is a no-op: the *sql.DB is owned by the caller
func (p *PostgresAdapter) Close() error {
	return nil
}
