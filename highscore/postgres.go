package highscore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgresStore keeps the score in a single-row table.
type PostgresStore struct {
	db    *sql.DB
	table string // Quoted identifier
}

// NewPostgresStore wraps an open handle and creates the table if needed.
func NewPostgresStore(ctx context.Context, db *sql.DB, table string) (*PostgresStore, error) {
	s := &PostgresStore{db: db, table: pq.QuoteIdentifier(table)}
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+s.table+` (
			id         INTEGER PRIMARY KEY,
			kills      INTEGER NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, fmt.Errorf("creating high score table: %w", err)
	}
	return s, nil
}

// OpenPostgres connects with a DSN such as os.Getenv("DATABASE_URL").
func OpenPostgres(ctx context.Context, dsn, table string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	s, err := NewPostgresStore(ctx, db, table)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Load implements Store.
func (s *PostgresStore) Load(ctx context.Context) (int, error) {
	var kills int
	err := s.db.QueryRowContext(ctx, `SELECT kills FROM `+s.table+` WHERE id = 1`).Scan(&kills)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("loading high score: %w", err)
	}
	return kills, nil
}

// Save implements Store.
func (s *PostgresStore) Save(ctx context.Context, kills int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO `+s.table+` (id, kills, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE
		SET kills = EXCLUDED.kills,
		    updated_at = EXCLUDED.updated_at
	`, kills)
	if err != nil {
		return fmt.Errorf("saving high score: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
