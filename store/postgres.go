package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS command_history (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    command TEXT NOT NULL,
    result TEXT NOT NULL DEFAULT '',
    failed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresHistory stores history in a shared PostgreSQL database
type PostgresHistory struct {
	pool *pgxpool.Pool
}

// NewPostgresHistory connects to dsn and ensures the history table exists
func NewPostgresHistory(ctx context.Context, dsn string) (*PostgresHistory, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &PostgresHistory{pool: pool}, nil
}

func (s *PostgresHistory) Record(ctx context.Context, e Entry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO command_history (id, command, result, failed, created_at) VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.Command, e.Result, e.Failed, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	return nil
}

func (s *PostgresHistory) List(ctx context.Context, limit int) ([]Entry, error) {
	var bound any
	if limit > 0 {
		bound = limit
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, command, result, failed, created_at FROM command_history ORDER BY seq DESC LIMIT $1`,
		bound,
	)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var result []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Command, &e.Result, &e.Failed, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (s *PostgresHistory) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresHistory) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `TRUNCATE command_history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
