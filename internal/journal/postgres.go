package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists the click journal in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS dialog_clicks (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			message TEXT NOT NULL,
			button_label TEXT NOT NULL,
			quit BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_dialog_clicks_player_created ON dialog_clicks (player, created_at);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema failed on %q: %w", stmt, err)
		}
	}
	return nil
}

func (s *PostgresStore) RecordClick(ctx context.Context, rec ClickRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO dialog_clicks (id, player, message, button_label, quit, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID,
		rec.Player,
		rec.Message,
		rec.ButtonLabel,
		rec.Quit,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record click: %w", err)
	}
	return nil
}

func (s *PostgresStore) RecentClicks(ctx context.Context, player string, limit int) ([]ClickRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, player, message, button_label, quit, created_at
		 FROM dialog_clicks WHERE player=$1 ORDER BY created_at DESC LIMIT $2`,
		player,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent clicks: %w", err)
	}
	defer rows.Close()

	items := make([]ClickRecord, 0, limit)
	for rows.Next() {
		var r ClickRecord
		if err := rows.Scan(&r.ID, &r.Player, &r.Message, &r.ButtonLabel, &r.Quit, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan click row: %w", err)
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate click rows: %w", err)
	}

	// Reverse into chronological order.
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}

	return items, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
