// Package db provides PostgreSQL persistence for parsed profiles and alert
// subscriptions. Persistence is a best-effort collaborator: save operations
// report success as a bool, and a false return never aborts the calling flow.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// AlertSubscription is one stored alert preference row.
type AlertSubscription struct {
	UserID    string
	Keywords  string
	Frequency string
}

// Store is the persistence collaborator. SaveProfile and
// SaveAlertPreferences return whether the write was persisted; callers treat
// false as "continue without persistence".
type Store interface {
	SaveProfile(ctx context.Context, userID string, profile *types.ResumeProfile) bool
	SaveAlertPreferences(ctx context.Context, userID, keywords, frequency string) bool
	ListAlertSubscriptions(ctx context.Context) ([]AlertSubscription, error)
	SaveJobPosting(ctx context.Context, posting *types.JobPosting) bool
	ListRecentJobPostings(ctx context.Context, since time.Duration) ([]types.JobPosting, error)
	Close()
}

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the tables the store needs if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS profiles (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			profile JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS alert_subscriptions (
			user_id TEXT PRIMARY KEY,
			keywords TEXT NOT NULL,
			frequency TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS job_postings (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			source_url TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
