package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// SaveAlertPreferences upserts a user's alert subscription. Returns false
// when the write did not happen.
func (db *DB) SaveAlertPreferences(ctx context.Context, userID, keywords, frequency string) bool {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO alert_subscriptions (user_id, keywords, frequency)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET keywords = $2, frequency = $3, updated_at = NOW()`,
		userID, keywords, frequency,
	)
	if err != nil {
		log.Printf("db: failed to save alert preferences for user %s: %v", userID, err)
		return false
	}
	return true
}

// ListAlertSubscriptions returns all stored alert subscriptions.
func (db *DB) ListAlertSubscriptions(ctx context.Context) ([]AlertSubscription, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT user_id, keywords, frequency FROM alert_subscriptions ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list alert subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []AlertSubscription
	for rows.Next() {
		var sub AlertSubscription
		if err := rows.Scan(&sub.UserID, &sub.Keywords, &sub.Frequency); err != nil {
			return nil, fmt.Errorf("failed to scan alert subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// SaveJobPosting stores a discovered job posting, ignoring duplicates by
// source URL. Returns false when the write did not happen.
func (db *DB) SaveJobPosting(ctx context.Context, posting *types.JobPosting) bool {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO job_postings (title, company, source_url, description)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (source_url) DO NOTHING`,
		posting.Title, posting.Company, posting.SourceURL, posting.Description,
	)
	if err != nil {
		log.Printf("db: failed to save job posting %s: %v", posting.SourceURL, err)
		return false
	}
	return true
}

// ListRecentJobPostings returns postings discovered within the given window.
func (db *DB) ListRecentJobPostings(ctx context.Context, since time.Duration) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT title, company, source_url, description FROM job_postings
		 WHERE created_at >= NOW() - $1::interval
		 ORDER BY created_at DESC`,
		fmt.Sprintf("%d seconds", int(since.Seconds())),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var postings []types.JobPosting
	for rows.Next() {
		var p types.JobPosting
		if err := rows.Scan(&p.Title, &p.Company, &p.SourceURL, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}
