package db

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// SaveProfile stores a parsed profile for a user. Returns false when the
// write did not happen; the caller's flow continues either way.
func (db *DB) SaveProfile(ctx context.Context, userID string, profile *types.ResumeProfile) bool {
	payload, err := json.Marshal(profile)
	if err != nil {
		log.Printf("db: failed to marshal profile for user %s: %v", userID, err)
		return false
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, profile) VALUES ($1, $2)`,
		userID, payload,
	)
	if err != nil {
		log.Printf("db: failed to save profile for user %s: %v", userID, err)
		return false
	}
	return true
}
