package db

import (
	"context"
	"time"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// Disabled is the Store used when no database is configured. Every save
// reports false and every read is empty, so features that persist degrade
// instead of failing.
type Disabled struct{}

func (Disabled) SaveProfile(context.Context, string, *types.ResumeProfile) bool { return false }

func (Disabled) SaveAlertPreferences(context.Context, string, string, string) bool { return false }

func (Disabled) ListAlertSubscriptions(context.Context) ([]AlertSubscription, error) {
	return nil, nil
}

func (Disabled) SaveJobPosting(context.Context, *types.JobPosting) bool { return false }

func (Disabled) ListRecentJobPostings(context.Context, time.Duration) ([]types.JobPosting, error) {
	return nil, nil
}

func (Disabled) Close() {}
