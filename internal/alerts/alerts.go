// Package alerts implements the job-opening alert engine: it matches stored
// subscriptions against recently discovered postings, scores the matches with
// the optimization report, and emails each subscriber a digest of their top
// opportunities.
package alerts

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/db"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/extraction"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/llm"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// maxJobsPerDigest caps how many postings one digest email carries.
const maxJobsPerDigest = 3

// scoreConcurrency bounds parallel scoring calls per sweep.
const scoreConcurrency = 4

// Engine runs alert sweeps over stored subscriptions.
type Engine struct {
	store     db.Store
	extractor *extraction.Extractor
	mailer    Mailer
}

// New creates an alert engine.
func New(store db.Store, client llm.Client, mailer Mailer) *Engine {
	return &Engine{store: store, extractor: extraction.New(client), mailer: mailer}
}

// Run sweeps on the given interval until the context is cancelled.
func (e *Engine) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := e.RunOnce(ctx); err != nil {
			log.Printf("alerts: sweep failed: %v", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunOnce performs one sweep: every subscription is matched against the
// postings inside its frequency window and, when matches exist, emailed a
// digest. A failed delivery or score is logged and skipped, never fatal.
func (e *Engine) RunOnce(ctx context.Context) error {
	subs, err := e.store.ListAlertSubscriptions(ctx)
	if err != nil {
		return err
	}

	for _, sub := range subs {
		postings, err := e.store.ListRecentJobPostings(ctx, FrequencyWindow(sub.Frequency))
		if err != nil {
			return err
		}

		matched := MatchPostings(sub.Keywords, postings)
		if len(matched) == 0 {
			continue
		}

		scored := e.scorePostings(ctx, sub, matched)
		if len(scored) == 0 {
			continue
		}

		body, err := FormatJobsEmail(sub.Keywords, scored)
		if err != nil {
			log.Printf("alerts: failed to format digest for %s: %v", sub.UserID, err)
			continue
		}
		// The user id doubles as the delivery address.
		if !e.mailer.Send(ctx, sub.UserID, "Your job matches from PortfolioAI", body) {
			log.Printf("alerts: digest for %s was not delivered", sub.UserID)
		}
	}
	return nil
}

// FrequencyWindow maps a digest frequency to its posting lookback window.
func FrequencyWindow(frequency string) time.Duration {
	switch frequency {
	case types.FrequencyDaily:
		return 24 * time.Hour
	case types.FrequencyBiweekly:
		return 14 * 24 * time.Hour
	case types.FrequencyMonthly:
		return 30 * 24 * time.Hour
	default:
		return 7 * 24 * time.Hour
	}
}

// MatchPostings returns the postings whose title or description contains any
// of the comma-separated keywords, case-insensitively.
func MatchPostings(keywords string, postings []types.JobPosting) []types.JobPosting {
	var terms []string
	for _, term := range strings.Split(keywords, ",") {
		if term = strings.ToLower(strings.TrimSpace(term)); term != "" {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return nil
	}

	var matched []types.JobPosting
	for _, posting := range postings {
		haystack := strings.ToLower(posting.Title + "\n" + posting.Description)
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				matched = append(matched, posting)
				break
			}
		}
	}
	return matched
}

// scorePostings scores matched postings against the subscriber's keyword
// interests and keeps the highest-scoring few. Postings whose scoring call
// fails are dropped from the digest.
func (e *Engine) scorePostings(ctx context.Context, sub db.AlertSubscription, postings []types.JobPosting) []types.ScoredJob {
	// The subscription stores interests, not a full resume, so score against
	// a minimal profile built from them.
	profile := &types.ResumeProfile{
		Name:    sub.UserID,
		Email:   sub.UserID,
		Summary: "Job seeker interested in: " + sub.Keywords,
		Skills:  strings.Split(sub.Keywords, ","),
	}

	var (
		mu     sync.Mutex
		scored []types.ScoredJob
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scoreConcurrency)
	for _, posting := range postings {
		g.Go(func() error {
			report, err := e.extractor.GenerateReport(gctx, profile, posting.Description)
			if err != nil {
				log.Printf("alerts: failed to score %s: %v", posting.SourceURL, err)
				return nil
			}
			fitReason := ""
			if len(report.Suggestions) > 0 {
				fitReason = report.Suggestions[0]
			}
			mu.Lock()
			scored = append(scored, types.ScoredJob{
				Title:      posting.Title,
				Company:    posting.Company,
				SourceURL:  posting.SourceURL,
				MatchScore: report.MatchScore,
				FitReason:  fitReason,
			})
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(scored, func(i, j int) bool { return scored[i].MatchScore > scored[j].MatchScore })
	if len(scored) > maxJobsPerDigest {
		scored = scored[:maxJobsPerDigest]
	}
	return scored
}
