// Package ledger keeps the append-only trail of matching rule executions and derives
// per-rule statistics from it.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/autocat/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// defaults for statistics and listing
const (
	DefaultStatsWindow      = 100
	DefaultRecentExecutions = 10
	DefaultSuccessThreshold = 0.5
	DefaultRetentionDays    = 30
	DefaultListLimit        = 50
	MaxListLimit            = 500
)

// Store is the persistence the ledger works on
type Store interface {
	AddEntries(ctx context.Context, entries []domain.LedgerEntry) error
	RecentEntries(ctx context.Context, ruleID string, limit int) ([]domain.LedgerEntry, error)
	ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Params configures the ledger, zero values fall back to defaults
type Params struct {
	StatsWindow      int     // number of newest entries statistics are computed over
	RecentExecutions int     // number of newest entries returned with statistics
	SuccessThreshold float64 // entries with confidence above it count as successful
}

// Ledger records execution results and reports on them
type Ledger struct {
	store Store
	Params
	now func() time.Time
}

// New makes a ledger on top of the store
func New(store Store, params Params) *Ledger {
	if params.StatsWindow <= 0 {
		params.StatsWindow = DefaultStatsWindow
	}
	if params.RecentExecutions <= 0 {
		params.RecentExecutions = DefaultRecentExecutions
	}
	if params.SuccessThreshold <= 0 {
		params.SuccessThreshold = DefaultSuccessThreshold
	}
	return &Ledger{store: store, Params: params, now: time.Now}
}

// Record appends matching results to the ledger, non-matching results are not kept
func (l *Ledger) Record(ctx context.Context, results []domain.ExecutionResult) error {
	entries := make([]domain.LedgerEntry, 0, len(results))
	for _, r := range results {
		if !r.Matched {
			continue
		}
		ts := r.EvaluatedAt
		if ts.IsZero() {
			ts = l.now()
		}
		entries = append(entries, domain.LedgerEntry{
			RuleID:     r.RuleID,
			ContentID:  r.ContentID,
			Result:     r,
			Confidence: r.Confidence,
			CreatedAt:  ts,
		})
	}
	if len(entries) == 0 {
		return nil
	}
	if err := l.store.AddEntries(ctx, entries); err != nil {
		return fmt.Errorf("record %d results: %w", len(entries), err)
	}
	return nil
}

// Statistics aggregates the newest entries of a rule. The rule itself is not looked up,
// an unknown rule has empty statistics.
func (l *Ledger) Statistics(ctx context.Context, ruleID string) (domain.RuleStats, error) {
	entries, err := l.store.RecentEntries(ctx, ruleID, l.StatsWindow)
	if err != nil {
		return domain.RuleStats{}, fmt.Errorf("statistics for rule %s: %w", ruleID, err)
	}

	res := domain.RuleStats{RuleID: ruleID, TotalExecutions: len(entries), RecentExecutions: []domain.LedgerEntry{}}
	if len(entries) == 0 {
		return res, nil
	}

	var sum float64
	for _, e := range entries {
		sum += e.Confidence
		if e.Confidence > l.SuccessThreshold {
			res.SuccessfulExecutions++
		}
	}
	res.SuccessRate = float64(res.SuccessfulExecutions) / float64(res.TotalExecutions)
	res.AverageConfidence = sum / float64(res.TotalExecutions)
	res.RecentExecutions = entries[:min(len(entries), l.RecentExecutions)]
	return res, nil
}

// Entries lists ledger entries newest first. Limit defaults to 50 and is capped at 500.
func (l *Ledger) Entries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	if filter.Offset < 0 || filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit and offset must not be negative", domain.ErrValidation)
	}
	if filter.MinConfidence < 0 || filter.MinConfidence > 1 {
		return nil, fmt.Errorf("%w: min confidence must be between 0 and 1", domain.ErrValidation)
	}
	if !filter.Since.IsZero() && !filter.Until.IsZero() && !filter.Since.Before(filter.Until) {
		return nil, fmt.Errorf("%w: since must be before until", domain.ErrValidation)
	}

	switch {
	case filter.Limit == 0:
		filter.Limit = DefaultListLimit
	case filter.Limit > MaxListLimit:
		filter.Limit = MaxListLimit
	}

	res, err := l.store.ListEntries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	return res, nil
}

// Cleanup deletes entries older than daysToKeep days, 30 when not positive.
// It is best-effort: failures are logged and reported as zero deletions.
func (l *Ledger) Cleanup(ctx context.Context, daysToKeep int) int64 {
	if daysToKeep <= 0 {
		daysToKeep = DefaultRetentionDays
	}
	cutoff := l.now().Add(-time.Duration(daysToKeep) * 24 * time.Hour)
	deleted, err := l.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		lgr.Printf("[WARN] ledger cleanup older than %d days failed: %v", daysToKeep, err)
		return 0
	}
	if deleted > 0 {
		lgr.Printf("[INFO] ledger cleanup removed %d entries older than %d days", deleted, daysToKeep)
	}
	return deleted
}
