package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/autocat/pkg/domain"
	"github.com/umputun/autocat/pkg/ledger/mocks"
	"github.com/umputun/autocat/pkg/repository"
)

func setupRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })
	return repos
}

func TestLedger_CleanupScenario(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	entries := []domain.LedgerEntry{
		{RuleID: "r1", ContentID: 1, Confidence: 0.9, CreatedAt: now.Add(-31 * 24 * time.Hour),
			Result: domain.ExecutionResult{RuleID: "r1", ContentID: 1, Matched: true, Confidence: 0.9}},
		{RuleID: "r1", ContentID: 2, Confidence: 0.4, CreatedAt: now.Add(-10 * 24 * time.Hour),
			Result: domain.ExecutionResult{RuleID: "r1", ContentID: 2, Matched: true, Confidence: 0.4}},
	}
	require.NoError(t, repos.Ledger.AddEntries(ctx, entries))

	l := New(repos.Ledger, Params{})
	stats, err := l.Statistics(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalExecutions)
	assert.Equal(t, 1, stats.SuccessfulExecutions)

	assert.Equal(t, int64(1), l.Cleanup(ctx, 30))

	stats, err = l.Statistics(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalExecutions)
	assert.Equal(t, 0, stats.SuccessfulExecutions)
	assert.InDelta(t, 0.0, stats.SuccessRate, 1e-9)
	assert.InDelta(t, 0.4, stats.AverageConfidence, 1e-9)
	require.Len(t, stats.RecentExecutions, 1)
	assert.Equal(t, int64(2), stats.RecentExecutions[0].ContentID)
}

func TestLedger_Record(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	l := New(repos.Ledger, Params{})

	evaluated := time.Now().UTC().Add(-time.Minute)
	results := []domain.ExecutionResult{
		{RuleID: "r1", ContentID: 5, Matched: true, Confidence: 0.9, EvaluatedAt: evaluated,
			MatchedConditions: []domain.ClauseName{domain.ClauseKeywords}},
		{RuleID: "r2", ContentID: 5, Matched: false},
		{RuleID: "r3", ContentID: 5, Matched: true, Confidence: 0.3},
	}
	require.NoError(t, l.Record(ctx, results))

	all, err := l.Entries(ctx, domain.LedgerFilter{ContentID: 5})
	require.NoError(t, err)
	require.Len(t, all, 2, "non-matching result is not recorded")
	assert.Equal(t, "r3", all[0].RuleID, "zero evaluation time recorded as now, newest first")
	assert.Equal(t, "r1", all[1].RuleID)
	assert.WithinDuration(t, evaluated, all[1].CreatedAt, time.Millisecond)
	assert.Equal(t, []domain.ClauseName{domain.ClauseKeywords}, all[1].Result.MatchedConditions)
}

func TestLedger_RecordNothingMatched(t *testing.T) {
	store := &mocks.StoreMock{}
	l := New(store, Params{})
	require.NoError(t, l.Record(context.Background(), []domain.ExecutionResult{{RuleID: "r1"}}))
	require.NoError(t, l.Record(context.Background(), nil))
	assert.Empty(t, store.AddEntriesCalls())
}

func TestLedger_RecordFailure(t *testing.T) {
	store := &mocks.StoreMock{
		AddEntriesFunc: func(context.Context, []domain.LedgerEntry) error {
			return domain.ErrPersistence
		},
	}
	l := New(store, Params{})
	err := l.Record(context.Background(), []domain.ExecutionResult{{RuleID: "r1", Matched: true, Confidence: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestLedger_Statistics(t *testing.T) {
	entries := make([]domain.LedgerEntry, 0, 12)
	for i := range 12 {
		conf := 0.3
		if i%3 == 0 {
			conf = 0.9
		}
		entries = append(entries, domain.LedgerEntry{ID: int64(100 - i), RuleID: "r1", Confidence: conf})
	}
	store := &mocks.StoreMock{
		RecentEntriesFunc: func(_ context.Context, ruleID string, limit int) ([]domain.LedgerEntry, error) {
			return entries, nil
		},
	}

	l := New(store, Params{})
	stats, err := l.Statistics(context.Background(), "r1")
	require.NoError(t, err)

	require.Len(t, store.RecentEntriesCalls(), 1)
	assert.Equal(t, 100, store.RecentEntriesCalls()[0].Limit)
	assert.Equal(t, "r1", store.RecentEntriesCalls()[0].RuleID)

	assert.Equal(t, "r1", stats.RuleID)
	assert.Equal(t, 12, stats.TotalExecutions)
	assert.Equal(t, 4, stats.SuccessfulExecutions)
	assert.InDelta(t, 4.0/12, stats.SuccessRate, 1e-9)
	assert.InDelta(t, (4*0.9+8*0.3)/12, stats.AverageConfidence, 1e-9)
	require.Len(t, stats.RecentExecutions, 10)
	assert.Equal(t, int64(100), stats.RecentExecutions[0].ID)
}

func TestLedger_StatisticsBoundary(t *testing.T) {
	store := &mocks.StoreMock{
		RecentEntriesFunc: func(context.Context, string, int) ([]domain.LedgerEntry, error) {
			return []domain.LedgerEntry{{Confidence: 0.5}, {Confidence: 0.51}}, nil
		},
	}
	stats, err := New(store, Params{StatsWindow: 2}).Statistics(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.SuccessfulExecutions, "exactly 0.5 is not a success")
	assert.Equal(t, 2, store.RecentEntriesCalls()[0].Limit)
}

func TestLedger_StatisticsEmptyAndFailure(t *testing.T) {
	store := &mocks.StoreMock{
		RecentEntriesFunc: func(context.Context, string, int) ([]domain.LedgerEntry, error) {
			return nil, nil
		},
	}
	stats, err := New(store, Params{}).Statistics(context.Background(), "r1")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalExecutions)
	assert.Zero(t, stats.SuccessRate)
	assert.NotNil(t, stats.RecentExecutions)

	store.RecentEntriesFunc = func(context.Context, string, int) ([]domain.LedgerEntry, error) {
		return nil, domain.ErrPersistence
	}
	_, err = New(store, Params{}).Statistics(context.Background(), "r1")
	assert.ErrorIs(t, err, domain.ErrPersistence, "statistics read failure is surfaced")
}

func TestLedger_Entries(t *testing.T) {
	store := &mocks.StoreMock{
		ListEntriesFunc: func(context.Context, domain.LedgerFilter) ([]domain.LedgerEntry, error) {
			return []domain.LedgerEntry{{ID: 1}}, nil
		},
	}
	l := New(store, Params{})
	ctx := context.Background()

	res, err := l.Entries(ctx, domain.LedgerFilter{RuleID: "r1"})
	require.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, DefaultListLimit, store.ListEntriesCalls()[0].Filter.Limit)
	assert.Equal(t, "r1", store.ListEntriesCalls()[0].Filter.RuleID)

	_, err = l.Entries(ctx, domain.LedgerFilter{Limit: 10000, Offset: 20})
	require.NoError(t, err)
	assert.Equal(t, MaxListLimit, store.ListEntriesCalls()[1].Filter.Limit)
	assert.Equal(t, 20, store.ListEntriesCalls()[1].Filter.Offset)

	now := time.Now()
	bad := []domain.LedgerFilter{
		{Limit: -1},
		{Offset: -5},
		{MinConfidence: 1.5},
		{Since: now, Until: now.Add(-time.Hour)},
	}
	for _, f := range bad {
		_, err = l.Entries(ctx, f)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
	assert.Len(t, store.ListEntriesCalls(), 2, "invalid filters never reach the store")
}

func TestLedger_Cleanup(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("default retention", func(t *testing.T) {
		store := &mocks.StoreMock{
			DeleteOlderThanFunc: func(context.Context, time.Time) (int64, error) { return 3, nil },
		}
		l := New(store, Params{})
		l.now = func() time.Time { return now }

		assert.Equal(t, int64(3), l.Cleanup(context.Background(), 0))
		require.Len(t, store.DeleteOlderThanCalls(), 1)
		assert.Equal(t, now.Add(-30*24*time.Hour), store.DeleteOlderThanCalls()[0].Cutoff)
	})

	t.Run("failure swallowed", func(t *testing.T) {
		store := &mocks.StoreMock{
			DeleteOlderThanFunc: func(context.Context, time.Time) (int64, error) {
				return 0, errors.New("disk full")
			},
		}
		l := New(store, Params{})
		assert.Zero(t, l.Cleanup(context.Background(), 7))
		require.Len(t, store.DeleteOlderThanCalls(), 1)
	})
}
