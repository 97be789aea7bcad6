package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/autocat/pkg/domain"
	"github.com/umputun/autocat/pkg/scheduler/mocks"
)

func noRetry(_ context.Context, op func() error) error { return op() }

func match(ruleID string, categoryID int64, conf float64) domain.ExecutionResult {
	return domain.ExecutionResult{RuleID: ruleID, RuleName: ruleID, CategoryID: categoryID, Matched: true, Confidence: conf}
}

func newContentManager(items ...domain.Content) *mocks.ContentManagerMock {
	return &mocks.ContentManagerMock{
		ListUncategorizedAfterFunc: func(_ context.Context, after domain.ContentCursor, limit int) ([]domain.Content, error) {
			var res []domain.Content
			for _, c := range items {
				if c.ID > after.ID && len(res) < limit {
					res = append(res, c)
				}
			}
			return res, nil
		},
		CategoryExistsFunc: func(context.Context, int64) (bool, error) { return true, nil },
		SetCategoryFunc:    func(context.Context, int64, int64) (bool, error) { return true, nil },
	}
}

func TestScheduler_AutoCategorize(t *testing.T) {
	cm := newContentManager(domain.Content{ID: 1}, domain.Content{ID: 2}, domain.Content{ID: 3})
	runner := &mocks.RuleRunnerMock{
		RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
			if id == 2 {
				return nil, errors.New("engine failure")
			}
			return &domain.RunReport{ContentID: id, Results: []domain.ExecutionResult{match("r1", 10, 0.9)}}, nil
		},
	}
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s := New(Params{ContentManager: cm, RuleRunner: runner, RetryFunc: noRetry})
	s.now = func() time.Time { return now }

	summary, err := s.AutoCategorize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Selected)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 2, summary.Assigned)
	assert.Equal(t, 1, summary.Failed)
	assert.Zero(t, summary.Skipped)

	require.Len(t, cm.ListUncategorizedAfterCalls(), 1)
	assert.Equal(t, domain.ContentCursor{CreatedAt: now.Add(-24 * time.Hour)}, cm.ListUncategorizedAfterCalls()[0].After)
	assert.Equal(t, DefaultBatchLimit, cm.ListUncategorizedAfterCalls()[0].Limit)

	require.Len(t, cm.SetCategoryCalls(), 2)
	assert.Equal(t, int64(1), cm.SetCategoryCalls()[0].ContentID)
	assert.Equal(t, int64(3), cm.SetCategoryCalls()[1].ContentID)
	assert.Equal(t, int64(10), cm.SetCategoryCalls()[1].CategoryID)
}

func TestScheduler_AutoCategorizePanicIsolated(t *testing.T) {
	cm := newContentManager(domain.Content{ID: 1}, domain.Content{ID: 2}, domain.Content{ID: 3})
	runner := &mocks.RuleRunnerMock{
		RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
			if id == 2 {
				panic("bad content")
			}
			return &domain.RunReport{ContentID: id, Results: []domain.ExecutionResult{match("r1", 10, 0.95)}}, nil
		},
	}
	s := New(Params{ContentManager: cm, RuleRunner: runner, RetryFunc: noRetry})

	summary, err := s.AutoCategorize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 2, summary.Assigned)
	assert.Len(t, runner.RunForContentCalls(), 3, "item after the panic is still processed")
}

func TestScheduler_Threshold(t *testing.T) {
	tbl := []struct {
		name       string
		confidence float64
		assigned   bool
	}{
		{name: "below", confidence: 0.5, assigned: false},
		{name: "exactly threshold", confidence: 0.8, assigned: false},
		{name: "above", confidence: 0.81, assigned: true},
		{name: "full", confidence: 1.0, assigned: true},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			cm := newContentManager(domain.Content{ID: 7})
			runner := &mocks.RuleRunnerMock{
				RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
					return &domain.RunReport{ContentID: id, Results: []domain.ExecutionResult{match("r", 4, tt.confidence)}}, nil
				},
			}
			s := New(Params{ContentManager: cm, RuleRunner: runner, RetryFunc: noRetry})

			summary, err := s.AutoCategorize(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 1, summary.Processed)
			if tt.assigned {
				assert.Equal(t, 1, summary.Assigned)
				assert.Len(t, cm.SetCategoryCalls(), 1)
				return
			}
			assert.Equal(t, 1, summary.Skipped)
			assert.Empty(t, cm.SetCategoryCalls())
		})
	}
}

func TestScheduler_FirstMatchWins(t *testing.T) {
	cm := newContentManager(domain.Content{ID: 1})
	runner := &mocks.RuleRunnerMock{
		RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
			return &domain.RunReport{ContentID: id, Results: []domain.ExecutionResult{
				match("weak", 1, 0.7), match("strong-first", 2, 0.85), match("strong-second", 3, 1.0),
			}}, nil
		},
	}
	s := New(Params{ContentManager: cm, RuleRunner: runner, RetryFunc: noRetry})

	summary, err := s.AutoCategorize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Assigned)
	require.Len(t, cm.SetCategoryCalls(), 1)
	assert.Equal(t, int64(2), cm.SetCategoryCalls()[0].CategoryID, "first high-confidence match in priority order")
}

func TestScheduler_MissingCategorySkipped(t *testing.T) {
	cm := newContentManager(domain.Content{ID: 1})
	cm.CategoryExistsFunc = func(_ context.Context, id int64) (bool, error) { return id != 2, nil }
	runner := &mocks.RuleRunnerMock{
		RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
			return &domain.RunReport{ContentID: id, Results: []domain.ExecutionResult{
				match("dangling", 2, 0.95), match("valid", 3, 0.9),
			}}, nil
		},
	}
	s := New(Params{ContentManager: cm, RuleRunner: runner, RetryFunc: noRetry})

	summary, err := s.AutoCategorize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Assigned)
	assert.Len(t, cm.CategoryExistsCalls(), 2)
	require.Len(t, cm.SetCategoryCalls(), 1)
	assert.Equal(t, int64(3), cm.SetCategoryCalls()[0].CategoryID)
}

func TestScheduler_AlreadyCategorized(t *testing.T) {
	cm := newContentManager(domain.Content{ID: 1})
	cm.SetCategoryFunc = func(context.Context, int64, int64) (bool, error) { return false, nil }
	runner := &mocks.RuleRunnerMock{
		RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
			return &domain.RunReport{ContentID: id, Results: []domain.ExecutionResult{match("r", 2, 0.9)}}, nil
		},
	}
	s := New(Params{ContentManager: cm, RuleRunner: runner, RetryFunc: noRetry})

	summary, err := s.AutoCategorize(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Assigned)
	assert.Equal(t, 1, summary.Skipped)
}

func TestScheduler_SetCategoryRetried(t *testing.T) {
	cm := newContentManager(domain.Content{ID: 1})
	var attempts atomic.Int32
	cm.SetCategoryFunc = func(context.Context, int64, int64) (bool, error) {
		if attempts.Add(1) < 3 {
			return false, fmt.Errorf("%w: %w: set content category", domain.ErrPersistence, domain.ErrBusy)
		}
		return true, nil
	}
	runner := &mocks.RuleRunnerMock{
		RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
			return &domain.RunReport{ContentID: id, Results: []domain.ExecutionResult{match("r", 2, 0.9)}}, nil
		},
	}
	s := New(Params{ContentManager: cm, RuleRunner: runner, RetryDelay: time.Millisecond, RetryMaxDelay: 5 * time.Millisecond})

	summary, err := s.AutoCategorize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Assigned)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestScheduler_SetCategoryNotBusyNotRetried(t *testing.T) {
	cm := newContentManager(domain.Content{ID: 1}, domain.Content{ID: 2})
	cm.SetCategoryFunc = func(_ context.Context, id int64, _ int64) (bool, error) {
		if id == 1 {
			return false, fmt.Errorf("%w: set content category: constraint failed", domain.ErrPersistence)
		}
		return true, nil
	}
	runner := &mocks.RuleRunnerMock{
		RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
			return &domain.RunReport{ContentID: id, Results: []domain.ExecutionResult{match("r", 2, 0.9)}}, nil
		},
	}
	s := New(Params{ContentManager: cm, RuleRunner: runner, RetryDelay: time.Millisecond, RetryMaxDelay: 5 * time.Millisecond})

	summary, err := s.AutoCategorize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Assigned)
	require.Len(t, cm.SetCategoryCalls(), 2, "failed commit attempted once")
	assert.Equal(t, int64(1), cm.SetCategoryCalls()[0].ContentID)
}

func TestScheduler_SetCategoryBusyGivesUp(t *testing.T) {
	cm := newContentManager(domain.Content{ID: 1})
	cm.SetCategoryFunc = func(context.Context, int64, int64) (bool, error) {
		return false, fmt.Errorf("%w: %w: set content category", domain.ErrPersistence, domain.ErrBusy)
	}
	runner := &mocks.RuleRunnerMock{
		RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
			return &domain.RunReport{ContentID: id, Results: []domain.ExecutionResult{match("r", 2, 0.9)}}, nil
		},
	}
	s := New(Params{ContentManager: cm, RuleRunner: runner, RetryAttempts: 4, RetryDelay: time.Millisecond,
		RetryMaxDelay: 5 * time.Millisecond})

	summary, err := s.AutoCategorize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, cm.SetCategoryCalls(), 4)
}

func TestScheduler_PagesThroughWindow(t *testing.T) {
	items := []domain.Content{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}
	cm := newContentManager(items...)
	runner := &mocks.RuleRunnerMock{
		RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
			if id != 5 {
				return &domain.RunReport{ContentID: id}, nil
			}
			return &domain.RunReport{ContentID: id, Results: []domain.ExecutionResult{match("r", 8, 0.9)}}, nil
		},
	}
	s := New(Params{ContentManager: cm, RuleRunner: runner, BatchLimit: 2, RetryFunc: noRetry})

	summary, err := s.AutoCategorize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Selected)
	assert.Equal(t, 5, summary.Processed)
	assert.Equal(t, 4, summary.Skipped)
	assert.Equal(t, 1, summary.Assigned)
	require.Len(t, cm.SetCategoryCalls(), 1)
	assert.Equal(t, int64(5), cm.SetCategoryCalls()[0].ContentID, "item on the last page is reached")

	calls := cm.ListUncategorizedAfterCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, items[1].Cursor(), calls[1].After, "next page starts after the last item")
	assert.Equal(t, items[3].Cursor(), calls[2].After)
	for _, c := range calls {
		assert.Equal(t, 2, c.Limit)
	}

	t.Run("full last page", func(t *testing.T) {
		cm := newContentManager(items[:4]...)
		s := New(Params{ContentManager: cm, RuleRunner: runner, BatchLimit: 2, RetryFunc: noRetry})
		summary, err := s.AutoCategorize(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, summary.Selected)
		assert.Len(t, cm.ListUncategorizedAfterCalls(), 3, "empty page ends the batch")
	})
}

func TestScheduler_PageFailure(t *testing.T) {
	cm := newContentManager(domain.Content{ID: 1}, domain.Content{ID: 2}, domain.Content{ID: 3})
	page := cm.ListUncategorizedAfterFunc
	cm.ListUncategorizedAfterFunc = func(ctx context.Context, after domain.ContentCursor, limit int) ([]domain.Content, error) {
		if after.ID > 0 {
			return nil, domain.ErrPersistence
		}
		return page(ctx, after, limit)
	}
	runner := &mocks.RuleRunnerMock{
		RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
			return &domain.RunReport{ContentID: id}, nil
		},
	}
	s := New(Params{ContentManager: cm, RuleRunner: runner, BatchLimit: 2, RetryFunc: noRetry})

	summary, err := s.AutoCategorize(context.Background())
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, 2, summary.Selected)
	assert.Equal(t, 2, summary.Processed, "first page is done before the failure")
}

func TestScheduler_SelectionFailure(t *testing.T) {
	cm := newContentManager()
	cm.ListUncategorizedAfterFunc = func(context.Context, domain.ContentCursor, int) ([]domain.Content, error) {
		return nil, domain.ErrPersistence
	}
	runner := &mocks.RuleRunnerMock{}
	s := New(Params{ContentManager: cm, RuleRunner: runner, RetryFunc: noRetry})

	summary, err := s.AutoCategorize(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Zero(t, summary.Selected)
	assert.Empty(t, runner.RunForContentCalls())

	// the guard is released after a failed batch
	cm.ListUncategorizedAfterFunc = func(context.Context, domain.ContentCursor, int) ([]domain.Content, error) { return nil, nil }
	_, err = s.AutoCategorize(context.Background())
	assert.NoError(t, err)
}

func TestScheduler_NoOverlap(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	cm := newContentManager(domain.Content{ID: 1})
	runner := &mocks.RuleRunnerMock{
		RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
			close(started)
			<-release
			return &domain.RunReport{ContentID: id}, nil
		},
	}
	s := New(Params{ContentManager: cm, RuleRunner: runner, RetryFunc: noRetry})

	done := make(chan domain.BatchSummary)
	go func() {
		summary, err := s.AutoCategorize(context.Background())
		assert.NoError(t, err)
		done <- summary
	}()

	<-started
	_, err := s.AutoCategorize(context.Background())
	require.ErrorIs(t, err, ErrRunInProgress)

	close(release)
	summary := <-done
	assert.Equal(t, 1, summary.Skipped)
	assert.Len(t, cm.ListUncategorizedAfterCalls(), 1, "second batch never selected content")
}

func TestScheduler_CanceledBatch(t *testing.T) {
	cm := newContentManager(domain.Content{ID: 1}, domain.Content{ID: 2})
	ctx, cancel := context.WithCancel(context.Background())
	runner := &mocks.RuleRunnerMock{
		RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
			cancel()
			return &domain.RunReport{ContentID: id}, nil
		},
	}
	s := New(Params{ContentManager: cm, RuleRunner: runner, RetryFunc: noRetry})

	summary, err := s.AutoCategorize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Selected)
	assert.Equal(t, 1, summary.Processed)
	assert.Len(t, runner.RunForContentCalls(), 1)
}

func TestScheduler_CanceledBatchSkipsLaterPages(t *testing.T) {
	cm := newContentManager(domain.Content{ID: 1}, domain.Content{ID: 2}, domain.Content{ID: 3}, domain.Content{ID: 4})
	ctx, cancel := context.WithCancel(context.Background())
	runner := &mocks.RuleRunnerMock{
		RunForContentFunc: func(_ context.Context, id int64) (*domain.RunReport, error) {
			if id == 2 {
				cancel()
			}
			return &domain.RunReport{ContentID: id}, nil
		},
	}
	s := New(Params{ContentManager: cm, RuleRunner: runner, BatchLimit: 2, RetryFunc: noRetry})

	summary, err := s.AutoCategorize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Selected)
	assert.Equal(t, 2, summary.Processed)
	assert.Len(t, cm.ListUncategorizedAfterCalls(), 1, "no page fetched after cancellation")
}

func TestScheduler_StartStop(t *testing.T) {
	cm := newContentManager()
	cleaner := &mocks.LedgerCleanerMock{CleanupFunc: func(context.Context, int) int64 { return 0 }}
	s := New(Params{ContentManager: cm, RuleRunner: &mocks.RuleRunnerMock{}, LedgerCleaner: cleaner,
		Interval: 20 * time.Millisecond, CleanupInterval: time.Hour, RetentionDays: 14, RetryFunc: noRetry})

	s.Start(context.Background())
	require.Eventually(t, func() bool { return len(cm.ListUncategorizedAfterCalls()) >= 2 },
		time.Second, 5*time.Millisecond, "batch runs on start and on every tick")
	s.Stop()

	require.Len(t, cleaner.CleanupCalls(), 1, "retention runs once on start")
	assert.Equal(t, 14, cleaner.CleanupCalls()[0].DaysToKeep)

	calls := len(cm.ListUncategorizedAfterCalls())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, len(cm.ListUncategorizedAfterCalls()), "no batches after stop")
}

func TestScheduler_Defaults(t *testing.T) {
	s := New(Params{})
	assert.Equal(t, DefaultInterval, s.Interval)
	assert.Equal(t, DefaultLookback, s.Lookback)
	assert.Equal(t, DefaultBatchLimit, s.BatchLimit)
	assert.InDelta(t, DefaultThreshold, s.Threshold, 1e-9)
	assert.Equal(t, DefaultCleanupInterval, s.CleanupInterval)
	assert.Equal(t, DefaultRetentionDays, s.RetentionDays)
	assert.NotNil(t, s.RetryFunc)

	s.Stop() // stop without start is a no-op
}
