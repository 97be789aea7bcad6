package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/autocat/pkg/domain"
)

//go:generate moq -out mocks/content_manager.go -pkg mocks -skip-ensure -fmt goimports . ContentManager
//go:generate moq -out mocks/rule_runner.go -pkg mocks -skip-ensure -fmt goimports . RuleRunner
//go:generate moq -out mocks/ledger_cleaner.go -pkg mocks -skip-ensure -fmt goimports . LedgerCleaner

// defaults for scheduling
const (
	DefaultInterval        = time.Hour
	DefaultLookback        = 24 * time.Hour
	DefaultBatchLimit      = 500
	DefaultThreshold       = 0.8
	DefaultCleanupInterval = 24 * time.Hour
	DefaultRetentionDays   = 30
	DefaultRetryAttempts   = 3
	DefaultRetryDelay      = 100 * time.Millisecond
	DefaultRetryMaxDelay   = 2 * time.Second
)

// ErrRunInProgress is returned when a batch is requested while another one is still running
var ErrRunInProgress = errors.New("auto-categorization run in progress")

// ContentManager selects uncategorized content and commits category assignments
type ContentManager interface {
	ListUncategorizedAfter(ctx context.Context, after domain.ContentCursor, limit int) ([]domain.Content, error)
	SetCategory(ctx context.Context, contentID, categoryID int64) (bool, error)
	CategoryExists(ctx context.Context, id int64) (bool, error)
}

// RuleRunner runs the active rules against a content item
type RuleRunner interface {
	RunForContent(ctx context.Context, contentID int64) (*domain.RunReport, error)
}

// LedgerCleaner prunes old ledger entries
type LedgerCleaner interface {
	Cleanup(ctx context.Context, daysToKeep int) int64
}

// Params defines scheduler dependencies and timings, zero values fall back to defaults
type Params struct {
	ContentManager ContentManager
	RuleRunner     RuleRunner
	LedgerCleaner  LedgerCleaner // optional, retention job is not started without it

	Interval        time.Duration // auto-categorization cadence
	Lookback        time.Duration // how far back uncategorized content is selected
	BatchLimit      int           // page size, a batch pages through the whole lookback window
	Threshold       float64       // confidence a match has to exceed to be assigned, in (0, 1]
	CleanupInterval time.Duration
	RetentionDays   int

	RetryAttempts int
	RetryDelay    time.Duration
	RetryMaxDelay time.Duration
	RetryFunc     func(ctx context.Context, operation func() error) error // overrides the retry of busy storage errors
}

// Scheduler runs auto-categorization and ledger retention periodically.
// A batch never overlaps with another one, ticks arriving while a batch runs are skipped.
type Scheduler struct {
	Params
	running atomic.Bool
	cancel  context.CancelFunc
	group   *errgroup.Group
	now     func() time.Time
}

// New makes a scheduler with defaults applied
func New(params Params) *Scheduler {
	if params.Interval <= 0 {
		params.Interval = DefaultInterval
	}
	if params.Lookback <= 0 {
		params.Lookback = DefaultLookback
	}
	if params.BatchLimit <= 0 {
		params.BatchLimit = DefaultBatchLimit
	}
	if params.Threshold <= 0 {
		params.Threshold = DefaultThreshold
	}
	if params.CleanupInterval <= 0 {
		params.CleanupInterval = DefaultCleanupInterval
	}
	if params.RetentionDays <= 0 {
		params.RetentionDays = DefaultRetentionDays
	}
	if params.RetryAttempts <= 0 {
		params.RetryAttempts = DefaultRetryAttempts
	}
	if params.RetryDelay <= 0 {
		params.RetryDelay = DefaultRetryDelay
	}
	if params.RetryMaxDelay <= 0 {
		params.RetryMaxDelay = DefaultRetryMaxDelay
	}

	res := &Scheduler{Params: params, now: time.Now}
	if res.RetryFunc == nil {
		res.RetryFunc = res.retryBusy
	}
	return res
}

// errPermanent marks failures the default retry gives up on right away
var errPermanent = errors.New("permanent failure")

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }

func (e *permanentError) Is(target error) bool { return target == errPermanent }

// retryBusy retries an operation with backoff while the storage reports it is busy.
// Any other error ends the retry on the first attempt.
func (s *Scheduler) retryBusy(ctx context.Context, operation func() error) error {
	retrier := repeater.NewBackoff(s.RetryAttempts, s.RetryDelay, repeater.WithMaxDelay(s.RetryMaxDelay))
	return retrier.Do(ctx, func() error {
		err := operation()
		if err == nil || errors.Is(err, domain.ErrBusy) {
			return err
		}
		return &permanentError{err: err}
	}, errPermanent)
}

// Start begins the periodic jobs, each runs once right away
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.group, ctx = errgroup.WithContext(ctx)

	s.group.Go(func() error {
		s.loop(ctx, s.Interval, func(ctx context.Context) {
			if _, err := s.AutoCategorize(ctx); err != nil {
				lgr.Printf("[WARN] auto-categorization skipped: %v", err)
			}
		})
		return nil
	})

	if s.LedgerCleaner != nil {
		s.group.Go(func() error {
			s.loop(ctx, s.CleanupInterval, func(ctx context.Context) {
				s.LedgerCleaner.Cleanup(ctx, s.RetentionDays)
			})
			return nil
		})
	}

	lgr.Printf("[INFO] scheduler started, auto-categorization every %v with lookback %v, ledger cleanup every %v",
		s.Interval, s.Lookback, s.CleanupInterval)
}

// Stop cancels the jobs and waits for a running batch to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	if s.group != nil {
		if err := s.group.Wait(); err != nil {
			lgr.Printf("[WARN] scheduler stopped with error: %v", err)
		}
	}
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, interval time.Duration, job func(ctx context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	job(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job(ctx)
		}
	}
}

// AutoCategorize runs one batch: all uncategorized content from the lookback window is run
// through the rules and gets the category of its first match above the threshold. Content is
// paged in (created_at, id) order with BatchLimit items per page, so items without a match
// never hide newer ones. Errors of single items are counted and logged, they never stop the batch.
func (s *Scheduler) AutoCategorize(ctx context.Context) (domain.BatchSummary, error) {
	if !s.running.CompareAndSwap(false, true) {
		return domain.BatchSummary{}, ErrRunInProgress
	}
	defer s.running.Store(false)

	start := s.now()
	summary := domain.BatchSummary{}
	cursor := domain.ContentCursor{CreatedAt: start.Add(-s.Lookback)}
	for {
		items, err := s.ContentManager.ListUncategorizedAfter(ctx, cursor, s.BatchLimit)
		if err != nil {
			summary.Duration = s.now().Sub(start)
			return summary, fmt.Errorf("select uncategorized content after %d items: %w", summary.Selected, err)
		}
		summary.Selected += len(items)
		lastPage := len(items) < s.BatchLimit

		left := s.processPage(ctx, items, &summary)
		if lastPage && left == 0 {
			break
		}
		if ctx.Err() != nil {
			if lastPage {
				lgr.Printf("[INFO] auto-categorization interrupted, %d selected items left", left)
			} else {
				lgr.Printf("[INFO] auto-categorization interrupted, %d selected items left, later pages of the window not fetched", left)
			}
			break
		}
		cursor = items[len(items)-1].Cursor()
	}

	summary.Duration = s.now().Sub(start)
	if summary.Selected > 0 {
		lgr.Printf("[INFO] auto-categorization done: %d selected, %d assigned, %d skipped, %d failed in %v",
			summary.Selected, summary.Assigned, summary.Skipped, summary.Failed, summary.Duration)
	}
	return summary, nil
}

// processPage handles items until the context is canceled and returns how many were left unprocessed
func (s *Scheduler) processPage(ctx context.Context, items []domain.Content, summary *domain.BatchSummary) (left int) {
	for i, item := range items {
		if ctx.Err() != nil {
			return len(items) - i
		}
		assigned, err := s.processItem(ctx, item)
		switch {
		case err != nil:
			summary.Failed++
			lgr.Printf("[WARN] auto-categorization of content %d failed: %v", item.ID, err)
			continue
		case assigned:
			summary.Assigned++
		default:
			summary.Skipped++
		}
		summary.Processed++
	}
	return 0
}

// processItem assigns the category of the first high-confidence match whose category still exists
func (s *Scheduler) processItem(ctx context.Context, item domain.Content) (assigned bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			assigned, err = false, fmt.Errorf("panic: %v", r)
		}
	}()

	report, err := s.RuleRunner.RunForContent(ctx, item.ID)
	if err != nil {
		return false, fmt.Errorf("run rules: %w", err)
	}

	for _, res := range report.Results {
		if res.Confidence <= s.Threshold {
			continue
		}

		exists, err := s.ContentManager.CategoryExists(ctx, res.CategoryID)
		if err != nil {
			return false, fmt.Errorf("check category %d: %w", res.CategoryID, err)
		}
		if !exists {
			lgr.Printf("[WARN] rule %s points to missing category %d, match ignored for content %d",
				res.RuleID, res.CategoryID, item.ID)
			continue
		}

		var updated bool
		err = s.RetryFunc(ctx, func() error {
			var setErr error
			updated, setErr = s.ContentManager.SetCategory(ctx, item.ID, res.CategoryID)
			return setErr
		})
		if err != nil {
			return false, fmt.Errorf("set category %d: %w", res.CategoryID, err)
		}
		if !updated {
			lgr.Printf("[DEBUG] content %d got a category in the meantime, not changed", item.ID)
			return false, nil
		}
		lgr.Printf("[INFO] content %d assigned to category %d by rule %s (%s), confidence %.2f",
			item.ID, res.CategoryID, res.RuleID, res.RuleName, res.Confidence)
		return true, nil
	}
	return false, nil
}
