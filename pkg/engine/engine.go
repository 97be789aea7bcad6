// Package engine runs the active rule set against a content item: features are extracted
// once, rules are evaluated in priority order, and matches are recorded to the ledger.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/autocat/pkg/domain"
)

//go:generate moq -out mocks/rule_source.go -pkg mocks -skip-ensure -fmt goimports . RuleSource
//go:generate moq -out mocks/content_source.go -pkg mocks -skip-ensure -fmt goimports . ContentSource
//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder
//go:generate moq -out mocks/evaluator.go -pkg mocks -skip-ensure -fmt goimports . Evaluator

// DefaultRunTimeout limits a single run over all rules
const DefaultRunTimeout = 30 * time.Second

// ErrDeadline is recorded for rules skipped because the run ran out of time
var ErrDeadline = errors.New("run deadline exceeded")

// RuleSource provides active rules in evaluation order
type RuleSource interface {
	ListActiveRules(ctx context.Context) ([]domain.Rule, error)
}

// ContentSource loads content items
type ContentSource interface {
	GetContent(ctx context.Context, id int64) (*domain.Content, error)
}

// Recorder persists matching results
type Recorder interface {
	Record(ctx context.Context, results []domain.ExecutionResult) error
}

// Extractor computes the feature set of a content item
type Extractor interface {
	Extract(title, body string) domain.FeatureSet
}

// Evaluator scores one rule against a feature set
type Evaluator interface {
	Evaluate(rule domain.Rule, fs domain.FeatureSet) (domain.ExecutionResult, error)
}

// Params defines engine dependencies and limits
type Params struct {
	Rules      RuleSource
	Content    ContentSource
	Recorder   Recorder
	Extractor  Extractor
	Evaluator  Evaluator
	RunTimeout time.Duration
}

// Engine orchestrates rule execution for content items
type Engine struct {
	Params
}

// New makes an engine, zero RunTimeout falls back to the default
func New(params Params) *Engine {
	if params.RunTimeout <= 0 {
		params.RunTimeout = DefaultRunTimeout
	}
	return &Engine{Params: params}
}

// RunForContent evaluates all active rules against the content item and records matches.
// Missing content aborts before any rule runs. A failing rule is reported in Failures and
// never stops the run, and a ledger write failure only logs.
func (e *Engine) RunForContent(ctx context.Context, contentID int64) (*domain.RunReport, error) {
	start := time.Now()
	content, err := e.Content.GetContent(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("get content %d: %w", contentID, err)
	}

	rules, err := e.Rules.ListActiveRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active rules: %w", err)
	}

	fs := e.Extractor.Extract(content.Title, textOf(content))
	report := &domain.RunReport{ContentID: contentID, Results: []domain.ExecutionResult{}}
	deadline := start.Add(e.RunTimeout)

	skipped := 0
	for _, rule := range rules {
		if stopErr := stopReason(ctx, deadline); stopErr != nil {
			report.Failures = append(report.Failures, failure(rule, stopErr))
			skipped++
			continue
		}

		res, err := e.evaluate(rule, fs)
		if err != nil {
			lgr.Printf("[WARN] rule %s (%s) failed on content %d: %v", rule.ID, rule.Name, contentID, err)
			report.Failures = append(report.Failures, failure(rule, err))
			continue
		}
		report.Evaluated++
		if !res.Matched {
			continue
		}
		res.ContentID = contentID
		report.Results = append(report.Results, res)
	}

	if skipped > 0 {
		lgr.Printf("[WARN] run for content %d stopped early, %d rules skipped", contentID, skipped)
	}

	// matches found before cancellation are still kept
	if err := e.Recorder.Record(context.WithoutCancel(ctx), report.Results); err != nil {
		lgr.Printf("[WARN] failed to record %d results for content %d: %v", len(report.Results), contentID, err)
	}

	report.Duration = time.Since(start)
	lgr.Printf("[DEBUG] content %d: %d rules evaluated, %d matched, %d failed in %v",
		contentID, report.Evaluated, len(report.Results), len(report.Failures), report.Duration)
	return report, nil
}

// AnalyzeContent returns the feature set of a content item without running rules
func (e *Engine) AnalyzeContent(ctx context.Context, contentID int64) (domain.FeatureSet, error) {
	content, err := e.Content.GetContent(ctx, contentID)
	if err != nil {
		return domain.FeatureSet{}, fmt.Errorf("get content %d: %w", contentID, err)
	}
	return e.Extractor.Extract(content.Title, textOf(content)), nil
}

// evaluate runs one rule, timing it and turning a panic into an error
func (e *Engine) evaluate(rule domain.Rule, fs domain.FeatureSet) (res domain.ExecutionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", domain.ErrRuleEvaluation, r)
		}
	}()

	st := time.Now()
	res, err = e.Evaluator.Evaluate(rule, fs)
	if err != nil {
		return res, err
	}
	res.ExecutionTime = time.Since(st)
	res.EvaluatedAt = time.Now()
	return res, nil
}

func failure(rule domain.Rule, err error) domain.RuleFailure {
	return domain.RuleFailure{RuleID: rule.ID, RuleName: rule.Name, Error: err.Error()}
}

// stopReason reports why a run has to stop, nil if it can go on
func stopReason(ctx context.Context, deadline time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if time.Now().After(deadline) {
		return ErrDeadline
	}
	return nil
}

// textOf falls back to the excerpt for content without a body
func textOf(c *domain.Content) string {
	if strings.TrimSpace(c.Body) != "" {
		return c.Body
	}
	return c.Excerpt
}
