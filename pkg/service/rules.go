// Package service implements rule authoring on top of the rule store: validation,
// category existence checks, id and timestamp assignment, and per-rule statistics.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/autocat/pkg/domain"
)

//go:generate moq -out mocks/rule_store.go -pkg mocks -skip-ensure -fmt goimports . RuleStore
//go:generate moq -out mocks/category_checker.go -pkg mocks -skip-ensure -fmt goimports . CategoryChecker
//go:generate moq -out mocks/stats_provider.go -pkg mocks -skip-ensure -fmt goimports . StatsProvider

// RuleStore persists rule definitions
type RuleStore interface {
	CreateRule(ctx context.Context, rule *domain.Rule) error
	GetRule(ctx context.Context, id string) (*domain.Rule, error)
	ListRules(ctx context.Context) ([]domain.Rule, error)
	ListRulesForCategory(ctx context.Context, categoryID int64) ([]domain.Rule, error)
	UpdateRule(ctx context.Context, rule *domain.Rule) error
	DeleteRule(ctx context.Context, id string) error
}

// CategoryChecker resolves category ids
type CategoryChecker interface {
	CategoryExists(ctx context.Context, id int64) (bool, error)
}

// StatsProvider computes rule statistics from the ledger
type StatsProvider interface {
	Statistics(ctx context.Context, ruleID string) (domain.RuleStats, error)
}

// RuleService handles rule authoring
type RuleService struct {
	store      RuleStore
	categories CategoryChecker
	stats      StatsProvider
	now        func() time.Time
	newID      func() string
}

// NewRuleService creates a new rule service
func NewRuleService(store RuleStore, categories CategoryChecker, stats StatsProvider) *RuleService {
	return &RuleService{
		store:      store,
		categories: categories,
		stats:      stats,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// CreateRule validates and stores a new rule. The target category has to exist.
// Id, timestamps and condition defaults are set here, any id sent by the caller is ignored.
func (s *RuleService) CreateRule(ctx context.Context, rule domain.Rule) (*domain.Rule, error) {
	rule.Conditions.Normalize()
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, rule.CategoryID); err != nil {
		return nil, err
	}

	rule.ID = s.newID()
	rule.CreatedAt = s.now()
	rule.UpdatedAt = rule.CreatedAt
	if err := s.store.CreateRule(ctx, &rule); err != nil {
		return nil, fmt.Errorf("create rule: %w", err)
	}
	lgr.Printf("[INFO] rule %s (%s) created for category %d, priority %d", rule.ID, rule.Name, rule.CategoryID, rule.Priority)
	return &rule, nil
}

// GetRule returns a rule by id
func (s *RuleService) GetRule(ctx context.Context, id string) (*domain.Rule, error) {
	return s.store.GetRule(ctx, id)
}

// ListRules returns all rules in evaluation order
func (s *RuleService) ListRules(ctx context.Context) ([]domain.Rule, error) {
	return s.store.ListRules(ctx)
}

// ListRulesForCategory returns the rules of a category in evaluation order
func (s *RuleService) ListRulesForCategory(ctx context.Context, categoryID int64) ([]domain.Rule, error) {
	return s.store.ListRulesForCategory(ctx, categoryID)
}

// UpdateRule replaces the authoring fields of an existing rule. Owner and creation time are kept.
// A changed target category is checked for existence, an unchanged one is not.
func (s *RuleService) UpdateRule(ctx context.Context, id string, upd domain.Rule) (*domain.Rule, error) {
	current, err := s.store.GetRule(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Conditions.Normalize()
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	if upd.CategoryID != current.CategoryID {
		if err := s.checkCategory(ctx, upd.CategoryID); err != nil {
			return nil, err
		}
	}

	current.Name = upd.Name
	current.CategoryID = upd.CategoryID
	current.Conditions = upd.Conditions
	current.Priority = upd.Priority
	current.Active = upd.Active
	current.UpdatedAt = s.now()
	if err := s.store.UpdateRule(ctx, current); err != nil {
		return nil, fmt.Errorf("update rule: %w", err)
	}
	lgr.Printf("[INFO] rule %s (%s) updated", current.ID, current.Name)
	return current, nil
}

// DeleteRule removes a rule, its ledger history stays
func (s *RuleService) DeleteRule(ctx context.Context, id string) error {
	if err := s.store.DeleteRule(ctx, id); err != nil {
		return err
	}
	lgr.Printf("[INFO] rule %s deleted", id)
	return nil
}

// Statistics returns ledger statistics of an existing rule
func (s *RuleService) Statistics(ctx context.Context, ruleID string) (domain.RuleStats, error) {
	if _, err := s.store.GetRule(ctx, ruleID); err != nil {
		return domain.RuleStats{}, err
	}
	return s.stats.Statistics(ctx, ruleID)
}

func (s *RuleService) checkCategory(ctx context.Context, id int64) error {
	ok, err := s.categories.CategoryExists(ctx, id)
	if err != nil {
		return fmt.Errorf("check category %d: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
