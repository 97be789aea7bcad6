package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/autocat/pkg/domain"
)

// ruleOrder is priority descending with creation order as a stable tie-break
const ruleOrder = ` ORDER BY priority DESC, created_at ASC, rowid ASC`

// RuleRepository handles rule definition storage
type RuleRepository struct {
	db *sqlx.DB
}

// ruleSQL represents a rule for SQL operations
type ruleSQL struct {
	ID         string                        `db:"id"`
	Name       string                        `db:"name"`
	CategoryID int64                         `db:"category_id"`
	Conditions jsonColumn[domain.Conditions] `db:"conditions"`
	Priority   int                           `db:"priority"`
	Active     bool                          `db:"active"`
	OwnerID    int64                         `db:"owner_id"`
	CreatedAt  time.Time                     `db:"created_at"`
	UpdatedAt  time.Time                     `db:"updated_at"`
}

// NewRuleRepository creates a new rule repository
func NewRuleRepository(db *sqlx.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// CreateRule inserts a new rule. ID and timestamps are set by the caller.
func (r *RuleRepository) CreateRule(ctx context.Context, rule *domain.Rule) error {
	query := `
		INSERT INTO category_rules (id, name, category_id, conditions, priority, active, owner_id, created_at, updated_at)
		VALUES (:id, :name, :category_id, :conditions, :priority, :active, :owner_id, :created_at, :updated_at)
	`
	return withRetry(ctx, "create rule", func() error {
		_, err := r.db.NamedExecContext(ctx, query, toRuleSQL(rule))
		return err
	})
}

// GetRule retrieves a rule by id
func (r *RuleRepository) GetRule(ctx context.Context, id string) (*domain.Rule, error) {
	var rec ruleSQL
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM category_rules WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rule %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get rule: %w", domain.ErrPersistence, err)
	}
	return rec.toDomain(), nil
}

// ListRules returns all rules in evaluation order
func (r *RuleRepository) ListRules(ctx context.Context) ([]domain.Rule, error) {
	return r.selectRules(ctx, "list rules", "SELECT * FROM category_rules"+ruleOrder)
}

// ListRulesForCategory returns the rules targeting a category in evaluation order
func (r *RuleRepository) ListRulesForCategory(ctx context.Context, categoryID int64) ([]domain.Rule, error) {
	return r.selectRules(ctx, "list rules for category",
		"SELECT * FROM category_rules WHERE category_id = ?"+ruleOrder, categoryID)
}

// ListActiveRules returns active rules in evaluation order
func (r *RuleRepository) ListActiveRules(ctx context.Context) ([]domain.Rule, error) {
	return r.selectRules(ctx, "list active rules", "SELECT * FROM category_rules WHERE active = 1"+ruleOrder)
}

// UpdateRule replaces the mutable fields of an existing rule
func (r *RuleRepository) UpdateRule(ctx context.Context, rule *domain.Rule) error {
	query := `
		UPDATE category_rules
		SET name = :name, category_id = :category_id, conditions = :conditions,
		    priority = :priority, active = :active, updated_at = :updated_at
		WHERE id = :id
	`
	var affected int64
	err := withRetry(ctx, "update rule", func() error {
		res, err := r.db.NamedExecContext(ctx, query, toRuleSQL(rule))
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("rule %s: %w", rule.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteRule removes a rule. Ledger entries of the rule are kept.
func (r *RuleRepository) DeleteRule(ctx context.Context, id string) error {
	var affected int64
	err := withRetry(ctx, "delete rule", func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM category_rules WHERE id = ?", id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("rule %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *RuleRepository) selectRules(ctx context.Context, op, query string, args ...any) ([]domain.Rule, error) {
	var recs []ruleSQL
	if err := r.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrPersistence, op, err)
	}
	res := make([]domain.Rule, 0, len(recs))
	for _, rec := range recs {
		res = append(res, *rec.toDomain())
	}
	return res, nil
}

func toRuleSQL(rule *domain.Rule) ruleSQL {
	return ruleSQL{
		ID:         rule.ID,
		Name:       rule.Name,
		CategoryID: rule.CategoryID,
		Conditions: jsonColumn[domain.Conditions]{V: rule.Conditions},
		Priority:   rule.Priority,
		Active:     rule.Active,
		OwnerID:    rule.OwnerID,
		CreatedAt:  rule.CreatedAt.UTC(),
		UpdatedAt:  rule.UpdatedAt.UTC(),
	}
}

func (rec *ruleSQL) toDomain() *domain.Rule {
	return &domain.Rule{
		ID:         rec.ID,
		Name:       rec.Name,
		CategoryID: rec.CategoryID,
		Conditions: rec.Conditions.V,
		Priority:   rec.Priority,
		Active:     rec.Active,
		OwnerID:    rec.OwnerID,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
