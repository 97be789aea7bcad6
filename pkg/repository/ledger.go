package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/autocat/pkg/domain"
)

// LedgerRepository stores rule execution ledger entries
type LedgerRepository struct {
	db *sqlx.DB
}

// ledgerSQL represents a ledger entry for SQL operations
type ledgerSQL struct {
	ID         int64                              `db:"id"`
	RuleID     string                             `db:"rule_id"`
	ContentID  int64                              `db:"content_id"`
	Result     jsonColumn[domain.ExecutionResult] `db:"result"`
	Confidence float64                            `db:"confidence"`
	CreatedAt  time.Time                          `db:"created_at"`
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *sqlx.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// AddEntries appends entries in a single transaction and sets their ids
func (r *LedgerRepository) AddEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO rule_executions (rule_id, content_id, result, confidence, created_at)
		VALUES (:rule_id, :content_id, :result, :confidence, :created_at)
	`
	return withRetry(ctx, "add ledger entries", func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		ids := make([]int64, len(entries))
		for i := range entries {
			e := &entries[i]
			rec := ledgerSQL{
				RuleID:     e.RuleID,
				ContentID:  e.ContentID,
				Result:     jsonColumn[domain.ExecutionResult]{V: e.Result},
				Confidence: e.Confidence,
				CreatedAt:  e.CreatedAt.UTC(),
			}
			res, err := tx.NamedExecContext(ctx, query, rec)
			if err != nil {
				return fmt.Errorf("insert entry for rule %s: %w", e.RuleID, err)
			}
			if ids[i], err = res.LastInsertId(); err != nil {
				return fmt.Errorf("get insert id: %w", err)
			}
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		for i := range entries {
			entries[i].ID = ids[i]
		}
		return nil
	})
}

// RecentEntries returns up to limit newest entries of a rule
func (r *LedgerRepository) RecentEntries(ctx context.Context, ruleID string, limit int) ([]domain.LedgerEntry, error) {
	return r.ListEntries(ctx, domain.LedgerFilter{RuleID: ruleID, Limit: limit})
}

// ListEntries returns entries matching the filter, newest first.
// A zero Limit means no limit.
func (r *LedgerRepository) ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	query := `SELECT * FROM rule_executions WHERE 1=1`
	var args []any

	if filter.RuleID != "" {
		query += ` AND rule_id = ?`
		args = append(args, filter.RuleID)
	}
	if filter.ContentID > 0 {
		query += ` AND content_id = ?`
		args = append(args, filter.ContentID)
	}
	if filter.MinConfidence > 0 {
		query += ` AND confidence >= ?`
		args = append(args, filter.MinConfidence)
	}
	if !filter.Since.IsZero() {
		query += ` AND created_at >= ?`
		args = append(args, filter.Since.UTC())
	}
	if !filter.Until.IsZero() {
		query += ` AND created_at < ?`
		args = append(args, filter.Until.UTC())
	}

	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, max(filter.Offset, 0))
	}

	var recs []ledgerSQL
	if err := r.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("%w: list ledger entries: %w", domain.ErrPersistence, err)
	}

	res := make([]domain.LedgerEntry, 0, len(recs))
	for _, rec := range recs {
		res = append(res, domain.LedgerEntry{
			ID:         rec.ID,
			RuleID:     rec.RuleID,
			ContentID:  rec.ContentID,
			Result:     rec.Result.V,
			Confidence: rec.Confidence,
			CreatedAt:  rec.CreatedAt,
		})
	}
	return res, nil
}

// DeleteOlderThan removes entries created before the cutoff and returns how many were removed
func (r *LedgerRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	err := withRetry(ctx, "delete ledger entries", func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM rule_executions WHERE created_at < ?", cutoff.UTC())
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	return deleted, err
}
