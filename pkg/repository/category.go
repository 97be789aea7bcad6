package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/autocat/pkg/domain"
)

// CategoryRepository handles category lookups
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// CreateCategory inserts a category and sets its id
func (r *CategoryRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return withRetry(ctx, "create category", func() error {
		res, err := r.db.ExecContext(ctx, "INSERT INTO categories (name, slug, created_at) VALUES (?, ?, ?)",
			c.Name, c.Slug, c.CreatedAt.UTC())
		if err != nil {
			return err
		}
		c.ID, err = res.LastInsertId()
		return err
	})
}

// CategoryExists checks whether a category id resolves
func (r *CategoryRepository) CategoryExists(ctx context.Context, id int64) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM categories WHERE id = ?", id); err != nil {
		return false, fmt.Errorf("%w: check category: %w", domain.ErrPersistence, err)
	}
	return count > 0, nil
}

// DeleteCategory removes a category, posts referencing it become uncategorized
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	return withRetry(ctx, "delete category", func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
		return err
	})
}
