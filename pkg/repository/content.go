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

// ContentRepository gives the engine access to posts owned by the CMS
type ContentRepository struct {
	db *sqlx.DB
}

// contentSQL represents a post for SQL operations
type contentSQL struct {
	ID         int64         `db:"id"`
	Title      string        `db:"title"`
	Body       string        `db:"body"`
	Excerpt    string        `db:"excerpt"`
	CategoryID sql.NullInt64 `db:"category_id"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// CreateContent inserts a post and sets its id. Zero timestamps are set to now.
func (r *ContentRepository) CreateContent(ctx context.Context, c *domain.Content) error {
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}

	rec := contentSQL{
		Title:     c.Title,
		Body:      c.Body,
		Excerpt:   c.Excerpt,
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
	if c.CategoryID != nil {
		rec.CategoryID = sql.NullInt64{Int64: *c.CategoryID, Valid: true}
	}

	query := `
		INSERT INTO posts (title, body, excerpt, category_id, created_at, updated_at)
		VALUES (:title, :body, :excerpt, :category_id, :created_at, :updated_at)
	`
	return withRetry(ctx, "create content", func() error {
		res, err := r.db.NamedExecContext(ctx, query, rec)
		if err != nil {
			return err
		}
		c.ID, err = res.LastInsertId()
		return err
	})
}

// GetContent retrieves a post by id
func (r *ContentRepository) GetContent(ctx context.Context, id int64) (*domain.Content, error) {
	var rec contentSQL
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM posts WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("content %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get content: %w", domain.ErrPersistence, err)
	}
	return rec.toDomain(), nil
}

// ListUncategorizedAfter returns posts without a category positioned after the cursor in
// (created_at, id) order, oldest first. A cursor with zero id starts at its created_at inclusive,
// so {CreatedAt: since} selects everything created at or after since. A non-positive limit means no limit.
func (r *ContentRepository) ListUncategorizedAfter(ctx context.Context, after domain.ContentCursor, limit int) ([]domain.Content, error) {
	ts := after.CreatedAt.UTC()
	query := `SELECT * FROM posts WHERE category_id IS NULL AND (created_at > ? OR (created_at = ? AND id > ?))
		ORDER BY created_at ASC, id ASC`
	args := []any{ts, ts, after.ID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var recs []contentSQL
	if err := r.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("%w: list uncategorized content: %w", domain.ErrPersistence, err)
	}
	res := make([]domain.Content, 0, len(recs))
	for _, rec := range recs {
		res = append(res, *rec.toDomain())
	}
	return res, nil
}

// SetCategory assigns a category to a post that is still uncategorized.
// Returns false when the post is missing or already has a category.
func (r *ContentRepository) SetCategory(ctx context.Context, contentID, categoryID int64) (bool, error) {
	var affected int64
	err := withRetry(ctx, "set content category", func() error {
		res, err := r.db.ExecContext(ctx,
			"UPDATE posts SET category_id = ?, updated_at = ? WHERE id = ? AND category_id IS NULL",
			categoryID, time.Now().UTC(), contentID)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected > 0, err
}

func (rec *contentSQL) toDomain() *domain.Content {
	res := &domain.Content{
		ID:        rec.ID,
		Title:     rec.Title,
		Body:      rec.Body,
		Excerpt:   rec.Excerpt,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.CategoryID.Valid {
		id := rec.CategoryID.Int64
		res.CategoryID = &id
	}
	return res
}
