package domain

import "time"

// Content represents a post managed by the CMS
type Content struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Excerpt    string    `json:"excerpt"`
	CategoryID *int64    `json:"category_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Category represents a content category
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// ContentCursor is a keyset position in the (created_at, id) order of posts
type ContentCursor struct {
	CreatedAt time.Time `json:"created_at"`
	ID        int64     `json:"id"`
}

// Cursor returns the keyset position of the post
func (c Content) Cursor() ContentCursor {
	return ContentCursor{CreatedAt: c.CreatedAt, ID: c.ID}
}
