// Package item holds the stored record model.
package item

import "time"

// Item is a stored title/content record. ID and CreatedAt are assigned by the
// persistence gateway on creation and never change afterwards; the system has
// no update operation.
type Item struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CreateInput carries the caller-supplied fields for a new item. Values are
// stored verbatim, without trimming or length limits.
type CreateInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
