// Package storage defines the persistence contracts for the application.
package storage

import (
	"context"
	"errors"

	"github.com/celery8911/nest-aws/internal/app/domain/item"
)

// ErrNotFound is returned when a lookup matches no record. Store
// implementations translate their vendor-specific signals (sql.ErrNoRows,
// zero-row RETURNING, unparsable numeric keys) into this sentinel so nothing
// downstream depends on a driver.
var ErrNotFound = errors.New("record not found")

// ItemStore persists item records.
//
// ListItems returns items ordered newest first. CreateItem assigns ID and
// CreatedAt and stores title/content verbatim. DeleteItem removes and returns
// the matching record atomically, or returns ErrNotFound without mutating
// anything; a syntactically invalid id is ErrNotFound, not a failure.
type ItemStore interface {
	ListItems(ctx context.Context) ([]item.Item, error)
	CreateItem(ctx context.Context, it item.Item) (item.Item, error)
	DeleteItem(ctx context.Context, id string) (item.Item, error)
}
