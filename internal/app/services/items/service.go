// Package items implements the business logic for item records.
package items

import (
	"context"
	"errors"
	"fmt"

	"github.com/celery8911/nest-aws/internal/apperr"
	"github.com/celery8911/nest-aws/internal/app/domain/item"
	"github.com/celery8911/nest-aws/internal/app/storage"
	"github.com/celery8911/nest-aws/pkg/logger"
)

// Service orchestrates item reads and writes against a store. It holds no
// state of its own; every call is an independent unit of work.
type Service struct {
	store storage.ItemStore
	log   *logger.Logger
}

// New constructs an item service.
func New(store storage.ItemStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("items")
	}
	return &Service{store: store, log: log}
}

// FindAll returns every item, newest first.
func (s *Service) FindAll(ctx context.Context) ([]item.Item, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	s.log.Debugf("found %d items", len(items))
	if items == nil {
		items = []item.Item{}
	}
	return items, nil
}

// Create validates the input and stores a new item. Title and content are
// required but otherwise stored verbatim.
func (s *Service) Create(ctx context.Context, input item.CreateInput) (item.Item, error) {
	if input.Title == "" || input.Content == "" {
		return item.Item{}, apperr.Validation("title and content are required")
	}

	created, err := s.store.CreateItem(ctx, item.Item{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		return item.Item{}, fmt.Errorf("create item: %w", err)
	}

	s.log.Infof("created item with id %d", created.ID)
	return created, nil
}

// Remove deletes the item with the given id and returns it. An unknown or
// malformed id is reported as a not-found condition.
func (s *Service) Remove(ctx context.Context, id string) (item.Item, error) {
	removed, err := s.store.DeleteItem(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		s.log.Warnf("item with id %s not found", id)
		return item.Item{}, apperr.NotFound("item", id)
	}
	if err != nil {
		return item.Item{}, fmt.Errorf("delete item: %w", err)
	}

	s.log.Infof("deleted item with id %d", removed.ID)
	return removed, nil
}
