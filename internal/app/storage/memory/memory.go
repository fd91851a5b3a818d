package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/celery8911/nest-aws/internal/app/domain/item"
	"github.com/celery8911/nest-aws/internal/app/storage"
)

// Store is an in-memory implementation of the storage interfaces. It is safe
// for concurrent use and is intended for tests and local development; all
// data is lost on restart.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]item.Item
}

var _ storage.ItemStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		nextID: 1,
		items:  make(map[int64]item.Item),
	}
}

func (s *Store) ListItems(_ context.Context) ([]item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]item.Item, 0, len(s.items))
	for _, it := range s.items {
		result = append(result, it)
	}
	// Newest first; IDs break ties so the order is stable within a call.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (s *Store) CreateItem(_ context.Context, it item.Item) (item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it.ID = s.nextID
	s.nextID++
	it.CreatedAt = time.Now().UTC()
	s.items[it.ID] = it
	return it, nil
}

func (s *Store) DeleteItem(_ context.Context, id string) (item.Item, error) {
	numeric, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return item.Item{}, storage.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[numeric]
	if !ok {
		return item.Item{}, storage.ErrNotFound
	}
	delete(s.items, numeric)
	return it, nil
}
