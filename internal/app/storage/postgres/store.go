package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/celery8911/nest-aws/internal/app/domain/item"
	"github.com/celery8911/nest-aws/internal/app/storage"
)

// Store implements the storage interfaces backed by PostgreSQL.
type Store struct {
	db *sqlx.DB
}

var _ storage.ItemStore = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Open returns a lazily-connected database handle for the given DSN. No
// connection is attempted here; the first statement establishes it, so an
// unreachable database does not prevent the process from starting.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	return db, nil
}

func (s *Store) ListItems(ctx context.Context) ([]item.Item, error) {
	var items []item.Item
	err := s.db.SelectContext(ctx, &items, `
		SELECT id, title, content, created_at
		FROM items
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreateItem(ctx context.Context, it item.Item) (item.Item, error) {
	var created item.Item
	err := s.db.GetContext(ctx, &created, `
		INSERT INTO items (title, content)
		VALUES ($1, $2)
		RETURNING id, title, content, created_at
	`, it.Title, it.Content)
	if err != nil {
		return item.Item{}, err
	}
	return created, nil
}

func (s *Store) DeleteItem(ctx context.Context, id string) (item.Item, error) {
	numeric, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		// Keys are serial integers; anything else cannot match a record.
		return item.Item{}, storage.ErrNotFound
	}

	var removed item.Item
	err = s.db.GetContext(ctx, &removed, `
		DELETE FROM items
		WHERE id = $1
		RETURNING id, title, content, created_at
	`, numeric)
	if errors.Is(err, sql.ErrNoRows) {
		return item.Item{}, storage.ErrNotFound
	}
	if err != nil {
		return item.Item{}, err
	}
	return removed, nil
}
