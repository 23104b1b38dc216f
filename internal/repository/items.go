package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/campushub/items-api/internal/model"
)

// ItemRepository performs all item table operations.
//
// Each method is a single statement against the single-connection pool,
// so operations are atomic per row and serialized at the connection
// boundary. Ids are assigned by SQLite AUTOINCREMENT and never reused,
// even after deletion.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates an ItemRepository over the given handle.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, title, description, category, created_at, updated_at`

// Insert persists a new item and fills in its assigned id and timestamps.
// CreatedAt and UpdatedAt are set to the same instant.
func (r *ItemRepository) Insert(ctx context.Context, item *model.Item) error {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO items (title, description, category, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		item.Title, item.Description, string(item.Category), now, now,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	item.ID = id
	item.CreatedAt = now
	item.UpdatedAt = now
	return nil
}

// GetByID returns the item with the given id, or sql.ErrNoRows when no
// such row exists.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id)

	item := &model.Item{}
	if err := scanItem(row, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns all items ordered by ascending id (insertion order).
// An empty table yields an empty slice, not nil.
func (r *ItemRepository) List(ctx context.Context) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		var item model.Item
		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the mutable fields of the item with the given id and
// refreshes updated_at. id and created_at are never touched. Returns
// sql.ErrNoRows when the row does not exist.
func (r *ItemRepository) Update(ctx context.Context, item *model.Item) error {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`UPDATE items SET title = ?, description = ?, category = ?, updated_at = ?
		 WHERE id = ?`,
		item.Title, item.Description, string(item.Category), now, item.ID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	item.UpdatedAt = now
	return nil
}

// Delete removes the item with the given id permanently. Returns
// sql.ErrNoRows when the row does not exist (already absent).
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Count reports the number of persisted items.
func (r *ItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count)
	return count, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner, item *model.Item) error {
	var category string
	if err := s.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&category,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return err
	}
	item.Category = model.Category(category)
	return nil
}
