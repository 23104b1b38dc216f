package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campushub/items-api/internal/errs"
	"github.com/campushub/items-api/internal/model"
	"github.com/campushub/items-api/internal/repository"
	"github.com/campushub/items-api/internal/sqlerr"
)

// ItemNotFoundMessage is the client-facing message for a missing item id.
const ItemNotFoundMessage = "Item not found"

// ItemInput carries the validated mutable fields of an item. It is the
// payload shape shared by Create and Update (full replacement).
type ItemInput struct {
	Title       string
	Description string
	Category    model.Category
}

// ItemService implements the item lifecycle: absent -> present ->
// (updated)* -> absent. Input shape validation has already happened in
// the handler layer by the time these methods run.
type ItemService struct {
	repo *repository.ItemRepository
}

// NewItemService constructs an ItemService over the given repository.
func NewItemService(repo *repository.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// Create persists a new item and returns it with the assigned id and
// timestamps.
func (s *ItemService) Create(ctx context.Context, input ItemInput) (*model.Item, error) {
	item := &model.Item{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return item, nil
}

// Get returns the item with the given id, or a not-found error.
func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewNotFoundError(ItemNotFoundMessage, false, nil)
		}
		return nil, sqlerr.HandleError(err)
	}
	return item, nil
}

// List returns all items in insertion order. An empty store yields an
// empty slice, not an error.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return items, nil
}

// Update replaces the mutable fields of an existing item and returns the
// updated row. id and created_at are preserved; updated_at is refreshed.
func (s *ItemService) Update(ctx context.Context, id int64, input ItemInput) (*model.Item, error) {
	item := &model.Item{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
	}

	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewNotFoundError(ItemNotFoundMessage, false, nil)
		}
		return nil, sqlerr.HandleError(err)
	}

	// Re-read so the response reflects the stored row, including the
	// immutable created_at the caller never sends.
	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return updated, nil
}

// Delete removes an item permanently. A second delete of the same id
// yields a not-found error.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NewNotFoundError(ItemNotFoundMessage, false, nil)
		}
		return sqlerr.HandleError(err)
	}
	return nil
}
