package handler

import (
	"github.com/campushub/items-api/internal/model"
	"github.com/campushub/items-api/internal/server"
	"github.com/campushub/items-api/internal/service"
	"github.com/campushub/items-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// ItemHandler serves the CRUD surface for campus items.
type ItemHandler struct {
	Handler
	items *service.ItemService
}

// NewItemHandler constructs an ItemHandler with access to shared app
// dependencies and the item service.
func NewItemHandler(s *server.Server, items *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

// CreateItemRequest is the payload for POST /items. Title must be
// non-empty and category must be one of the closed enumeration;
// description is optional.
type CreateItemRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required,oneof=news event announcement"`
}

func (r *CreateItemRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateItemRequest is the payload for PUT /items/:id. Update is a full
// replacement: the body is validated with exactly the Create rules.
type UpdateItemRequest struct {
	ID          int64  `json:"-" param:"id" validate:"required,min=1"`
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required,oneof=news event announcement"`
}

func (r *UpdateItemRequest) Validate() error {
	return validation.Struct(r)
}

// GetItemRequest identifies the item for GET /items/:id.
type GetItemRequest struct {
	ID int64 `json:"-" param:"id" validate:"required,min=1"`
}

func (r *GetItemRequest) Validate() error {
	return validation.Struct(r)
}

// DeleteItemRequest identifies the item for DELETE /items/:id.
type DeleteItemRequest struct {
	ID int64 `json:"-" param:"id" validate:"required,min=1"`
}

func (r *DeleteItemRequest) Validate() error {
	return validation.Struct(r)
}

// ListItemsRequest is the (empty) request for GET /items.
type ListItemsRequest struct{}

func (r *ListItemsRequest) Validate() error {
	return nil
}

// Create persists a new item and returns it with the assigned id and
// timestamps.
func (h *ItemHandler) Create(c echo.Context, req *CreateItemRequest) (*model.Item, error) {
	return h.items.Create(c.Request().Context(), service.ItemInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    model.Category(req.Category),
	})
}

// Get returns a single item by id.
func (h *ItemHandler) Get(c echo.Context, req *GetItemRequest) (*model.Item, error) {
	return h.items.Get(c.Request().Context(), req.ID)
}

// List returns all items in insertion order.
func (h *ItemHandler) List(c echo.Context, req *ListItemsRequest) ([]model.Item, error) {
	return h.items.List(c.Request().Context())
}

// Update replaces an existing item's mutable fields.
func (h *ItemHandler) Update(c echo.Context, req *UpdateItemRequest) (*model.Item, error) {
	return h.items.Update(c.Request().Context(), req.ID, service.ItemInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    model.Category(req.Category),
	})
}

// Delete removes an item permanently. The response carries no body.
func (h *ItemHandler) Delete(c echo.Context, req *DeleteItemRequest) error {
	return h.items.Delete(c.Request().Context(), req.ID)
}
