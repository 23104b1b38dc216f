package router

import (
	"net/http"

	"github.com/campushub/items-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerItemRoutes maps the item CRUD surface.
func registerItemRoutes(r *echo.Echo, h *handler.Handlers) {
	items := r.Group("/items")

	items.POST("", handler.Handle(h.Items.Handler, h.Items.Create, http.StatusCreated, &handler.CreateItemRequest{}))
	items.GET("", handler.Handle(h.Items.Handler, h.Items.List, http.StatusOK, &handler.ListItemsRequest{}))
	items.GET("/:id", handler.Handle(h.Items.Handler, h.Items.Get, http.StatusOK, &handler.GetItemRequest{}))
	items.PUT("/:id", handler.Handle(h.Items.Handler, h.Items.Update, http.StatusOK, &handler.UpdateItemRequest{}))
	items.DELETE("/:id", handler.HandleNoContent(h.Items.Handler, h.Items.Delete, http.StatusNoContent, &handler.DeleteItemRequest{}))
}
