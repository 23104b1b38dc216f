package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/campushub/items-api/internal/errs"
	"github.com/campushub/items-api/internal/model"
	"github.com/campushub/items-api/internal/openapi"
	"github.com/campushub/items-api/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API documentation.
//
// The machine-readable document at /openapi.json is generated from the
// declared request/response types at construction time; the UI page at
// /docs is a static HTML file that loads it.
type OpenAPIHandler struct {
	Handler
	doc *openapi.Document
}

// NewOpenAPIHandler constructs an OpenAPIHandler and builds the document.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		doc:     buildDocument(),
	}
}

// buildDocument declares every API operation in terms of the handler's
// request/response types. The schemas themselves are reflected from the
// structs, so the document follows the code.
func buildDocument() *openapi.Document {
	b := openapi.NewBuilder(
		"Campus Items API",
		"REST API for managing campus news posts, events, and announcements",
		"1.0.0",
		&errs.HTTPError{},
	)

	b.Add(http.MethodPost, "/items", openapi.OperationSpec{
		Summary:  "Create an item",
		Request:  &CreateItemRequest{},
		Response: model.Item{},
		Status:   http.StatusCreated,
		Errors:   []int{http.StatusUnprocessableEntity},
	})
	b.Add(http.MethodGet, "/items", openapi.OperationSpec{
		Summary:  "List all items",
		Response: []model.Item{},
		Status:   http.StatusOK,
	})
	b.Add(http.MethodGet, "/items/:id", openapi.OperationSpec{
		Summary:  "Get an item by id",
		Request:  &GetItemRequest{},
		Response: model.Item{},
		Status:   http.StatusOK,
		Errors:   []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	})
	b.Add(http.MethodPut, "/items/:id", openapi.OperationSpec{
		Summary:  "Replace an item",
		Request:  &UpdateItemRequest{},
		Response: model.Item{},
		Status:   http.StatusOK,
		Errors:   []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	})
	b.Add(http.MethodDelete, "/items/:id", openapi.OperationSpec{
		Summary: "Delete an item",
		Request: &DeleteItemRequest{},
		Status:  http.StatusNoContent,
		Errors:  []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	})

	return b.Document()
}

// Document exposes the generated document (used by tests).
func (h *OpenAPIHandler) Document() *openapi.Document {
	return h.doc
}

// ServeOpenAPISpec returns the generated OpenAPI document as JSON.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.JSON(http.StatusOK, h.doc)
}

// ServeOpenAPIUI reads static/openapi.html and serves it as an HTML
// response. Cache-Control is set to no-cache so clients do not reuse an
// old docs UI page.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile("static/openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	return c.HTML(http.StatusOK, string(templateBytes))
}
