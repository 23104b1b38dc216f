package openapi

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createRequest struct {
	Title    string `json:"title" validate:"required,min=1"`
	Category string `json:"category" validate:"required,oneof=news event announcement"`
}

type getRequest struct {
	ID int64 `json:"-" param:"id" validate:"required,min=1"`
}

type itemResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type errEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func newTestDocument() *Document {
	b := NewBuilder("Test API", "test", "1.0.0", &errEnvelope{})

	b.Add(http.MethodPost, "/items", OperationSpec{
		Summary:  "Create an item",
		Request:  &createRequest{},
		Response: itemResponse{},
		Status:   http.StatusCreated,
		Errors:   []int{http.StatusUnprocessableEntity},
	})
	b.Add(http.MethodGet, "/items", OperationSpec{
		Summary:  "List items",
		Response: []itemResponse{},
		Status:   http.StatusOK,
	})
	b.Add(http.MethodGet, "/items/:id", OperationSpec{
		Summary: "Get an item",
		Request: &getRequest{},
		Status:  http.StatusOK,
		Errors:  []int{http.StatusNotFound},
	})

	return b.Document()
}

func TestDocumentMetadata(t *testing.T) {
	doc := newTestDocument()

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "Test API", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
}

func TestPathParameterSyntaxConverted(t *testing.T) {
	doc := newTestDocument()

	assert.Contains(t, doc.Paths, "/items")
	assert.Contains(t, doc.Paths, "/items/{id}")
	assert.NotContains(t, doc.Paths, "/items/:id")
}

func TestOperationsGroupedByMethod(t *testing.T) {
	doc := newTestDocument()

	items := doc.Paths["/items"]
	require.Contains(t, items, "post")
	require.Contains(t, items, "get")
	assert.Equal(t, "post_items", items["post"].OperationID)

	single := doc.Paths["/items/{id}"]
	require.Contains(t, single, "get")
	assert.Equal(t, "get_items_id", single["get"].OperationID)
}

func TestRequestBodyReflectsTags(t *testing.T) {
	doc := newTestDocument()

	op := doc.Paths["/items"]["post"]
	require.NotNil(t, op.RequestBody)

	schema := op.RequestBody.Content["application/json"].Schema
	require.NotNil(t, schema)
	assert.Equal(t, "object", schema.Type)
	assert.ElementsMatch(t, []string{"title", "category"}, schema.Required)

	category := schema.Properties["category"]
	require.NotNil(t, category)
	assert.Equal(t, []string{"news", "event", "announcement"}, category.Enum)
}

func TestPathParameterFromParamTag(t *testing.T) {
	doc := newTestDocument()

	op := doc.Paths["/items/{id}"]["get"]
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "id", op.Parameters[0].Name)
	assert.Equal(t, "path", op.Parameters[0].In)
	assert.True(t, op.Parameters[0].Required)
	assert.Equal(t, "integer", op.Parameters[0].Schema.Type)

	// The json:"-" param field never leaks into a request body.
	assert.Nil(t, op.RequestBody)
}

func TestResponseSchemasUseComponents(t *testing.T) {
	doc := newTestDocument()

	op := doc.Paths["/items"]["post"]
	created := op.Responses["201"]
	require.NotNil(t, created)
	assert.Equal(t, "#/components/schemas/itemResponse",
		created.Content["application/json"].Schema.Ref)

	component := doc.Components.Schemas["itemResponse"]
	require.NotNil(t, component)
	assert.Equal(t, "integer", component.Properties["id"].Type)
	assert.Equal(t, "int64", component.Properties["id"].Format)
	assert.Equal(t, "date-time", component.Properties["created_at"].Format)

	list := doc.Paths["/items"]["get"].Responses["200"]
	require.NotNil(t, list)
	listSchema := list.Content["application/json"].Schema
	assert.Equal(t, "array", listSchema.Type)
	assert.Equal(t, "#/components/schemas/itemResponse", listSchema.Items.Ref)
}

func TestErrorResponsesShareEnvelope(t *testing.T) {
	doc := newTestDocument()

	unprocessable := doc.Paths["/items"]["post"].Responses["422"]
	require.NotNil(t, unprocessable)
	assert.Equal(t, "#/components/schemas/errEnvelope",
		unprocessable.Content["application/json"].Schema.Ref)

	notFound := doc.Paths["/items/{id}"]["get"].Responses["404"]
	require.NotNil(t, notFound)
	assert.Equal(t, "#/components/schemas/errEnvelope",
		notFound.Content["application/json"].Schema.Ref)
}

func TestDocumentSerializes(t *testing.T) {
	data, err := json.Marshal(newTestDocument())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"openapi":"3.0.3"`)
}
