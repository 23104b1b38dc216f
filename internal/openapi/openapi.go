// Package openapi builds the service's OpenAPI 3 document from the
// declared request and response types.
//
// The document is not hand-authored: schemas are reflected from the same
// structs the binder and validator read, so the served documentation can
// never drift from the actual request/response contracts. `json` tags
// name the properties, `param` tags become path parameters, and
// `validate` tags contribute required fields and enumerations.
package openapi

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Document is the root OpenAPI 3 object served at the documentation path.
type Document struct {
	OpenAPI    string              `json:"openapi"`
	Info       Info                `json:"info"`
	Paths      map[string]PathItem `json:"paths"`
	Components Components          `json:"components"`
}

// Info describes the API.
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// PathItem maps lowercase HTTP methods to their operations.
type PathItem map[string]*Operation

// Components holds the named schemas referenced from operations.
type Components struct {
	Schemas map[string]*Schema `json:"schemas"`
}

// Operation describes one method+path pair.
type Operation struct {
	Summary     string               `json:"summary,omitempty"`
	OperationID string               `json:"operationId,omitempty"`
	Parameters  []Parameter          `json:"parameters,omitempty"`
	RequestBody *RequestBody         `json:"requestBody,omitempty"`
	Responses   map[string]*Response `json:"responses"`
}

// Parameter describes a path parameter.
type Parameter struct {
	Name     string  `json:"name"`
	In       string  `json:"in"`
	Required bool    `json:"required"`
	Schema   *Schema `json:"schema,omitempty"`
}

// RequestBody describes a JSON request payload.
type RequestBody struct {
	Required bool                 `json:"required"`
	Content  map[string]MediaType `json:"content"`
}

// MediaType wraps the schema for one content type.
type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Response describes one status code outcome.
type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

// Schema is a JSON schema node. Named struct types are registered as
// components and referenced via Ref.
type Schema struct {
	Ref        string             `json:"$ref,omitempty"`
	Type       string             `json:"type,omitempty"`
	Format     string             `json:"format,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

// OperationSpec declares one operation in terms of Go types.
//
// Request, when non-nil, is the (pointer to the) request struct: its
// param-tagged fields become path parameters and its json-tagged fields
// become the request body schema. Response, when non-nil, is a value of
// the success response type. Errors lists the HTTP error statuses the
// operation can produce; they all share the error envelope schema.
type OperationSpec struct {
	Summary  string
	Request  any
	Response any
	Status   int
	Errors   []int
}

// Builder assembles a Document operation by operation.
type Builder struct {
	doc      *Document
	errType  reflect.Type
	jsonMime string
}

// NewBuilder starts a document with the given API metadata. errEnvelope
// is a value of the error response type every error status refers to.
func NewBuilder(title, description, version string, errEnvelope any) *Builder {
	b := &Builder{
		doc: &Document{
			OpenAPI: "3.0.3",
			Info: Info{
				Title:       title,
				Description: description,
				Version:     version,
			},
			Paths:      map[string]PathItem{},
			Components: Components{Schemas: map[string]*Schema{}},
		},
		jsonMime: "application/json",
	}
	if errEnvelope != nil {
		b.errType = derefType(reflect.TypeOf(errEnvelope))
	}
	return b
}

// Add registers one operation. path uses Echo's ":name" parameter syntax
// and is converted to OpenAPI's "{name}" form.
func (b *Builder) Add(method, path string, spec OperationSpec) {
	docPath := echoPathToOpenAPI(path)

	op := &Operation{
		Summary:     spec.Summary,
		OperationID: operationID(method, docPath),
		Responses:   map[string]*Response{},
	}

	if spec.Request != nil {
		op.Parameters, op.RequestBody = b.buildRequest(reflect.TypeOf(spec.Request))
	}

	status := spec.Status
	if status == 0 {
		status = http.StatusOK
	}
	success := &Response{Description: http.StatusText(status)}
	if spec.Response != nil {
		success.Content = map[string]MediaType{
			b.jsonMime: {Schema: b.schemaFor(reflect.TypeOf(spec.Response))},
		}
	}
	op.Responses[strconv.Itoa(status)] = success

	for _, errStatus := range spec.Errors {
		resp := &Response{Description: http.StatusText(errStatus)}
		if b.errType != nil {
			resp.Content = map[string]MediaType{
				b.jsonMime: {Schema: b.schemaFor(b.errType)},
			}
		}
		op.Responses[strconv.Itoa(errStatus)] = resp
	}

	if b.doc.Paths[docPath] == nil {
		b.doc.Paths[docPath] = PathItem{}
	}
	b.doc.Paths[docPath][strings.ToLower(method)] = op
}

// Document returns the assembled document.
func (b *Builder) Document() *Document {
	return b.doc
}

// buildRequest splits a request struct into path parameters (param tags)
// and a JSON body schema (json tags).
func (b *Builder) buildRequest(t reflect.Type) ([]Parameter, *RequestBody) {
	t = derefType(t)
	if t.Kind() != reflect.Struct {
		return nil, nil
	}

	var params []Parameter
	body := &Schema{Type: "object", Properties: map[string]*Schema{}}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		rules := validateRules(field)

		if name := field.Tag.Get("param"); name != "" {
			params = append(params, Parameter{
				Name:     name,
				In:       "path",
				Required: true,
				Schema:   applyRules(b.fieldSchema(field.Type), rules),
			})
			continue
		}

		name := jsonName(field)
		if name == "" {
			continue
		}

		body.Properties[name] = applyRules(b.fieldSchema(field.Type), rules)
		if rules.required {
			body.Required = append(body.Required, name)
		}
	}

	if len(body.Properties) == 0 {
		return params, nil
	}

	return params, &RequestBody{
		Required: true,
		Content:  map[string]MediaType{b.jsonMime: {Schema: body}},
	}
}

// schemaFor resolves the schema for a response or component type. Named
// struct types are registered once under components and referenced.
func (b *Builder) schemaFor(t reflect.Type) *Schema {
	t = derefType(t)

	if t == timeType {
		return &Schema{Type: "string", Format: "date-time"}
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: b.schemaFor(t.Elem())}
	case reflect.Struct:
		name := t.Name()
		if name == "" {
			return b.structSchema(t)
		}
		if _, ok := b.doc.Components.Schemas[name]; !ok {
			// Reserve the slot first so self-referential types terminate.
			b.doc.Components.Schemas[name] = &Schema{}
			*b.doc.Components.Schemas[name] = *b.structSchema(t)
		}
		return &Schema{Ref: "#/components/schemas/" + name}
	default:
		return b.fieldSchema(t)
	}
}

// structSchema reflects an object schema from a struct's json-tagged
// fields, honoring required/oneof validate rules.
func (b *Builder) structSchema(t reflect.Type) *Schema {
	s := &Schema{Type: "object", Properties: map[string]*Schema{}}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := jsonName(field)
		if name == "" {
			continue
		}

		rules := validateRules(field)
		s.Properties[name] = applyRules(b.fieldSchema(field.Type), rules)
		if rules.required {
			s.Required = append(s.Required, name)
		}
	}

	return s
}

// fieldSchema maps a Go type to its scalar/array/object schema.
func (b *Builder) fieldSchema(t reflect.Type) *Schema {
	t = derefType(t)

	if t == timeType {
		return &Schema{Type: "string", Format: "date-time"}
	}

	switch t.Kind() {
	case reflect.String:
		return &Schema{Type: "string"}
	case reflect.Bool:
		return &Schema{Type: "boolean"}
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return &Schema{Type: "integer", Format: "int64"}
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return &Schema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}
	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: b.fieldSchema(t.Elem())}
	case reflect.Struct:
		return b.schemaFor(t)
	default:
		return &Schema{Type: "object"}
	}
}

// rules carries the schema-relevant subset of a validate tag.
type rules struct {
	required bool
	enum     []string
}

func validateRules(field reflect.StructField) rules {
	var r rules
	tag := field.Tag.Get("validate")
	if tag == "" {
		return r
	}
	for _, part := range strings.Split(tag, ",") {
		switch {
		case part == "required":
			r.required = true
		case strings.HasPrefix(part, "oneof="):
			r.enum = strings.Fields(strings.TrimPrefix(part, "oneof="))
		}
	}
	return r
}

func applyRules(s *Schema, r rules) *Schema {
	if len(r.enum) > 0 && s.Ref == "" {
		s.Enum = r.enum
	}
	return s
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if tag == "" {
		// No json tag means the field is not part of the JSON body
		// (e.g. a param-only field); skip it.
		return ""
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

func echoPathToOpenAPI(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + strings.TrimPrefix(seg, ":") + "}"
		}
	}
	return strings.Join(segments, "/")
}

func operationID(method, docPath string) string {
	clean := strings.NewReplacer("/", "_", "{", "", "}", "").Replace(strings.Trim(docPath, "/"))
	if clean == "" {
		clean = "root"
	}
	return strings.ToLower(method) + "_" + clean
}

var timeType = reflect.TypeOf(time.Time{})

// derefType unwraps pointer types to the underlying type.
func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
