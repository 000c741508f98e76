package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/example/todod/internal/ports/primary"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

const createTodoSchemaURL = "create_todo.schema.json"

// createTodoSchema describes the POST /todos body. Unknown fields are ignored.
const createTodoSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"title": {"type": "string"}
	},
	"required": ["title"]
}`

// BodyValidator binds JSON request bodies after checking them against a schema.
type BodyValidator struct {
	createTodo *jsonschema.Schema
}

// NewBodyValidator compiles the request body schemas.
func NewBodyValidator() (*BodyValidator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(createTodoSchemaURL, strings.NewReader(createTodoSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}

	schema, err := compiler.Compile(createTodoSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &BodyValidator{createTodo: schema}, nil
}

// CreateTodo binds a POST /todos body.
func (v *BodyValidator) CreateTodo(w http.ResponseWriter, r *http.Request) (primary.CreateTodoRequest, error) {
	var req primary.CreateTodoRequest
	err := decode(w, r, v.createTodo, &req)
	return req, err
}

// decode reads the request body, validates it against schema and unmarshals it into dst.
func decode(w http.ResponseWriter, r *http.Request, schema *jsonschema.Schema, dst any) error {
	if err := requireJSON(r); err != nil {
		return err
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid request body: %s", firstValidationMessage(err))
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}

// requireJSON rejects bodies whose Content-Type is not application/json or a +json type.
func requireJSON(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return fmt.Errorf("content type must be application/json")
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return fmt.Errorf("invalid content type %q: %w", ct, err)
	}
	if mediaType != "application/json" && !strings.HasSuffix(mediaType, "+json") {
		return fmt.Errorf("content type must be application/json, got %q", mediaType)
	}
	return nil
}

// firstValidationMessage returns the innermost message of a schema validation error.
func firstValidationMessage(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return fmt.Sprintf("%s: %s", ve.InstanceLocation, ve.Message)
}
