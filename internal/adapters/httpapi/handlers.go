package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/example/todod/internal/core/todo"
	"github.com/example/todod/internal/ports/primary"
)

// Handlers holds one HTTP handler per route.
type Handlers struct {
	service   primary.TodoService
	validator *BodyValidator
}

// NewHandlers creates the route handlers for a service.
func NewHandlers(service primary.TodoService) (*Handlers, error) {
	validator, err := NewBodyValidator()
	if err != nil {
		return nil, err
	}
	return &Handlers{service: service, validator: validator}, nil
}

// Status handles GET /.
func (h *Handlers) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Status(r.Context()))
}

// GetTodos handles GET /todos.
func (h *Handlers) GetTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.service.ListTodos(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

// CreateTodo handles POST /todos.
func (h *Handlers) CreateTodo(w http.ResponseWriter, r *http.Request) {
	req, err := h.validator.CreateTodo(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, todo.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.CreateTodo(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// GetItems handles GET /todos/{list_id}/items.
func (h *Handlers) GetItems(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathID(r, "list_id")
	if !ok {
		notFound(w, r)
		return
	}

	items, err := h.service.ListItems(r.Context(), listID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// CheckItem handles PUT /todos/{list_id}/items/{item_id}.
// The outcome is in the body: a check that matched nothing is still a 200.
func (h *Handlers) CheckItem(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathID(r, "list_id")
	if !ok {
		notFound(w, r)
		return
	}
	itemID, ok := pathID(r, "item_id")
	if !ok {
		notFound(w, r)
		return
	}

	resp, err := h.service.CheckItem(r.Context(), listID, itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// pathID parses an integer path parameter. IDs are 32-bit in the schema, so a
// segment that is not an int32 does not match the route.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError translates a service error into its status and single-field body.
func writeError(w http.ResponseWriter, err error) {
	status, body := todo.Translate(todo.AsAppError(err))
	writeJSON(w, status, body)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, todo.ErrorResponse{Error: http.StatusText(http.StatusNotFound)})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, todo.ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)})
}
