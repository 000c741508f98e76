package primary

import "context"

// TodoService defines the primary port for todo list operations.
type TodoService interface {
	// Status reports service liveness without touching the database.
	Status(ctx context.Context) *Status

	// ListTodos retrieves all todo lists, newest first.
	ListTodos(ctx context.Context) ([]*TodoList, error)

	// ListItems retrieves the items of a list ordered by ID.
	// An unknown list yields an empty slice, not an error.
	ListItems(ctx context.Context, listID int64) ([]*TodoItem, error)

	// CreateTodo creates a new todo list.
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*TodoList, error)

	// CheckItem marks an unchecked item of a list as checked.
	// Success is false when no unchecked item matched both IDs.
	CheckItem(ctx context.Context, listID, itemID int64) (*CheckItemResponse, error)
}

// StatusNormal is the only status the service reports.
const StatusNormal = "Normal"

// Status is the liveness payload.
type Status struct {
	Status string `json:"status"`
}

// CreateTodoRequest contains parameters for creating a todo list.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// CheckItemResponse contains the outcome of checking an item.
type CheckItemResponse struct {
	Success bool `json:"success"`
}

// TodoList represents a todo list at the port boundary.
type TodoList struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// TodoItem represents a todo item at the port boundary.
type TodoItem struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Checked bool   `json:"checked"`
	ListID  int64  `json:"list_id"`
}
