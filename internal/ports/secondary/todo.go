package secondary

import (
	"context"
	"errors"
)

// Expected data access outcomes. Every other error is an unexpected driver failure.
var (
	// ErrEmptyInsert is returned when an INSERT ... RETURNING yields no row.
	ErrEmptyInsert = errors.New("insert returned no row")

	// ErrNotApplicable is returned when a check matched no unchecked item.
	// Missing item, wrong list and already checked are not distinguished.
	ErrNotApplicable = errors.New("no unchecked item matched")
)

// ConnPool defines the secondary port for the database connection pool.
type ConnPool interface {
	// Acquire hands out an exclusive connection. It may block while the pool is exhausted.
	Acquire(ctx context.Context) (TodoConn, error)

	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error

	// Close closes the pool and all idle connections.
	Close() error
}

// TodoConn is an acquired connection exposing todo persistence.
// It must be released exactly once.
type TodoConn interface {
	// GetTodos retrieves all todo lists ordered by ID descending.
	GetTodos(ctx context.Context) ([]*TodoListRecord, error)

	// GetItems retrieves the items of a list ordered by ID.
	GetItems(ctx context.Context, listID int64) ([]*TodoItemRecord, error)

	// CreateTodo persists a new todo list and returns it with its generated ID.
	CreateTodo(ctx context.Context, title string) (*TodoListRecord, error)

	// CheckItem flips checked from false to true for one item of a list.
	CheckItem(ctx context.Context, listID, itemID int64) error

	// Release returns the connection to the pool.
	Release() error
}

// TodoListRecord represents a todo list as stored in persistence.
type TodoListRecord struct {
	ID    int64
	Title string
}

// TodoItemRecord represents a todo item as stored in persistence.
type TodoItemRecord struct {
	ID      int64
	Title   string
	Checked bool
	ListID  int64
}
