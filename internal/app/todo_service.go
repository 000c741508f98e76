package app

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/example/todod/internal/core/todo"
	"github.com/example/todod/internal/ctxutil"
	"github.com/example/todod/internal/ports/primary"
	"github.com/example/todod/internal/ports/secondary"
)

// TodoServiceImpl implements the TodoService interface.
// Every operation acquires its own connection and releases it before returning.
type TodoServiceImpl struct {
	pool   secondary.ConnPool
	logger *log.Logger
}

// NewTodoService creates a new TodoService with injected dependencies.
func NewTodoService(pool secondary.ConnPool, logger *log.Logger) *TodoServiceImpl {
	return &TodoServiceImpl{
		pool:   pool,
		logger: logger,
	}
}

// Status reports liveness without touching the database.
func (s *TodoServiceImpl) Status(ctx context.Context) *primary.Status {
	return &primary.Status{Status: primary.StatusNormal}
}

// ListTodos retrieves all todo lists, newest first.
func (s *TodoServiceImpl) ListTodos(ctx context.Context) ([]*primary.TodoList, error) {
	logger := s.handlerLogger(ctx, "get_todos")

	conn, err := s.acquire(ctx, logger)
	if err != nil {
		return nil, err
	}
	defer s.release(conn, logger)

	records, err := conn.GetTodos(ctx)
	if err != nil {
		return nil, s.databaseError(logger, "Error getting todo lists", err)
	}

	todos := make([]*primary.TodoList, len(records))
	for i, r := range records {
		todos[i] = recordToTodoList(r)
	}
	return todos, nil
}

// ListItems retrieves the items of a list. An unknown list yields an empty slice.
func (s *TodoServiceImpl) ListItems(ctx context.Context, listID int64) ([]*primary.TodoItem, error) {
	logger := s.handlerLogger(ctx, "get_items").With("list_id", listID)

	conn, err := s.acquire(ctx, logger)
	if err != nil {
		return nil, err
	}
	defer s.release(conn, logger)

	records, err := conn.GetItems(ctx, listID)
	if err != nil {
		return nil, s.databaseError(logger, "Error getting todo items", err)
	}

	items := make([]*primary.TodoItem, len(records))
	for i, r := range records {
		items[i] = recordToTodoItem(r)
	}
	return items, nil
}

// CreateTodo creates a new todo list.
func (s *TodoServiceImpl) CreateTodo(ctx context.Context, req primary.CreateTodoRequest) (*primary.TodoList, error) {
	logger := s.handlerLogger(ctx, "create_todo")

	conn, err := s.acquire(ctx, logger)
	if err != nil {
		return nil, err
	}
	defer s.release(conn, logger)

	record, err := conn.CreateTodo(ctx, req.Title)
	if errors.Is(err, secondary.ErrEmptyInsert) {
		logger.Error("Insert returned no row")
		return nil, &todo.DatabaseError{Message: "Error creating todo list", Cause: err.Error()}
	}
	if err != nil {
		return nil, s.databaseError(logger, "Error creating todo list", err)
	}

	logger.Debug("Created todo list", "list_id", record.ID)
	return recordToTodoList(record), nil
}

// CheckItem marks an unchecked item as checked.
// A check that matches no unchecked item is reported as Success=false, not as an error.
func (s *TodoServiceImpl) CheckItem(ctx context.Context, listID, itemID int64) (*primary.CheckItemResponse, error) {
	logger := s.handlerLogger(ctx, "check_item").With("list_id", listID, "item_id", itemID)

	conn, err := s.acquire(ctx, logger)
	if err != nil {
		return nil, err
	}
	defer s.release(conn, logger)

	err = conn.CheckItem(ctx, listID, itemID)
	if errors.Is(err, secondary.ErrNotApplicable) {
		logger.Debug("No unchecked item matched")
		return &primary.CheckItemResponse{Success: false}, nil
	}
	if err != nil {
		return nil, s.databaseError(logger, "Error checking todo item", err)
	}

	return &primary.CheckItemResponse{Success: true}, nil
}

// Helper methods

func (s *TodoServiceImpl) handlerLogger(ctx context.Context, handler string) *log.Logger {
	logger := s.logger.With("handler", handler)
	if id := ctxutil.RequestIDFromContext(ctx); id != "" {
		logger = logger.With("request_id", id)
	}
	return logger
}

func (s *TodoServiceImpl) acquire(ctx context.Context, logger *log.Logger) (secondary.TodoConn, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		logger.Error("Error creating client", "cause", err)
		return nil, todo.NewDatabaseError(err)
	}
	return conn, nil
}

func (s *TodoServiceImpl) release(conn secondary.TodoConn, logger *log.Logger) {
	if err := conn.Release(); err != nil {
		logger.Warn("Error releasing client", "cause", err)
	}
}

// databaseError logs a driver failure and converts it to the client-facing error.
// The message is only logged; clients get the default text.
func (s *TodoServiceImpl) databaseError(logger *log.Logger, msg string, err error) *todo.DatabaseError {
	logger.Error(msg, "cause", err)
	return todo.NewDatabaseError(err)
}

func recordToTodoList(r *secondary.TodoListRecord) *primary.TodoList {
	return &primary.TodoList{
		ID:    r.ID,
		Title: r.Title,
	}
}

func recordToTodoItem(r *secondary.TodoItemRecord) *primary.TodoItem {
	return &primary.TodoItem{
		ID:      r.ID,
		Title:   r.Title,
		Checked: r.Checked,
		ListID:  r.ListID,
	}
}

// Ensure TodoServiceImpl implements the interface.
var _ primary.TodoService = (*TodoServiceImpl)(nil)
