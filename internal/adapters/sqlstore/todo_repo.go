package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/todod/internal/ports/secondary"
)

// Preparer is anything a statement can be prepared on: *Conn, *sql.Conn, *sql.DB or *sql.Tx.
// Queries use '?' placeholders; *Conn rebinds them for the active dialect.
type Preparer interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

const (
	getTodosSQL   = "SELECT * FROM todo_list ORDER BY id DESC"
	getItemsSQL   = "SELECT * FROM todo_item WHERE list_id = ? ORDER BY id"
	createTodoSQL = "INSERT INTO todo_list (title) VALUES (?) RETURNING id, title"
	checkItemSQL  = "UPDATE todo_item SET checked = true WHERE list_id = ? AND id = ? AND checked = false"
)

// GetTodos retrieves all todo lists ordered by ID descending.
func GetTodos(ctx context.Context, conn Preparer) ([]*secondary.TodoListRecord, error) {
	stmt, err := conn.PrepareContext(ctx, getTodosSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare todo list query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todo lists: %w", err)
	}
	defer rows.Close()

	todos := []*secondary.TodoListRecord{}
	err = scanAll(rows, func(row rowValues) error {
		record, err := mapTodoList(row)
		if err != nil {
			return err
		}
		todos = append(todos, record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read todo lists: %w", err)
	}

	return todos, nil
}

// GetItems retrieves the items of a list ordered by ID. An unknown list yields an empty slice.
func GetItems(ctx context.Context, conn Preparer, listID int64) ([]*secondary.TodoItemRecord, error) {
	stmt, err := conn.PrepareContext(ctx, getItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare todo item query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todo items: %w", err)
	}
	defer rows.Close()

	items := []*secondary.TodoItemRecord{}
	err = scanAll(rows, func(row rowValues) error {
		record, err := mapTodoItem(row)
		if err != nil {
			return err
		}
		items = append(items, record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read todo items: %w", err)
	}

	return items, nil
}

// CreateTodo persists a new todo list and returns the stored row.
// Returns secondary.ErrEmptyInsert if the insert produced no row.
func CreateTodo(ctx context.Context, conn Preparer, title string) (*secondary.TodoListRecord, error) {
	stmt, err := conn.PrepareContext(ctx, createTodoSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare todo list insert: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo list: %w", err)
	}
	defer rows.Close()

	var created *secondary.TodoListRecord
	err = scanAll(rows, func(row rowValues) error {
		record, err := mapTodoList(row)
		if err != nil {
			return err
		}
		created = record
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read created todo list: %w", err)
	}

	if created == nil {
		return nil, secondary.ErrEmptyInsert
	}

	return created, nil
}

// CheckItem marks one unchecked item of a list as checked.
// Returns secondary.ErrNotApplicable unless exactly one row was updated.
func CheckItem(ctx context.Context, conn Preparer, listID, itemID int64) error {
	stmt, err := conn.PrepareContext(ctx, checkItemSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare todo item update: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, listID, itemID)
	if err != nil {
		return fmt.Errorf("failed to check todo item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rowsAffected != 1 {
		return secondary.ErrNotApplicable
	}

	return nil
}
