package sqlstore

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/todod/internal/ports/secondary"
)

// MappingError reports a result column that is missing or holds an unexpected type.
type MappingError struct {
	Column string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
}

// rowValues holds one result row keyed by lower-cased column name.
type rowValues map[string]any

// scanAll reads every row of rows by column name and hands it to fn.
func scanAll(rows *sql.Rows, fn func(row rowValues) error) error {
	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return err
		}

		row := make(rowValues, len(columns))
		for i, name := range columns {
			row[strings.ToLower(name)] = values[i]
		}
		if err := fn(row); err != nil {
			return err
		}
	}

	return rows.Err()
}

func (r rowValues) lookup(column string) (any, error) {
	v, ok := r[column]
	if !ok {
		return nil, &MappingError{Column: column, Reason: "not in result"}
	}
	if v == nil {
		return nil, &MappingError{Column: column, Reason: "unexpected NULL"}
	}
	return v, nil
}

func (r rowValues) intColumn(column string) (int64, error) {
	v, err := r.lookup(column)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	default:
		return 0, &MappingError{Column: column, Reason: fmt.Sprintf("want integer, got %T", v)}
	}
}

func (r rowValues) textColumn(column string) (string, error) {
	v, err := r.lookup(column)
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", &MappingError{Column: column, Reason: fmt.Sprintf("want text, got %T", v)}
	}
}

func (r rowValues) boolColumn(column string) (bool, error) {
	v, err := r.lookup(column)
	if err != nil {
		return false, err
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case int64:
		// SQLite stores booleans as 0/1 when the column is not declared BOOLEAN
		if b == 0 || b == 1 {
			return b == 1, nil
		}
	}
	return false, &MappingError{Column: column, Reason: fmt.Sprintf("want boolean, got %T(%v)", v, v)}
}

func mapTodoList(row rowValues) (*secondary.TodoListRecord, error) {
	id, err := row.intColumn("id")
	if err != nil {
		return nil, err
	}
	title, err := row.textColumn("title")
	if err != nil {
		return nil, err
	}
	return &secondary.TodoListRecord{ID: id, Title: title}, nil
}

func mapTodoItem(row rowValues) (*secondary.TodoItemRecord, error) {
	id, err := row.intColumn("id")
	if err != nil {
		return nil, err
	}
	title, err := row.textColumn("title")
	if err != nil {
		return nil, err
	}
	checked, err := row.boolColumn("checked")
	if err != nil {
		return nil, err
	}
	listID, err := row.intColumn("list_id")
	if err != nil {
		return nil, err
	}
	return &secondary.TodoItemRecord{ID: id, Title: title, Checked: checked, ListID: listID}, nil
}
