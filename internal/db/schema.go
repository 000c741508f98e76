package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteSchemaSQL is the todo schema for SQLite databases.
//
// This is the single source of truth for the SQLite schema. Tests load it via
// GetSchemaSQL() instead of hardcoding CREATE TABLE statements.
const SQLiteSchemaSQL = `
CREATE TABLE IF NOT EXISTS todo_list (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS todo_item (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	checked BOOLEAN NOT NULL DEFAULT FALSE,
	list_id INTEGER NOT NULL,
	FOREIGN KEY (list_id) REFERENCES todo_list(id)
);

CREATE INDEX IF NOT EXISTS idx_todo_item_list ON todo_item(list_id);
`

// PostgresSchemaSQL is the todo schema for Postgres databases.
const PostgresSchemaSQL = `
CREATE TABLE IF NOT EXISTS todo_list (
	id SERIAL PRIMARY KEY,
	title VARCHAR(150) NOT NULL
);

CREATE TABLE IF NOT EXISTS todo_item (
	id SERIAL PRIMARY KEY,
	title VARCHAR(150) NOT NULL,
	checked BOOLEAN NOT NULL DEFAULT FALSE,
	list_id INTEGER NOT NULL,
	FOREIGN KEY (list_id) REFERENCES todo_list(id)
);

CREATE INDEX IF NOT EXISTS idx_todo_item_list ON todo_item(list_id);
`

// GetSchemaSQL returns the authoritative schema SQL for a dialect.
func GetSchemaSQL(d Dialect) string {
	if d == DialectPostgres {
		return PostgresSchemaSQL
	}
	return SQLiteSchemaSQL
}

// InitSchema creates the todo tables if they do not exist yet.
// It never alters existing tables.
func InitSchema(ctx context.Context, database *sql.DB, d Dialect) error {
	if _, err := database.ExecContext(ctx, GetSchemaSQL(d)); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// TableExists reports whether the named table is present.
func TableExists(ctx context.Context, database *sql.DB, d Dialect, table string) (bool, error) {
	query := "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?"
	if d == DialectPostgres {
		query = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = ?"
	}

	var count int
	if err := database.QueryRowContext(ctx, d.Rebind(query), table).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", table, err)
	}
	return count > 0, nil
}
