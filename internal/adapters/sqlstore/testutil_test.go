// Package sqlstore_test contains integration tests for the SQL data access functions.
//
// All test databases are built from db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not hardcode CREATE TABLE statements in test files.
package sqlstore_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/todod/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// The pool is capped at one connection so every caller sees the same memory database;
// seed before acquiring a connection and release it before querying testDB again.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL(db.DialectSQLite))
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedList inserts a todo list and returns its ID.
func seedList(t *testing.T, db *sql.DB, title string) int64 {
	t.Helper()
	if title == "" {
		title = "Test List"
	}
	result, err := db.Exec("INSERT INTO todo_list (title) VALUES (?)", title)
	if err != nil {
		t.Fatalf("failed to seed list: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read list ID: %v", err)
	}
	return id
}

// seedItem inserts an unchecked item into a list and returns its ID.
func seedItem(t *testing.T, db *sql.DB, listID int64, title string) int64 {
	t.Helper()
	if title == "" {
		title = "Test Item"
	}
	result, err := db.Exec("INSERT INTO todo_item (title, checked, list_id) VALUES (?, false, ?)", title, listID)
	if err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read item ID: %v", err)
	}
	return id
}

// isChecked reads the checked flag of an item directly.
func isChecked(t *testing.T, db *sql.DB, itemID int64) bool {
	t.Helper()
	var checked bool
	if err := db.QueryRow("SELECT checked FROM todo_item WHERE id = ?", itemID).Scan(&checked); err != nil {
		t.Fatalf("failed to read item %d: %v", itemID, err)
	}
	return checked
}
