// Package sqlstore contains database/sql implementations of the persistence ports.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/todod/internal/db"
	"github.com/example/todod/internal/ports/secondary"
)

// Pool implements secondary.ConnPool over a *sql.DB.
type Pool struct {
	db      *sql.DB
	dialect db.Dialect
}

// NewPool creates a new pool adapter around an opened database.
func NewPool(database *sql.DB, dialect db.Dialect) *Pool {
	return &Pool{db: database, dialect: dialect}
}

// Acquire takes an exclusive connection from the pool.
func (p *Pool) Acquire(ctx context.Context) (secondary.TodoConn, error) {
	c, err := p.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return &Conn{conn: c, dialect: p.dialect}, nil
}

// Ping verifies the database is reachable.
func (p *Pool) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the underlying database.
func (p *Pool) Close() error {
	return p.db.Close()
}

// Conn implements secondary.TodoConn on one pooled connection.
type Conn struct {
	conn    *sql.Conn
	dialect db.Dialect
}

// PrepareContext prepares a '?'-placeholder query in the connection's dialect.
func (c *Conn) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return c.conn.PrepareContext(ctx, c.dialect.Rebind(query))
}

// GetTodos retrieves all todo lists ordered by ID descending.
func (c *Conn) GetTodos(ctx context.Context) ([]*secondary.TodoListRecord, error) {
	return GetTodos(ctx, c)
}

// GetItems retrieves the items of a list ordered by ID.
func (c *Conn) GetItems(ctx context.Context, listID int64) ([]*secondary.TodoItemRecord, error) {
	return GetItems(ctx, c, listID)
}

// CreateTodo persists a new todo list.
func (c *Conn) CreateTodo(ctx context.Context, title string) (*secondary.TodoListRecord, error) {
	return CreateTodo(ctx, c, title)
}

// CheckItem flips checked from false to true for one item of a list.
func (c *Conn) CheckItem(ctx context.Context, listID, itemID int64) error {
	return CheckItem(ctx, c, listID, itemID)
}

// Release returns the connection to the pool.
func (c *Conn) Release() error {
	return c.conn.Close()
}

// Ensure Pool and Conn implement the interfaces.
var (
	_ secondary.ConnPool = (*Pool)(nil)
	_ secondary.TodoConn = (*Conn)(nil)
)
