// Package wire provides dependency injection for todod.
// It builds one explicit App value at startup; nothing is held in package state.
package wire

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/example/todod/internal/adapters/httpapi"
	"github.com/example/todod/internal/adapters/sqlstore"
	"github.com/example/todod/internal/app"
	"github.com/example/todod/internal/config"
	"github.com/example/todod/internal/db"
	"github.com/example/todod/internal/ports/primary"
	"github.com/example/todod/internal/ports/secondary"
)

// App holds the dependencies shared by every request.
// The pool and the logger are safe for concurrent use.
type App struct {
	Config  *config.Config
	Logger  *log.Logger
	DB      *sql.DB
	Dialect db.Dialect
	Pool    secondary.ConnPool
	Service primary.TodoService
	Router  http.Handler
}

// New opens the configured database and wires the application around it.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	database, dialect, err := db.Open(ctx, cfg.PG)
	if err != nil {
		return nil, err
	}

	a, err := NewWithDB(database, dialect, cfg, logger)
	if err != nil {
		database.Close()
		return nil, err
	}
	return a, nil
}

// NewWithDB wires the application around an already opened database.
func NewWithDB(database *sql.DB, dialect db.Dialect, cfg *config.Config, logger *log.Logger) (*App, error) {
	// Create the pool adapter (secondary port)
	pool := sqlstore.NewPool(database, dialect)

	// Create the service (primary port implementation)
	service := app.NewTodoService(pool, logger)

	// Create the HTTP adapter
	router, err := httpapi.NewRouter(service, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		DB:      database,
		Dialect: dialect,
		Pool:    pool,
		Service: service,
		Router:  router,
	}, nil
}

// Close releases the connection pool.
func (a *App) Close() error {
	return a.Pool.Close()
}
