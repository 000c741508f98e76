package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/todod/internal/config"
)

// Open creates the connection pool for the configured driver and verifies it is reachable.
func Open(ctx context.Context, cfg config.PGConfig) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, "", err
	}

	database, err := sql.Open(cfg.Driver, cfg.DataSourceName())
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxSize > 0 {
		database.SetMaxOpenConns(cfg.MaxSize)
	}

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, "", fmt.Errorf("failed to connect to database: %w", err)
	}

	return database, dialect, nil
}
