// Package config loads the todod server configuration.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Defaults
const (
	DefaultHost       = "127.0.0.1"
	DefaultPort       = 8080
	DefaultPGHost     = "localhost"
	DefaultPGPort     = 5432
	DefaultSQLiteFile = "todod.db"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"

	// SQLiteBusyTimeoutMS is how long a sqlite writer waits on a locked file.
	SQLiteBusyTimeoutMS = 5000
)

// Config represents the todod configuration
type Config struct {
	Server ServerConfig `toml:"server"`
	PG     PGConfig     `toml:"pg"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig holds the HTTP listener address.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// PGConfig describes the database connection pool.
// DSN, when set, wins over the individual connection fields.
type PGConfig struct {
	Driver   string `toml:"driver"`
	DSN      string `toml:"dsn"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	DBName   string `toml:"dbname"`
	SSLMode  string `toml:"sslmode"`
	MaxSize  int    `toml:"max_size"` // 0 leaves the pool unbounded
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text, json or logfmt
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		PG: PGConfig{
			Driver: DriverPostgres,
			Host:   DefaultPGHost,
			Port:   DefaultPGPort,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load builds the configuration from defaults, the optional TOML file at path,
// a .env file in the working directory and finally the process environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// A missing .env file is not an error
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	switch c.PG.Driver {
	case DriverPostgres:
		if c.PG.DSN == "" && c.PG.DBName == "" {
			return errors.New("pg.dbname or pg.dsn is required for the pgx driver")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q (want %s or %s)", c.PG.Driver, DriverPostgres, DriverSQLite)
	}

	if c.PG.MaxSize < 0 {
		return fmt.Errorf("invalid pg.max_size %d", c.PG.MaxSize)
	}

	return nil
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// DataSourceName returns the data source name handed to sql.Open.
func (p PGConfig) DataSourceName() string {
	if p.DSN != "" {
		return p.DSN
	}

	if p.Driver == DriverSQLite {
		file := p.DBName
		if file == "" {
			file = DefaultSQLiteFile
		}
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=%d", file, SQLiteBusyTimeoutMS)
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:   "/" + p.DBName,
	}
	if p.User != "" {
		if p.Password != "" {
			u.User = url.UserPassword(p.User, p.Password)
		} else {
			u.User = url.User(p.User)
		}
	}
	if p.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {p.SSLMode}}.Encode()
	}
	return u.String()
}
