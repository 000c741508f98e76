package config

import (
	"fmt"
	"os"
	"strconv"
)

// applyEnv overrides config from environment variables.
func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) error {
		v := os.Getenv(key)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*dst = n
		return nil
	}

	setString("SERVER_HOST", &cfg.Server.Host)
	if err := setInt("SERVER_PORT", &cfg.Server.Port); err != nil {
		return err
	}

	setString("PG_DRIVER", &cfg.PG.Driver)
	setString("PG_DSN", &cfg.PG.DSN)
	setString("PG_HOST", &cfg.PG.Host)
	if err := setInt("PG_PORT", &cfg.PG.Port); err != nil {
		return err
	}
	setString("PG_USER", &cfg.PG.User)
	setString("PG_PASSWORD", &cfg.PG.Password)
	setString("PG_DBNAME", &cfg.PG.DBName)
	setString("PG_SSLMODE", &cfg.PG.SSLMode)
	if err := setInt("PG_MAX_SIZE", &cfg.PG.MaxSize); err != nil {
		return err
	}

	setString("LOG_LEVEL", &cfg.Log.Level)
	setString("LOG_FORMAT", &cfg.Log.Format)

	return nil
}
