package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/todod/internal/config"
	"github.com/example/todod/internal/version"
)

// RootCmd returns the todod root command with every subcommand attached.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "todod",
		Short:   "todod - todo list HTTP service",
		Version: version.String(),
		Long: `todod serves todo lists and their items over a JSON HTTP API,
backed by a Postgres (or SQLite) connection pool.

Configuration comes from an optional TOML file (--config), a .env file
and the SERVER_*, PG_* and LOG_* environment variables.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a TOML config file")

	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(InitDBCmd())
	rootCmd.AddCommand(SeedCmd())
	rootCmd.AddCommand(DoctorCmd())

	return rootCmd
}

// loadConfig loads configuration using the --config flag of cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
