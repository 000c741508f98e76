package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/todod/internal/db"
)

// InitDBCmd returns the init-db command
func InitDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the todo tables",
		Long: `Create the todo_list and todo_item tables in the configured database.

Existing tables are left untouched; this is not a migration tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			database, dialect, err := db.Open(cmd.Context(), cfg.PG)
			if err != nil {
				return err
			}
			defer database.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initializing %s database (%s)\n", dialect, cfg.PG.Driver)

			if err := db.InitSchema(cmd.Context(), database, dialect); err != nil {
				return err
			}

			fmt.Fprintf(out, "%s Database initialized successfully\n", color.New(color.FgGreen).Sprint("✓"))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  todod seed")
			fmt.Fprintln(out, "  todod serve")

			return nil
		},
	}
}
