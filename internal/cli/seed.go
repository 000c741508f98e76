package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/todod/internal/db"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample todo lists and items",
		Long: `Insert sample todo lists with unchecked items.

Items cannot be created through the HTTP API; use this to get something to
check during development. Run init-db first.`,
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

			ids, err := db.SeedFixtures(cmd.Context(), database, dialect, db.DefaultFixtures)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, id := range ids {
				fixture := db.DefaultFixtures[i]
				fmt.Fprintf(out, "%s %s (list %d, %d items)\n",
					color.New(color.FgGreen).Sprint("✓"), fixture.Title, id, len(fixture.Items))
			}

			return nil
		},
	}
}
