package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/todod/internal/config"
	"github.com/example/todod/internal/db"
)

// Check status marks
const (
	statusOK   = "✓"
	statusWarn = "⚠"
	statusFail = "✗"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate configuration and database access",
		Long: `Health check for a todod deployment.

Validates:
- Configuration loads and validates
- Database is reachable with the configured driver
- todo_list and todo_item tables exist

Examples:
  todod doctor              # Run full health check
  todod doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := runChecks(cmd)

			hasErrors := false
			for _, r := range results {
				if r.Status == statusFail {
					hasErrors = true
					break
				}
			}

			if !quiet {
				printResults(cmd.OutOrStdout(), results)
			}

			if hasErrors {
				return fmt.Errorf("doctor found problems")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only set the exit code")

	return cmd
}

func runChecks(cmd *cobra.Command) []CheckResult {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return []CheckResult{{Name: "config", Status: statusFail, Details: err.Error()}}
	}
	results := []CheckResult{{Name: "config", Status: statusOK}}

	database, dialect, err := db.Open(cmd.Context(), cfg.PG)
	if err != nil {
		return append(results, CheckResult{Name: "database", Status: statusFail, Details: err.Error()})
	}
	defer database.Close()
	results = append(results, CheckResult{Name: "database", Status: statusOK})

	return append(results, checkTables(cmd.Context(), database, dialect, cfg)...)
}

func checkTables(ctx context.Context, database *sql.DB, dialect db.Dialect, cfg *config.Config) []CheckResult {
	var results []CheckResult
	for _, table := range []string{"todo_list", "todo_item"} {
		exists, err := db.TableExists(ctx, database, dialect, table)
		switch {
		case err != nil:
			results = append(results, CheckResult{Name: table, Status: statusFail, Details: err.Error()})
		case !exists:
			results = append(results, CheckResult{
				Name:    table,
				Status:  statusWarn,
				Details: fmt.Sprintf("table missing in %s database; run: todod init-db", cfg.PG.Driver),
			})
		default:
			results = append(results, CheckResult{Name: table, Status: statusOK})
		}
	}
	return results
}

func printResults(out io.Writer, results []CheckResult) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Check              Status")
	fmt.Fprintln(out, "─────────────────────────")
	for _, r := range results {
		fmt.Fprintf(out, "%-18s %s\n", r.Name, colorStatus(r.Status))
	}
	fmt.Fprintln(out)

	for _, r := range results {
		if r.Status != statusOK && r.Details != "" {
			fmt.Fprintf(out, "%s: %s\n", r.Name, r.Details)
		}
	}
}

func colorStatus(status string) string {
	switch status {
	case statusOK:
		return color.New(color.FgGreen).Sprint(status)
	case statusWarn:
		return color.New(color.FgYellow).Sprint(status)
	default:
		return color.New(color.FgRed).Sprint(status)
	}
}
