package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/todod/internal/adapters/httpapi"
	"github.com/example/todod/internal/logging"
	"github.com/example/todod/internal/version"
	"github.com/example/todod/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Open the database pool and serve the todo API until interrupted.

Routes:
  GET  /                                 service status
  GET  /todos                            list todo lists, newest first
  POST /todos                            create a todo list {"title": "..."}
  GET  /todos/{list_id}/items            list the items of a list
  PUT  /todos/{list_id}/items/{item_id}  check an item`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := logging.New(cfg.Log)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := wire.New(ctx, cfg, logger)
			if err != nil {
				logger.Error("Error creating connection pool", "cause", err)
				return err
			}
			defer a.Close()

			logger.Info("Server will listen", "url", "http://"+cfg.Addr(), "version", version.String())

			return httpapi.Serve(ctx, cfg.Addr(), a.Router, logger)
		},
	}
}
