// ABOUTME: CLI command for starting the web dashboard.
// ABOUTME: Serves role pages, the JSON view API, and Prometheus metrics.
package main

import (
	"github.com/harperreed/galaxydash/internal/config"
	"github.com/harperreed/galaxydash/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Start the HTTP dashboard. Every request runs a fresh render cycle, so
edits to the CSV files show up on the next page load.

ENDPOINTS:

  GET /                    HTML page (?role=athlete|coach|trainer|team-doctor)
  GET /api/view?role=...   Page as JSON
  GET /api/roles           Roles and their slugs
  GET /healthz             Liveness
  GET /metrics             Prometheus metrics

EXAMPLES:

  galaxydash serve
  galaxydash serve --addr 127.0.0.1:9000 --default-role coach`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := cfg.GetDefaultRole()
		if err != nil {
			return err
		}

		srv := server.New(engine,
			server.WithLogger(logger),
			server.WithMetrics(recorder.Handler()),
			server.WithDefaultRole(role),
		)
		logger.Info("dashboard listening", "addr", cfg.GetAddr(), "data_dir", cfg.GetDataDir())
		return srv.Run(cmd.Context(), cfg.GetAddr())
	},
}

func init() {
	serveCmd.Flags().String("addr", config.DefaultAddr, "listen address")
	serveCmd.Flags().String("default-role", config.DefaultRole, "role shown when none is selected")
	rootCmd.AddCommand(serveCmd)
}
