// ABOUTME: CLI command for the interactive terminal dashboard.
// ABOUTME: Runs the bubbletea role browser over the render engine.
package main

import (
	"github.com/harperreed/galaxydash/internal/config"
	"github.com/harperreed/galaxydash/internal/logging"
	"github.com/harperreed/galaxydash/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal dashboard",
	Long: `Browse the four role views in the terminal.

KEYS:

  ↑/k, ↓/j, tab   Select role (re-renders immediately)
  r, enter        Reload the current role
  q, esc          Quit

Log lines go to --log-file while the dashboard is open.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := cfg.GetDefaultRole()
		if err != nil {
			return err
		}

		logging.DetachStderr()
		return tui.Run(cmd.Context(), engine, role)
	},
}

func init() {
	tuiCmd.Flags().String("default-role", config.DefaultRole, "role selected at start")
	rootCmd.AddCommand(tuiCmd)
}
