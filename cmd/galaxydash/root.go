// ABOUTME: Root Cobra command for galaxydash CLI.
// ABOUTME: Loads config and wires logger, loader, metrics, and engine in PersistentPreRunE.
package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/harperreed/galaxydash/internal/config"
	"github.com/harperreed/galaxydash/internal/dashboard"
	"github.com/harperreed/galaxydash/internal/loader"
	"github.com/harperreed/galaxydash/internal/logging"
	"github.com/harperreed/galaxydash/internal/models"
	"github.com/harperreed/galaxydash/internal/telemetry"
	"github.com/spf13/cobra"
)

var (
	cfgPath string

	cfg      *config.Config
	logger   *log.Logger
	recorder *telemetry.Prometheus
	engine   *dashboard.Engine
)

var rootCmd = &cobra.Command{
	Use:   "galaxydash",
	Short: "Role-based Galaxy Watch health dashboard",
	Long: `Galaxydash renders Galaxy Watch health exports as a dashboard for one of
four roles. Every view re-reads the dataset CSV files from the data directory.

ROLES:

  athlete       Energy, calories, activity, sleep quality, stress, antioxidants
  coach         Calories, activity, heart rate, and readiness trends
  trainer       Heart rate zones, body composition, sleep stages
  team-doctor   Heart rate, ECG events, SpO₂, blood pressure, falls

QUICK START:

  $ galaxydash datasets                     # Which CSV files are usable
  $ galaxydash view coach                   # One view in the terminal
  $ galaxydash serve                        # Web dashboard on :8501
  $ galaxydash tui                          # Interactive terminal dashboard
  $ galaxydash export trainer html -o t.html

DATA FILES:

  calories.csv activity.csv energy.csv heart_rate.csv sleep.csv stress.csv
  spo2.csv bp.csv ecg.csv falls.csv body_comp.csv antioxidants.csv

  A missing or malformed file is reported as a warning on the page and
  only the widgets that need it are left out.

CONFIGURATION:

  Settings come from ~/.config/galaxydash/config.json, GALAXYDASH_* environment
  variables, and flags, in increasing priority. Keys: data_dir, addr,
  default_role, log_file, debug.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for commands that don't need it
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgPath, cmd.Flags())
		if err != nil {
			return err
		}

		logger, err = logging.Init(cfg.GetLogFile(), cfg.Debug)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logger.Debug("config loaded", "data_dir", cfg.GetDataDir(), "default_role", cfg.DefaultRole)

		recorder = telemetry.NewPrometheus()
		source := loader.NewDir(cfg.GetDataDir(), loader.WithLogger(logger))
		engine = dashboard.NewEngine(source,
			dashboard.WithLogger(logger),
			dashboard.WithTelemetry(recorder),
		)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Close()
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// roleSlugs lists the role slugs for shell completion.
func roleSlugs() []string {
	out := make([]string, 0, len(models.AllRoles))
	for _, r := range models.AllRoles {
		out = append(out, r.Slug())
	}
	return out
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "config file (default: ~/.config/galaxydash/config.json)")
	flags.String("data-dir", config.DefaultDataDir, "directory holding the dataset CSV files")
	flags.String("log-file", "", "append log lines to this file")
	flags.Bool("debug", false, "log at debug level")
}
