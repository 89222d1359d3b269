// ABOUTME: CLI command for listing dataset load status.
// ABOUTME: Shows each CSV file with its row count or the load error.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/galaxydash/internal/models"
	"github.com/spf13/cobra"
)

var datasetsCmd = &cobra.Command{
	Use:     "datasets [name...]",
	Aliases: []string{"ls"},
	Short:   "List dataset load status",
	Long: `Load every dataset file once and report the outcome.

OUTPUT FORMAT:

  Each line shows: STATUS  FILE  ROWS or ERROR

  ✓ means the file loaded and its widgets will render. ✗ means the file is
  missing or malformed; views show a warning and leave out its widgets.

Pass dataset names (calories, heart_rate, spo2, ...) to report only those.

EXAMPLES:

  galaxydash datasets
  galaxydash datasets ecg falls
  galaxydash datasets --data-dir ./exports`,
	RunE: func(cmd *cobra.Command, args []string) error {
		only := make(map[models.DatasetName]bool, len(args))
		for _, a := range args {
			if !models.IsValidDataset(a) {
				return fmt.Errorf("unknown dataset: %s", a)
			}
			only[models.DatasetName(a)] = true
		}

		out := cmd.OutOrStdout()
		faint := color.New(color.Faint)
		ok := color.New(color.FgGreen).Sprint("✓")
		bad := color.New(color.FgRed).Sprint("✗")

		statuses := engine.Status()
		present := 0
		for _, st := range statuses {
			if len(only) > 0 && !only[st.Name] {
				continue
			}
			if st.Present {
				present++
				fmt.Fprintf(out, "%s %s %d rows\n", ok, padRight(st.File, 18), st.Rows)
				continue
			}
			fmt.Fprintf(out, "%s %s %s\n", bad, padRight(st.File, 18), faint.Sprint(truncate(st.Error, 60)))
		}

		total := len(models.AllDatasets)
		if len(only) > 0 {
			total = len(only)
		}
		fmt.Fprintf(out, "\n%d of %d datasets loaded from %s\n", present, total, cfg.GetDataDir())
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
