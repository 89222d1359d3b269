// ABOUTME: CLI command for printing one role view to the terminal.
// ABOUTME: Runs a single render cycle and writes the colored text report.
package main

import (
	"fmt"
	"strings"

	"github.com/harperreed/galaxydash/internal/render"
	"github.com/spf13/cobra"
)

var viewWidget string

var viewCmd = &cobra.Command{
	Use:   "view <role>",
	Short: "Print one role view",
	Long: `Run one render cycle for a role and print it to the terminal.

Metrics print as label/value lines, charts as sparklines with their time
range and latest value, tables as aligned columns. Load warnings come first.

Use --widget to print a single widget by its title.

EXAMPLES:

  galaxydash view athlete
  galaxydash view team-doctor
  galaxydash view "Team Doctor" --data-dir ./exports
  galaxydash view trainer --widget "Heart Rate Zones"`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: roleSlugs(),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := engine.RenderSlug(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if viewWidget != "" {
			w, ok := page.Find(viewWidget)
			if !ok {
				return fmt.Errorf("no widget %q on %s (have: %s)", viewWidget, page.Title, strings.Join(page.Titles(), ", "))
			}
			page.Widgets = []render.Widget{w}
		}
		return render.WriteText(cmd.OutOrStdout(), page)
	},
}

func init() {
	viewCmd.Flags().StringVarP(&viewWidget, "widget", "w", "", "print only the widget with this title")
	rootCmd.AddCommand(viewCmd)
}
