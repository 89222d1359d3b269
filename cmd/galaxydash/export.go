// ABOUTME: CLI command for exporting a role view to a file or stdout.
// ABOUTME: Supports HTML, JSON, YAML, Markdown, and text formats.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/galaxydash/internal/render"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <role> <format>",
	Short: "Export a role view",
	Long: `Run one render cycle for a role and export the page.

FORMATS:

  html       Standalone page with interactive charts
  json       Full page structure (widgets, series, warnings)
  yaml       Same structure as YAML
  markdown   Tables for documentation/sharing
  text       The same report 'view' prints

OPTIONS:

  --output, -o   Write to file instead of stdout

EXAMPLES:

  galaxydash export coach json                  # Print JSON
  galaxydash export trainer html -o trainer.html
  galaxydash export team-doctor markdown -o medical.md`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(args[1])
		if err != nil {
			return err
		}

		page, err := engine.RenderSlug(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := render.Write(&buf, page, format, nil); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, buf.Bytes(), 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported %s to %s", page.Title, exportOutput)
			return nil
		}

		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
