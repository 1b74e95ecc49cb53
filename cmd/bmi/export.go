// ABOUTME: CLI command for exporting BMI records.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/bmi/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export BMI records",
	Long: `Export every record plus the statistics report.

FORMATS:

  json       Full JSON export
  yaml       YAML export, records grouped by category
  markdown   Markdown table with a summary section

EXAMPLES:

  bmi export json                   # Export to stdout
  bmi export yaml -o records.yaml   # Save to file`,
	Annotations: map[string]string{needsStore: "true"},
	Args:        cobra.ExactArgs(1),
	ValidArgs:   []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		return withRepo(func(repo storage.Repository) error {
			var data []byte
			var err error

			switch format {
			case "json":
				data, err = storage.ExportJSON(repo)
			case "yaml":
				data, err = storage.ExportYAML(repo)
			case "markdown":
				var md string
				md, err = storage.ExportMarkdown(repo)
				data = []byte(md)
			default:
				return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
			}
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if exportOutput != "" {
				if err := os.WriteFile(exportOutput, data, 0600); err != nil {
					return fmt.Errorf("failed to write file: %w", err)
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exported to %s\n", exportOutput)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
