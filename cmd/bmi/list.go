// ABOUTME: CLI command for listing BMI records.
// ABOUTME: Shows newest records first with their category.
package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/harperreed/bmi/internal/storage"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List BMI records",
	Long: `List recent BMI records, newest first.

OUTPUT FORMAT:

  Each line shows: ID  NAME  HEIGHT  WEIGHT  BMI  CATEGORY

EXAMPLES:

  bmi list           # Show last 20 records
  bmi list -n 50     # Show last 50 records
  bmi list -n 0      # Show every record`,
	Annotations: map[string]string{needsStore: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo storage.Repository) error {
			records, err := repo.ListRecords(listLimit)
			if err != nil {
				return fmt.Errorf("failed to list records: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No records found.")
				return nil
			}

			faint := color.New(color.Faint)
			for _, r := range records {
				fmt.Fprintf(out, "%s %s %7s cm %7s kg %6.2f %s\n",
					faint.Sprint(padRight(fmt.Sprintf("#%d", r.ID), 6)),
					padRight(truncate(r.Name, 20), 20),
					formatNumber(r.HeightCm),
					formatNumber(r.WeightKg),
					r.BMI,
					faint.Sprint(r.Category()))
			}
			return nil
		})
	},
}

// truncate and padRight count runes so multi-byte names are never split.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results (0 for all)")
	rootCmd.AddCommand(listCmd)
}
