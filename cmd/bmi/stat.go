// ABOUTME: CLI command for aggregate BMI statistics.
// ABOUTME: Prints a fixed six-line report, even for an empty store.
package main

import (
	"fmt"
	"io"

	"github.com/harperreed/bmi/internal/models"
	"github.com/harperreed/bmi/internal/storage"
	"github.com/spf13/cobra"
)

var statCmd = &cobra.Command{
	Use:     "stat",
	Aliases: []string{"stats"},
	Short:   "Show BMI statistics",
	Long: `Show aggregate statistics over every stored record.

OUTPUT:

  Total records     number of rows
  Underweight       BMI < 18.5
  Normal            18.5 <= BMI <= 24.9
  Overweight        BMI >= 25
  Tallest client    name and height of the tallest record
  Heaviest client   name and weight of the heaviest record

  BMI values between 24.9 and 25 are counted in neither normal nor
  overweight.`,
	Annotations: map[string]string{needsStore: "true"},
	Args:        cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo storage.Repository) error {
			stats, err := repo.Stats()
			if err != nil {
				printError(cmd.ErrOrStderr(), fmt.Errorf("failed to compute statistics: %w", err))
				return nil
			}
			printStats(cmd.OutOrStdout(), stats)
			return nil
		})
	},
}

func printStats(w io.Writer, s *models.Stats) {
	fmt.Fprintf(w, "Total records: %d\n", s.TotalRecords)
	fmt.Fprintf(w, "Underweight: %d\n", s.Underweight)
	fmt.Fprintf(w, "Normal: %d\n", s.Normal)
	fmt.Fprintf(w, "Overweight: %d\n", s.Overweight)
	fmt.Fprintf(w, "Tallest client: %s\n", s.Tallest)
	fmt.Fprintf(w, "Heaviest client: %s\n", s.Heaviest)
}

func init() {
	rootCmd.AddCommand(statCmd)
}
