// ABOUTME: CLI command for adding BMI records.
// ABOUTME: Validates height/weight, computes BMI, and inserts one row.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/bmi/internal/models"
	"github.com/harperreed/bmi/internal/storage"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:     "add <height_cm> <weight_kg> [name]",
	Aliases: []string{"a"},
	Short:   "Add a BMI record",
	Long: `Add a BMI record. BMI is computed as weight_kg / (height_cm/100)^2
and stored alongside the inputs.

Examples:
  bmi add 170 70 Alice
  bmi add 182.5 95.2
  bmi add 165 58 "Mary Ann"
  bmi add 170 -70`,
	Annotations: map[string]string{needsStore: "true"},
	// Argument errors print usage and exit cleanly, so no Args validator.
	Args: cobra.ArbitraryArgs,
	// Negative heights and weights would otherwise parse as shorthand flags.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

		positional, help, err := scanRawArgs(args)
		if err != nil {
			return err
		}
		if help {
			return cmd.Help()
		}

		r, err := models.ParseArgs(positional)
		if err != nil {
			printError(errOut, err)
			printUsage(out)
			return nil
		}

		return withRepo(func(repo storage.Repository) error {
			if err := repo.CreateRecord(r); err != nil {
				printError(errOut, fmt.Errorf("failed to save record: %w", err))
				return nil
			}
			logger.Debug("inserted record", "id", r.ID, "bmi", r.BMI)

			color.New(color.FgGreen).Fprintf(out, "✓ Added %s: height %s cm, weight %s kg, BMI: %.2f\n",
				r.Name, formatNumber(r.HeightCm), formatNumber(r.WeightKg), r.BMI)
			return nil
		})
	},
}

// formatNumber renders a value without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func init() {
	rootCmd.AddCommand(addCmd)
}
