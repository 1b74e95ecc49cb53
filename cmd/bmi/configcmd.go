// ABOUTME: CLI commands for managing the bmi config file.
// ABOUTME: Writes the database path and shows the resolved settings.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/bmi/internal/config"
	"github.com/harperreed/bmi/internal/storage"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file",
	Long: `Write ~/.config/bmi/config.json with the database path.

The path comes from --db, or defaults to ~/.local/share/bmi/bmi.db.

EXAMPLES:

  bmi config init
  bmi config init --db ~/Documents/bmi.db
  bmi config init --db /tmp/bmi.db --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigPath()
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}

		cfg := &config.Config{Database: storage.DefaultDBPath()}
		cfg.Override(dbPath)
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "  database: %s\n", cfg.Database)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Override(dbPath)

		db := cfg.DatabasePath()
		if db == "" {
			db = color.New(color.Faint).Sprint("(not set)")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file: %s\n", config.GetConfigPath())
		fmt.Fprintf(out, "Database:    %s\n", db)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
