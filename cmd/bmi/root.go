// ABOUTME: Root Cobra command for bmi CLI.
// ABOUTME: Resolves configuration and manages the store lifetime per command.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/harperreed/bmi/internal/config"
	"github.com/harperreed/bmi/internal/storage"
	"github.com/spf13/cobra"
)

// needsStore marks commands that resolve configuration and open the store.
const needsStore = "needs-store"

const usageText = `Usage: bmi add <height_cm> <weight_kg> [name]
       bmi stat
`

var version = "dev"

var (
	dbPath  string
	verbose bool

	appConfig *config.Config
	logger    = log.NewWithOptions(os.Stderr, log.Options{Prefix: "bmi"})
)

var rootCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Body-mass-index log",
	Long: `bmi records body-mass-index entries in a local SQLite file and
prints aggregate statistics.

QUICK START:

  $ bmi config init               # Write ~/.config/bmi/config.json
  $ bmi add 170 70 Alice          # Record height (cm), weight (kg), name
  $ bmi add 182 95                # Name defaults to "unknown"
  $ bmi stat                      # Category counts, tallest, heaviest
  $ bmi list                      # Recent records

CATEGORIES:

  underweight   BMI < 18.5
  normal        18.5 <= BMI <= 24.9
  overweight    BMI >= 25

DATABASE:

  The database path comes from, in increasing priority:
    database in ~/.config/bmi/config.json
    BMI_DATABASE environment variable
    --db flag`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		help := false
		if cmd.DisableFlagParsing {
			var err error
			if _, help, err = scanRawArgs(args); err != nil {
				return err
			}
		}
		setupLogger(cmd.ErrOrStderr())

		if help {
			return nil
		}

		if cmd.Annotations[needsStore] != "true" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Override(dbPath)
		if err := cfg.Validate(); err != nil {
			return err
		}
		appConfig = cfg
		logger.Debug("resolved database", "path", cfg.DatabasePath())
		return nil
	},
	// Unknown subcommands land here as positional args.
	RunE: func(cmd *cobra.Command, args []string) error {
		printUsage(cmd.OutOrStdout())
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setupLogger(w io.Writer) {
	logger.SetOutput(w)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
}

// openRepo is replaced in tests.
var openRepo = func(cfg *config.Config) (storage.Repository, error) {
	return cfg.OpenStorage()
}

// withRepo opens the configured store, runs fn, and always closes the store.
func withRepo(fn func(repo storage.Repository) error) error {
	repo, err := openRepo(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("opened store")
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close store", "err", err)
		}
	}()

	return fn(repo)
}

// scanRawArgs picks the persistent flags out of args for commands that
// disable cobra flag parsing. Anything else, including "-70", is positional.
// A "--" ends flag handling.
func scanRawArgs(args []string) (positional []string, help bool, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(positional, args[i+1:]...), help, nil
		case arg == "--db":
			if i+1 >= len(args) {
				return nil, false, errors.New("flag needs an argument: --db")
			}
			i++
			dbPath = args[i]
		case strings.HasPrefix(arg, "--db="):
			dbPath = strings.TrimPrefix(arg, "--db=")
		case arg == "-v" || arg == "--verbose":
			verbose = true
		case arg == "-h" || arg == "--help":
			help = true
		default:
			positional = append(positional, arg)
		}
	}
	return positional, help, nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

func printError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "Error: %v\n", err)
}

func init() {
	cobra.EnableCaseInsensitive = true

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (overrides config and BMI_DATABASE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
