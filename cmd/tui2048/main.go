// tui2048 plays 2048 in the terminal, locally or over SSH.
//
// Usage:
//
//	tui2048 list               - List available variants
//	tui2048 play [variant]     - Play a variant (default from config)
//	tui2048 menu               - Pick variants interactively
//	tui2048 serve              - Start SSH server for remote play
//	tui2048 scores [variant]   - Show high scores and stats
//	tui2048 sim --moves LLUR   - Replay moves headlessly and print the board
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.tui2048/config.yaml, then ./configs/config.yaml)
//	--db <path>         - Database path (default: ~/.tui2048/scores.db)
//	--seed <value>      - RNG seed for reproducible games
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"

	// Register the 2048 variants
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string

	// Resolved in PersistentPreRunE
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 in your terminal",
	Long: `tui2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board with the arrow keys; equal tiles merge and their sum is
added to your score. Reach 2048 to win, keep going for a higher score.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Replay a move sequence without a terminal

Examples:
  tui2048 play
  tui2048 play hard --seed 42
  tui2048 serve
  tui2048 sim --seed 1 --moves left,up,right`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig resolves configuration as file, then environment, then flags.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "tui2048",
	})
	logger.Debug("config loaded", "source", cfg.Source, "db", cfg.DBPath)

	appConfig = cfg
	return nil
}
