// isa is ISA Quest: a top-down savings game played in the terminal.
//
// Usage:
//
//	isa list              - List available games
//	isa play [game]       - Play a game (default: isa)
//	isa menu              - Start menu to pick games interactively
//	isa serve             - Start SSH server for remote play
//	isa scores [game]     - Show high scores and recent runs
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.isa/isa.db)
//	--config <path>    - Custom game config YAML
//	--market <preset>  - Market preset: calm, normal, volatile, flat
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/isa-quest/internal/config"
	"github.com/vovakirdan/isa-quest/internal/games/isa"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagMarket   string
	flagLogFile  string
	flagLogLevel string
)

// market is the parsed --market flag.
var market config.MarketPreset

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "isa",
	Short: "ISA Quest - save, invest and watch the years go by",
	Long: `ISA Quest is a top-down game played in your terminal. Walk around a
room collecting coins, then use the computer terminal to move money from
your current account into a stocks and shares ISA. Every 20 seconds a year
passes: the current account earns 1% interest and the ISA follows a random
daily market.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs

Examples:
  isa play
  isa play isa_classic
  isa play --market volatile --seed 42
  isa play --gui
  isa menu
  isa serve --ssh :2222
  isa scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		p, err := config.ParseMarketPreset(flagMarket)
		if err != nil {
			return err
		}
		market = p

		// Set config path and market for the game before creation
		isa.SetConfigPath(flagConfig)
		isa.SetMarketPreset(flagMarket)
		return nil
	},
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.isa/isa.db", "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagMarket, "market", "", "Market preset: calm, normal, volatile, flat")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs while playing)")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the logger for local play. The game owns the terminal,
// so logs only go to --log-file; fallback is used when no file is set.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "isa",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)
	return logger, closeFn, nil
}
