package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/isa-quest/internal/core"
	"github.com/vovakirdan/isa-quest/internal/platform/gui"
	"github.com/vovakirdan/isa-quest/internal/platform/tui"
	"github.com/vovakirdan/isa-quest/internal/registry"
	"github.com/vovakirdan/isa-quest/internal/storage"
)

var flagGUI bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: isa).

Controls:
  Arrows/WASD  - Walk
  Y/N          - Answer the terminal
  0-4          - Choose a deposit amount
  Esc          - Leave the terminal
  P            - Pause
  Ctrl+S       - Screenshot (terminal only)
  Q/Ctrl+C     - Quit and save your net worth

Market options:
  calm     - Half the usual daily swings
  normal   - The default market
  volatile - Four times the usual daily swings
  flat     - No randomness; the ISA grows at the mean rate

Examples:
  isa play
  isa play isa_classic
  isa play --market flat
  isa play --gui
  isa play --config ./my-isa.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window instead of the terminal")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "isa"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'isa list' to see available games.")
		os.Exit(1)
	}

	// A window has no terminal to corrupt, so logs may go to stderr.
	var fallback io.Writer = io.Discard
	if flagGUI {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := runGame(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runGame plays game in the frontend chosen by --gui.
func runGame(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	if flagGUI {
		return gui.Run(game, store, cfg, logger)
	}
	return tui.Run(game, store, cfg, tui.Options{Logger: logger})
}
