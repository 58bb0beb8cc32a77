package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/isa-quest/internal/economy"
	"github.com/vovakirdan/isa-quest/internal/registry"
	"github.com/vovakirdan/isa-quest/internal/storage"
)

var (
	flagLimit  int
	flagLedger string
	flagAll    bool
	flagStats  bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs",
	Long: `Display the top high scores and the most recent runs for a game
(default: isa). A score is your net worth, in whole pounds, when you quit.

With --ledger, print every money event of one run instead. With --stats,
summarize every game. With --clear, delete a game's scores and ledger.

Examples:
  isa scores
  isa scores isa_classic
  isa scores --limit 20
  isa scores --all
  isa scores --stats
  isa scores --clear isa_classic
  isa scores --ledger 3f0c9a52-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores and runs to show")
	scoresCmd.Flags().StringVar(&flagLedger, "ledger", "", "Show the ledger of this run ID")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every score instead of the top ones")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show statistics for all games")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the game's scores and ledger")
}

var (
	headerColor = color.New(color.Bold, color.FgHiWhite)
	moneyColor  = color.New(color.FgGreen)
	dimColor    = color.New(color.FgHiBlack)
	bestColor   = color.New(color.Bold, color.FgYellow)
)

func runScores(cmd *cobra.Command, args []string) {
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

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagStats:
		if err := printStats(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		return

	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores and ledger for %s.\n", game.Title())
		return
	}

	if flagLedger != "" {
		if err := printLedger(store, flagLedger); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving ledger: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store, gameID, game.Title()); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	if err := printRuns(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	var scores []storage.ScoreEntry
	var err error
	if flagAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagLimit)
	}
	if err != nil {
		return err
	}

	headerColor.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'isa play %s' and quit with money in the bank to set one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-14s  %s\n", "Rank", "Net worth", "When")
	fmt.Printf("  %-4s  %-14s  %s\n", "----", "---------", "----")

	for i, entry := range scores {
		worth := moneyColor.Sprintf("%-14s", "£"+humanize.Comma(int64(entry.Score)))
		fmt.Printf("  %-4d  %s  %s\n", i+1, worth, dimColor.Sprint(humanize.Time(entry.CreatedAt)))
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		bestColor.Printf("Best: £%s\n", humanize.Comma(int64(best)))
	}
	return nil
}

func printRuns(store *storage.Store, gameID string) error {
	runs, err := store.RecentRuns(gameID, flagLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	headerColor.Println("Recent Runs")
	fmt.Println()
	fmt.Printf("  %-36s  %-5s  %-12s  %-14s  %s\n", "Run", "Years", "Deposited", "Net worth", "Started")

	for _, r := range runs {
		fmt.Printf("  %-36s  %-5d  %-12s  %s  %s\n",
			r.RunID,
			r.FinalYear,
			economy.FormatMoney(r.Deposited),
			moneyColor.Sprintf("%-14s", economy.FormatMoney(r.FinalWorth)),
			dimColor.Sprint(humanize.Time(r.StartedAt)),
		)
	}
	return nil
}

func printLedger(store *storage.Store, runID string) error {
	entries, err := store.RunLedger(runID)
	if err != nil {
		return err
	}

	headerColor.Printf("Ledger - run %s\n", runID)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No entries for this run.")
		return nil
	}

	fmt.Printf("  %-4s  %-4s  %-16s  %12s  %14s  %14s\n", "#", "Year", "Event", "Amount", "Current", "ISA")
	for _, e := range entries {
		fmt.Printf("  %-4d  %-4d  %-16s  %12s  %14s  %14s\n",
			e.Seq, e.Year, e.Kind,
			economy.FormatMoney(e.Amount),
			economy.FormatMoney(e.Current),
			economy.FormatMoney(e.ISA),
		)
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	headerColor.Println("Statistics")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	fmt.Printf("  %-14s  %-6s  %-12s  %-12s  %s\n", "Game", "Runs", "Best", "Average", "Last played")
	for _, info := range registry.List() {
		st, ok := stats[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-14s  %-6d  %s  %-12s  %s\n",
			info.ID,
			st.GamesCount,
			bestColor.Sprintf("%-12s", "£"+humanize.Comma(int64(st.HighScore))),
			"£"+humanize.CommafWithDigits(st.AvgScore, 0),
			dimColor.Sprint(humanize.Time(st.LastPlayed)),
		)
	}
	return nil
}
