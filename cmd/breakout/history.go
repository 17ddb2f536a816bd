package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fb-breakout/internal/platform/tui"
	"github.com/vovakirdan/fb-breakout/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished runs",
	Long: `Display recent runs and the best one (most blocks destroyed, fastest on a tie).

On a terminal the history opens as an interactive table; use --plain for text.

Examples:
  breakout history
  breakout history --plain --limit 5
  breakout history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to print with --plain")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the whole history")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print text instead of the interactive table")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagHistoryPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		return tui.RunHistory(store, width, height)
	}

	return printHistory(store, flagHistoryLimit)
}

func printHistory(store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Println("Recent runs")
	fmt.Println("===========")
	fmt.Println()
	fmt.Printf("  %-16s  %-12s  %-9s  %-7s  %6s  %8s\n", "Date", "Player", "Display", "Result", "Blocks", "Time")
	fmt.Printf("  %-16s  %-12s  %-9s  %-7s  %6s  %8s\n", "----", "------", "-------", "------", "------", "----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-12s  %-9s  %-7s  %6d  %7.1fs\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Player, r.Display, r.Outcome, r.Destroyed, r.Elapsed)
	}

	best, err := store.BestRun()
	if err != nil {
		return err
	}
	if best != nil {
		fmt.Println()
		fmt.Printf("Best: %d blocks in %.1fs by %s on %s\n", best.Destroyed, best.Elapsed, best.Player, best.Display)
	}

	sum, err := store.Summarize()
	if err != nil {
		return err
	}
	if line := tui.SummaryLine(sum); line != "" {
		fmt.Println(line)
	}
	return nil
}
