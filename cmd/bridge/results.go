package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
	"github.com/vovakirdan/tui-bridge/internal/platform/tui"
	"github.com/vovakirdan/tui-bridge/internal/storage"
)

var (
	flagResultsLimit       int
	flagResultsSize        int
	flagResultsInteractive bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recent games and best crossings",
	Long: `Display recorded games.

Without --size, lists the most recent games. With --size, lists the wins on
bridges of that length, fewest attempts first.

Examples:
  bridge results
  bridge results --size 5
  bridge results --interactive`,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of results to show")
	resultsCmd.Flags().IntVar(&flagResultsSize, "size", 0, "Show best wins for this bridge length")
	resultsCmd.Flags().BoolVarP(&flagResultsInteractive, "interactive", "i", false, "Browse results in a table")
}

func runResults(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagResultsSize != 0 {
		if err := bridge.ValidateSize(flagResultsSize); err != nil {
			return err
		}
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	if flagResultsInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		sizes := make([]int, 0, bridge.MaxSize-bridge.MinSize+1)
		for s := bridge.MinSize; s <= bridge.MaxSize; s++ {
			sizes = append(sizes, s)
		}
		return tui.RunResults(store, sizes, width, height)
	}

	var entries []storage.ResultEntry
	if flagResultsSize != 0 {
		entries, err = store.BestResults(flagResultsSize, flagResultsLimit)
	} else {
		entries, err = store.RecentResults(flagResultsLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagResultsSize != 0 {
		fmt.Fprintf(out, "Best crossings - %d tiles\n\n", flagResultsSize)
	} else {
		fmt.Fprintln(out, "Recent games")
		fmt.Fprintln(out)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'bridge play' to cross your first bridge!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-12s  %-4s  %-7s  %-8s  %s\n", "#", "Player", "Size", "Result", "Attempts", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-4s  %-7s  %-8s  %s\n", "-", "------", "----", "------", "--------", "----")

	for i, e := range entries {
		outcome := "lost"
		if e.Won {
			outcome = "crossed"
		}
		fmt.Fprintf(out, "  %-4d  %-12s  %-4d  %-7s  %-8d  %s\n",
			i+1, e.Player, e.Size, outcome, e.Attempts, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show totals
	st, err := store.Stats()
	if err == nil && st.Played > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Played: %d  Crossed: %d  Avg attempts: %.1f\n", st.Played, st.Won, st.AverageAttempts)
	}
	return nil
}
