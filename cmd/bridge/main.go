// bridge is a terminal bridge crossing game: guess, tile by tile, whether
// the safe plank is up or down; a wrong guess drops you and you may retry
// the same bridge from the start or quit.
//
// Usage:
//
//	bridge play              - Play in line mode (type U, D, R, Q)
//	bridge tui               - Play in a full-screen terminal UI
//	bridge results           - Show recent games and best crossings
//	bridge serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.bridge/config.yaml)
//	--seed <value>      - RNG seed for reproducible bridges
//	--db <path>         - Results database (default: ~/.bridge/results.db)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Bridge crossing - a guessing game for your terminal",
	Long: `Bridge crossing is a terminal game. A bridge of 3 to 20 tiles hides one
safe plank per tile, either up (U) or down (D). Guess your way across:
a wrong guess drops you, and you may retry the same bridge or quit.

Available commands:
  play     - Line-mode game (type U, D, R, Q)
  tui      - Full-screen game
  results  - Recent games and best crossings
  serve    - Start SSH server for remote play

Examples:
  bridge play
  bridge tui --size 10
  bridge results --size 5
  bridge serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value or random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}
