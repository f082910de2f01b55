package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bridge/internal/console"
	"github.com/vovakirdan/tui-bridge/internal/storage"
)

var flagPlaySize int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in line mode",
	Long: `Play the bridge game as a conversation on standard input and output.

Answers:
  3-20  - Bridge length
  U / D - Step onto the upper / lower plank
  R / Q - Retry the same bridge / quit, after a fall

Invalid answers are reported and asked again.

Examples:
  bridge play
  bridge play --size 5 --seed 42
  printf '3\nU\nD\nU\n' | bridge play --seed 7`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlaySize, "size", 0, "Bridge length (skips the prompt)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, "bridge")
	if err != nil {
		return err
	}
	maker, err := newMaker(cfg, logger)
	if err != nil {
		return err
	}

	ctrl := console.NewController(maker, os.Stdin, cmd.OutOrStdout(), logger)
	ctrl.SetMarks(console.Marks{Success: cfg.Display.SuccessMark, Failure: cfg.Display.FailureMark})
	ctrl.Size = cfg.Game.DefaultSize
	if flagPlaySize != 0 {
		ctrl.Size = flagPlaySize
	}

	result, err := ctrl.Run()
	if err != nil {
		return err
	}

	store := openStore(cfg, logger)
	if store == nil {
		return nil
	}
	defer store.Close()

	if _, err := store.SaveResult(storage.NewSessionID(), currentUser(), result); err != nil {
		logger.Warn("could not save result", "error", err)
	}
	return nil
}

// currentUser returns the local user name for result records.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}
