package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bridge/internal/platform/tui"
)

var flagTUISize int

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in a full-screen terminal UI",
	Long: `Play the bridge game in a full-screen terminal UI.

Controls:
  U / Up / k    - Step onto the upper plank
  D / Down / j  - Step onto the lower plank
  R             - Retry after a fall
  Q             - Quit
  Esc/Ctrl+C    - Exit immediately

Examples:
  bridge tui
  bridge tui --size 12`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&flagTUISize, "size", 0, "Bridge length (skips the prompt)")
}

func runTUI(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tui needs a terminal; use 'bridge play' for piped input")
	}

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

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	size := cfg.Game.DefaultSize
	if flagTUISize != 0 {
		size = flagTUISize
	}

	_, err = tui.Run(tui.Options{
		Maker:   maker,
		Store:   store,
		Logger:  logger,
		Display: cfg.Display,
		Size:    size,
		Player:  currentUser(),
	})
	return err
}
