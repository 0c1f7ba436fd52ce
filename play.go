package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel     string
	flagConstants string
	flagDebug     bool
	flagWatch     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level in a window",
	Long: `Open a window and play a level.

Controls:
  A/D, Left/Right  - Walk
  Space/W/Up       - Jump
  E                - Fireball
  R                - Reload the level
  F1               - Toggle debug drawing
  Esc              - Pause menu`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Embedded level name or path to a Tiled JSON map")
	playCmd.Flags().StringVar(&flagConstants, "constants", "", "Path to a constants YAML file")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with debug drawing enabled")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload when files in the config directory change")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	game, err := NewGame(gameOptions{
		Level:     flagLevel,
		Constants: flagConstants,
		Debug:     flagDebug,
		Watch:     flagWatch,
	}, logger)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("elements")

	return ebiten.RunGame(game)
}
