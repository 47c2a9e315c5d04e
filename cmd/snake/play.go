package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/registry"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game on the chosen backend.

Controls (defaults, see keys in the config file):
  Arrows/WASD/HJKL - Turn
  Q/Esc/Ctrl+C     - Quit

The snake cannot reverse onto itself; only the last turn pressed in a
tick counts. Closing the window also quits.

Examples:
  snake play
  snake play --backend window
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "", "Backend: tui, window or headless (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	name := flagBackend
	if name == "" {
		name = cfg.Backend
	}
	if !registry.Exists(name) {
		return fmt.Errorf("unknown backend %q, run 'snake backends' to see available backends", name)
	}

	logger, closeLog, err := newLogger(cfg.Log, name)
	if err != nil {
		return err
	}
	defer closeLog()

	player, err := registry.Create(name, registry.Options{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	return player.Play(cmd.Context())
}
