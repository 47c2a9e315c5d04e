package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/headless"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var (
	flagTicks      int
	flagTurnChance float64
	flagRealtime   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run an autopilot game without a display",
	Long: `Runs the game loop off-screen with a random autopilot and prints the
final state. The same --seed always produces the same run.

Examples:
  snake simulate
  snake simulate --ticks 5000 --seed 7
  snake simulate --realtime --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Frames to run (default from config)")
	simulateCmd.Flags().Float64Var(&flagTurnChance, "turn-chance", 0, "Probability of a turn per tick (default from config)")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace the run at the game tick rate")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("ticks") {
		cfg.Simulate.Ticks = flagTicks
	}
	if flags.Changed("turn-chance") {
		cfg.Simulate.TurnChance = flagTurnChance
	}
	if flags.Changed("realtime") {
		cfg.Simulate.Realtime = flagRealtime
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, "headless")
	if err != nil {
		return err
	}
	defer closeLog()

	p := headless.NewPlayer(registry.Options{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Logger:  logger,
	})
	if err := p.Play(cmd.Context()); err != nil {
		return err
	}

	res := p.Result()
	fmt.Fprintln(cmd.OutOrStdout(), res)
	fmt.Fprintf(cmd.OutOrStdout(), "seed: %d, deaths: %d, longest: %d\n", p.Seed(), res.Deaths, res.Longest)
	return nil
}
