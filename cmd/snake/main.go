// snake is the classic grid snake game with terminal, desktop window and
// headless backends.
//
// Usage:
//
//	snake play                  - Play in the configured backend (default: tui)
//	snake play --backend window - Play in a desktop window
//	snake simulate              - Run an autopilot game without a display
//	snake backends              - List available backends
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Path to a config YAML file
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Append logs to a file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/gridsnake/internal/platform/headless"
	_ "github.com/vovakirdan/gridsnake/internal/platform/tui"
	_ "github.com/vovakirdan/gridsnake/internal/platform/window"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game",
	Long: `Snake on a 32x24 grid that wraps at the edges. Eat food to grow;
running into yourself resets the snake to a single cell.

Available commands:
  play      - Play in the terminal or a desktop window
  simulate  - Run an autopilot game without a display
  backends  - Show all available backends

Examples:
  snake play
  snake play --backend window
  snake simulate --ticks 1000 --seed 7
  snake backends`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(backendsCmd)
}
