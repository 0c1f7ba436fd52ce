// elements is a small 2D platformer built on a detachable physics body
// layer.
//
// Usage:
//
//	elements play              - Open a window and play a level
//	elements simulate          - Run a level headless and print the player state
//	elements levels            - List the embedded levels
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var flagLogLevel string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "elements",
	Short: "A 2D platformer physics sandbox",
	Long: `elements loads a Tiled level into a physics world and lets you run
around it, either in a window or headless.

Examples:
  elements play
  elements play --level ./my-level.json --debug
  elements simulate --steps 600 --every 60
  elements levels`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(levelsCmd)
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "elements",
		Level:           level,
	})
	return logger, nil
}
