package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/elements/controller"
	"github.com/milk9111/elements/input"
	"github.com/milk9111/elements/levels"
	"github.com/milk9111/elements/world"
)

var (
	flagSteps int
	flagEvery int
	flagWalk  float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a level without a window",
	Long: `Step a level headless at the fixed tick and print the player state.

Examples:
  elements simulate
  elements simulate --steps 600 --every 30 --walk 1`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagLevel, "level", "", "Embedded level name or path to a Tiled JSON map")
	simulateCmd.Flags().StringVar(&flagConstants, "constants", "", "Path to a constants YAML file")
	simulateCmd.Flags().IntVar(&flagSteps, "steps", 300, "Number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 60, "Print the player state every N ticks")
	simulateCmd.Flags().Float64Var(&flagWalk, "walk", 0, "Hold a walk direction (-1, 0 or 1)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	consts, err := loadConstants(flagConstants)
	if err != nil {
		logger.Warn("using default constants", "err", err)
	}
	level, err := levels.Load(flagLevel, logger.WithPrefix("levels"))
	if err != nil {
		return err
	}

	w := world.New(consts, logger.WithPrefix("world"))
	w.Populate(level)
	defer w.Dispose()
	c := controller.New(w, loadLauncher(consts.Fireball.Script, logger), logger.WithPrefix("controller"))

	out := cmd.OutOrStdout()
	every := max(1, flagEvery)
	fmt.Fprintf(out, "  %-6s  %-8s  %-8s  %-8s  %-8s  %s\n", "tick", "x", "y", "vx", "vy", "grounded")
	in := input.Snapshot{Horizontal: flagWalk}
	for i := 1; i <= flagSteps; i++ {
		c.Update(in, consts.Step.DT)
		if i%every != 0 {
			continue
		}
		p := w.Player()
		if p == nil {
			fmt.Fprintf(out, "  %-6d  (no player)\n", i)
			continue
		}
		fmt.Fprintf(out, "  %-6d  %-8.3f  %-8.3f  %-8.3f  %-8.3f  %v\n",
			i, p.X(), p.Y(), p.HorizontalVelocity(), p.VerticalVelocity(), p.IsGrounded())
	}
	return nil
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the embedded levels",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, name := range levels.Names() {
			marker := ""
			if name == levels.DefaultLevel {
				marker = " (default)"
			}
			fmt.Fprintf(out, "  %s%s\n", name, marker)
		}
	},
}
