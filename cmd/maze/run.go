package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mad-maze/internal/core"
	"mad-maze/internal/maze"
	"mad-maze/internal/render"
)

func newRunCmd(ro *rootOptions) *cobra.Command {
	var (
		ascii    bool
		verify   bool
		maxSteps int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build and solve one maze without a display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := maze.NewWithConfig(ro.cfg.Maze(ro.log))
			if err != nil {
				return fmt.Errorf("create maze: %w", err)
			}
			size := e.Size()
			limit := maxSteps
			if limit <= 0 {
				limit = 4*size.W*size.H + 16
			}
			if n := core.Advance(e, limit); !e.Done() {
				return fmt.Errorf("maze not finished after %d steps", n)
			}

			out := cmd.OutOrStdout()
			if ascii {
				if err := render.WriteASCII(out, e); err != nil {
					return fmt.Errorf("write maze: %w", err)
				}
			}
			st := e.Stats()
			fmt.Fprintf(out, "size=%dx%d solved=%v path=%d steps=%d loops_broken=%d elapsed=%s\n",
				size.W, size.H, st.Solved, st.PathLength, st.Steps, st.LoopsBroken, st.Elapsed)
			if verify {
				r := maze.Verify(e)
				fmt.Fprintf(out, "rooms=%d carved_walls=%d components=%d perfect=%v\n",
					r.Rooms, r.CarvedWalls, r.Components, r.Perfect())
				if !r.Connected() {
					return fmt.Errorf("maze has %d disconnected components", r.Components)
				}
			}
			ro.log.WithFields(logrus.Fields{
				"construct_steps": st.PhaseSteps[maze.PhaseConstructing],
				"label_steps":     st.PhaseSteps[maze.PhaseLabeling],
				"trace_steps":     st.PhaseSteps[maze.PhaseTracing],
			}).Debug("run complete")
			return nil
		},
	}
	cmd.Flags().BoolVar(&ascii, "ascii", false, "print the solved maze as text")
	cmd.Flags().BoolVar(&verify, "verify", false, "check connectivity of the carved maze")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "step limit, 0 for a bound derived from the grid size")
	return cmd
}
