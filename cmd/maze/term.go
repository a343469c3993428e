package main

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"mad-maze/internal/maze"
	"mad-maze/internal/term"
)

func newTermCmd(ro *rootOptions) *cobra.Command {
	var fps int
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Watch a maze being built and solved in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The screen owns the terminal; logs only go to --log-file.
			if ro.logFile == "" {
				ro.log.SetOutput(io.Discard)
			}
			e, err := maze.NewWithConfig(ro.cfg.Maze(ro.log))
			if err != nil {
				return fmt.Errorf("create maze: %w", err)
			}
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()

			return term.Run(cmd.Context(), screen, maze.NewShared(e), term.Options{
				Rate:   ro.cfg.Rate,
				FPS:    fps,
				Seed:   ro.cfg.Seed,
				Logger: ro.log,
			})
		},
	}
	cmd.Flags().IntVar(&fps, "fps", 30, "redraws per second")
	return cmd
}
