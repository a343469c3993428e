//go:build ebiten

package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"mad-maze/internal/app"
	"mad-maze/internal/maze"
)

func newGUICmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Watch a maze being built and solved in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := maze.NewWithConfig(ro.cfg.Maze(ro.log))
			if err != nil {
				return fmt.Errorf("create maze: %w", err)
			}
			game := app.New(e, ro.cfg)

			ebiten.SetWindowTitle("mad-maze")
			ebiten.SetTPS(ro.cfg.TPS)
			ebiten.SetWindowSize(game.Layout(0, 0))
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
}
