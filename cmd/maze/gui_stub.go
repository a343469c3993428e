//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newGUICmd(*rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Watch a maze being built and solved in a window (needs -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("the GUI build requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/maze`")
		},
	}
}
