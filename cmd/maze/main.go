// Command maze generates and solves mazes step by step, headless, in a
// terminal, or in an ebiten window.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mad-maze/internal/app"
)

// rootOptions holds the state shared by every subcommand.
type rootOptions struct {
	cfg      *app.Config
	logLevel string
	logFile  string

	log     *logrus.Logger
	logSink io.Closer
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{cfg: app.NewConfig(), logLevel: "info"}
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate and solve mazes one step at a time",
		Long: `Generate a maze by randomized region merging, optionally open extra loops,
then flood distances from the goal and trace the shortest path back.

Examples:
  maze run -W 41 -H 21 --ascii
  maze term --loops 0.05 --rate 2000
  maze sweep --fractions 0,0.01,0.1 --trials 20`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ro.setupLogger(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if ro.logSink != nil {
				return ro.logSink.Close()
			}
			return nil
		},
	}
	ro.cfg.Bind(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVar(&ro.logLevel, "log-level", ro.logLevel, "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&ro.logFile, "log-file", "", "append logs to this file instead of stderr")

	cmd.AddCommand(newRunCmd(ro), newTermCmd(ro), newSweepCmd(ro), newGUICmd(ro))
	return cmd
}

func (ro *rootOptions) setupLogger(stderr io.Writer) error {
	level, err := logrus.ParseLevel(ro.logLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	ro.log = logrus.New()
	ro.log.SetLevel(level)
	ro.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ro.log.SetOutput(stderr)
	if ro.logFile != "" {
		f, err := os.OpenFile(ro.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		ro.log.SetOutput(f)
		ro.logSink = f
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("maze failed")
		os.Exit(1)
	}
}
