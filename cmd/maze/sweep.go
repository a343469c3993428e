package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"mad-maze/internal/core"
	"mad-maze/internal/maze"
)

type sweepJob struct {
	loops float64
	seed  int64
}

type sweepResult struct {
	stats maze.Stats
}

type sweepSummary struct {
	loops       float64
	trials      int
	solved      int
	meanPath    float64
	meanSteps   float64
	meanBroken  float64
	longestPath int
}

func newSweepCmd(ro *rootOptions) *cobra.Command {
	var (
		fractions []float64
		trials    int
		workers   int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Solve many mazes per loop fraction and compare path lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if trials <= 0 {
				return fmt.Errorf("trials must be positive, got %d", trials)
			}
			base := ro.cfg.Maze(nil)
			start := time.Now()
			summaries, err := runSweep(cmd.Context(), base, fractions, trials, workers)
			if err != nil {
				return err
			}
			ro.log.WithFields(logrus.Fields{
				"mazes":   len(fractions) * trials,
				"workers": workers,
				"elapsed": time.Since(start).Round(time.Millisecond),
			}).Info("sweep finished")
			printSweep(cmd.OutOrStdout(), base, summaries)
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&fractions, "fractions", []float64{0, 0.01, 0.05, 0.1, 0.25}, "loop fractions to compare")
	cmd.Flags().IntVarP(&trials, "trials", "n", 10, "mazes per loop fraction")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	return cmd
}

// runSweep solves trials mazes for every fraction. Trial i of every fraction
// uses seed base.Seed+i+1 so fractions are compared on the same carvings.
func runSweep(ctx context.Context, base maze.Config, fractions []float64, trials, workers int) ([]sweepSummary, error) {
	var jobs []sweepJob
	for _, f := range fractions {
		for i := 0; i < trials; i++ {
			jobs = append(jobs, sweepJob{loops: f, seed: base.Seed + int64(i) + 1})
		}
	}
	results := make([]sweepResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := solveOne(base, job)
			if err != nil {
				return err
			}
			results[i] = sweepResult{stats: st}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]sweepSummary, len(fractions))
	for fi, f := range fractions {
		s := sweepSummary{loops: f, trials: trials}
		for _, r := range results[fi*trials : (fi+1)*trials] {
			if r.stats.Solved {
				s.solved++
			}
			s.meanPath += float64(r.stats.PathLength)
			s.meanSteps += float64(r.stats.Steps)
			s.meanBroken += float64(r.stats.LoopsBroken)
			if r.stats.PathLength > s.longestPath {
				s.longestPath = r.stats.PathLength
			}
		}
		n := float64(trials)
		s.meanPath /= n
		s.meanSteps /= n
		s.meanBroken /= n
		summaries[fi] = s
	}
	return summaries, nil
}

func solveOne(base maze.Config, job sweepJob) (maze.Stats, error) {
	cfg := base
	cfg.Loops = job.loops
	cfg.Seed = job.seed
	e, err := maze.NewWithConfig(cfg)
	if err != nil {
		return maze.Stats{}, fmt.Errorf("loops %.3f seed %d: %w", job.loops, job.seed, err)
	}
	size := e.Size()
	core.Advance(e, 4*size.W*size.H+16)
	if !e.Done() {
		return maze.Stats{}, fmt.Errorf("loops %.3f seed %d: maze did not finish", job.loops, job.seed)
	}
	return e.Stats(), nil
}

func printSweep(w io.Writer, base maze.Config, summaries []sweepSummary) {
	fmt.Fprintf(w, "Sweep over %dx%d mazes\n", base.Width, base.Height)
	fmt.Fprintf(w, "%8s %7s %7s %10s %10s %10s %8s\n", "loops", "trials", "solved", "mean_path", "mean_steps", "broken", "longest")
	for _, s := range summaries {
		fmt.Fprintf(w, "%8.3f %7d %7d %10.1f %10.1f %10.1f %8d\n",
			s.loops, s.trials, s.solved, s.meanPath, s.meanSteps, s.meanBroken, s.longestPath)
	}
}
