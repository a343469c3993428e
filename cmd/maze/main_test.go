package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-maze/internal/maze"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunPrintsSolvedMaze(t *testing.T) {
	out, _, err := execute(t, "run", "-W", "3", "-H", "3", "--ascii")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "###\n...\n###\n"), out)
	assert.Contains(t, out, "size=3x3 solved=true path=3 steps=5")
}

func TestRunVerify(t *testing.T) {
	out, _, err := execute(t, "run", "-W", "21", "-H", "11", "--seed", "42", "--loops", "0", "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "solved=true")
	assert.Contains(t, out, "rooms=50 carved_walls=49 components=1 perfect=true")
}

func TestRunRejectsBadInput(t *testing.T) {
	_, _, err := execute(t, "run", "-W", "0")
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)

	_, _, err = execute(t, "run", "--log-level", "loud")
	assert.ErrorContains(t, err, "log level")

	_, _, err = execute(t, "run", "-W", "41", "-H", "41", "--max-steps", "3")
	assert.ErrorContains(t, err, "not finished after 3 steps")
}

func TestRunLogsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.log")
	_, stderr, err := execute(t, "run", "-W", "9", "-H", "9", "--seed", "3", "--log-file", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "maze finished")
}

func TestSweepCommand(t *testing.T) {
	out, _, err := execute(t, "sweep", "-W", "11", "-H", "11", "--fractions", "0,0.5", "-n", "3", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Sweep over 11x11 mazes")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[2]), "0.000"), lines[2])
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[3]), "0.500"), lines[3])

	_, _, err = execute(t, "sweep", "-n", "0")
	assert.ErrorContains(t, err, "trials must be positive")
}

func TestSweepLoopsNeverLengthenPaths(t *testing.T) {
	base := maze.DefaultConfig()
	base.Width, base.Height, base.Seed = 25, 19, 100
	summaries, err := runSweep(context.Background(), base, []float64{0, 0.3, 1}, 4, 3)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	for _, s := range summaries {
		assert.Equal(t, 4, s.solved, "loops %.2f", s.loops)
		assert.Positive(t, s.meanPath)
	}
	assert.Zero(t, summaries[0].meanBroken)
	assert.Equal(t, float64(11*8), summaries[2].meanBroken)
	// Trials share seeds across fractions, so every run opens walls in the
	// same tree and can only shorten the route.
	assert.LessOrEqual(t, summaries[1].meanPath, summaries[0].meanPath)
	assert.LessOrEqual(t, summaries[2].meanPath, summaries[1].meanPath)
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runSweep(ctx, maze.DefaultConfig(), []float64{0}, 2, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
