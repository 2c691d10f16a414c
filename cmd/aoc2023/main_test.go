package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maisem/aoc2023/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schematicSample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

// runApp runs the command with args and returns what it printed.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	if !strings.Contains(strings.Join(args, " "), "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	}
	err := app.Run(append([]string{"aoc2023"}, args...))
	return out.String(), err
}

func TestSamples(t *testing.T) {
	out, err := runApp(t, "--sample")
	require.NoError(t, err)
	for _, want := range []string{
		"Running day 1\npart 1 sample: 142 ✅",
		"part 2 sample: 281 ✅",
		"Running day 2\npart 1 sample: 8 ✅",
		"part 2 sample: 2286 ✅",
		"Running day 3\npart 1 sample: 4361 ✅",
		"part 2 sample: 467835 ✅",
		"Running day 4\npart 1 sample: 13 ✅",
		"part 2 sample: 30 ✅",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "❌")
}

func TestSampleWithDebug(t *testing.T) {
	out, err := runApp(t, "--sample", "--day", "3", "--debug")
	require.NoError(t, err)
	assert.NotContains(t, out, "Running day 1")
	assert.Contains(t, out, "467835")
}

func writeInput(t *testing.T, day, input string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, day+".input"), []byte(input), 0600))
	return dir
}

func TestGearRatiosFromInputFile(t *testing.T) {
	dir := writeInput(t, "3", schematicSample)
	out, err := runApp(t, "--day", "3", "--part", "2", "--skip-sample", "--input-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "part 2: 467835 (took")
	assert.Contains(t, out, "{puzzle2Answer:467835}")
}

func TestKnownAnswerMismatch(t *testing.T) {
	// The sample's answer is not the answer for the real input.
	dir := writeInput(t, "3", schematicSample)
	_, err := runApp(t, "--day", "3", "--input-dir", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAnswerMismatch), "%v", err)
	assert.Contains(t, err.Error(), "D3p1 answer is incorrect: got 4361, want 557705")
}

func TestMissingInput(t *testing.T) {
	_, err := runApp(t, "--day", "4", "--skip-sample", "--input-dir", t.TempDir())
	assert.True(t, errors.Is(err, errors.ErrMissingInput), "%v", err)
}

func TestMalformedInput(t *testing.T) {
	dir := writeInput(t, "2", "Game 1: 3 blue\nthis is not a game\n")
	_, err := runApp(t, "--day", "2", "--skip-sample", "--input-dir", dir)
	assert.True(t, errors.Is(err, errors.ErrMalformedLine), "%v", err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestConfigFile(t *testing.T) {
	dir := writeInput(t, "3", schematicSample)
	cfg := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("input_dir: "+dir+"\n"), 0600))

	out, err := runApp(t, "--day", "3", "--part", "2", "--skip-sample", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "{puzzle2Answer:467835}")

	require.NoError(t, os.WriteFile(cfg, []byte("input_dir: [\n"), 0600))
	_, err = runApp(t, "--day", "3", "--config", cfg)
	assert.Error(t, err)
}

func TestUnknownDay(t *testing.T) {
	_, err := runApp(t, "--day", "25")
	assert.True(t, errors.Is(err, errors.ErrUnknownDay), "%v", err)
}
