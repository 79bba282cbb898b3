package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DriftingOtter/Gaussian-Signal-Generation/cmd/noisegen/cmd"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/config"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/prompt"
)

const answers = "8\n20\n4\n300\nA\n6\n"

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_Stdin(t *testing.T) {
	out := filepath.Join(t.TempDir(), "noise.png")

	stdout, _, err := execute(t, answers, "--render.output", out, "--noise.seed", "9")
	require.NoError(t, err)

	assert.Contains(t, stdout, prompt.PromptResolution)
	assert.Contains(t, stdout, "Sample Buffer: [")
	assert.Contains(t, stdout, "Bin: [")
	assert.Contains(t, stdout, "Result has been saved to "+out)

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

// TestRoot_InputFileAndEnv reads answers from a file and the output path
// from the environment.
func TestRoot_InputFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	answersFile := filepath.Join(dir, "answers.txt")
	require.NoError(t, os.WriteFile(answersFile, []byte("4\n50\n1\n20\nm\n1\n0-100\n"), 0o600))

	out := filepath.Join(dir, "env.png")
	t.Setenv("NOISEGEN_RENDER_OUTPUT", out)

	stdout, _, err := execute(t, "", "--input.file", answersFile, "--echo.buffer=false", "--noise.legacy_draw")
	require.NoError(t, err)

	assert.NotContains(t, stdout, "Sample Buffer:")
	assert.Contains(t, stdout, "Lower Bound: 0 | Upper Bound: 100")
	assert.Contains(t, stdout, "Bin: [20]")
	assert.Contains(t, stdout, "Result has been saved to "+out)
}

func TestRoot_LogFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "noisegen.log")

	_, stderr, err := execute(t, answers,
		"--render.output", filepath.Join(dir, "h.png"),
		"--log.file", logFile,
		"--log.level", "DEBUG",
	)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "module=pipeline")
	assert.Contains(t, string(data), "histogram saved")
	assert.Contains(t, string(data), "log_level=DEBUG")
}

func TestRoot_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, answers, "--render.output", filepath.Join(dir, "h.png"), "--render.dpi", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "abc\n", "--render.output", filepath.Join(dir, "h.png"))
	assert.ErrorIs(t, err, prompt.ErrInvalidInput)

	_, _, err = execute(t, "", "--input.file", filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "", "extra-arg")
	assert.Error(t, err)
}

// TestRoot_FailureLogged writes a failed run to the configured log file.
func TestRoot_FailureLogged(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "noisegen.log")

	_, stderr, err := execute(t, "abc\n",
		"--render.output", filepath.Join(dir, "h.png"),
		"--log.file", logFile,
	)
	require.ErrorIs(t, err, prompt.ErrInvalidInput)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=error")
	assert.Contains(t, string(data), "run failed")
	assert.Contains(t, string(data), prompt.PromptResolution)
}

// TestRoot_ConfigFailureLogged logs to stderr when configuration itself
// cannot be resolved.
func TestRoot_ConfigFailureLogged(t *testing.T) {
	_, stderr, err := execute(t, "", "--render.dpi", "0")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, stderr, "level=error")
	assert.Contains(t, stderr, "run failed")
}
