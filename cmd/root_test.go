package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rorical/arraykit/internal/config"
)

func TestRunConsole_ScenarioManualCreateThenMax(t *testing.T) {
	// --- Arrange ---
	in := strings.NewReader("2 3 5 -2 7 y 2 n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := runConsole(context.Background(), in, out, config.Default())

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Current array:\n5 -2 7\n")
	require.Contains(t, out.String(), "Max number is: 7")
	require.True(t, strings.HasSuffix(out.String(), "Exiting program.\n"))
}

func TestRunConsole_InputEndsQuietly(t *testing.T) {
	out := &bytes.Buffer{}

	err := runConsole(context.Background(), strings.NewReader("1 y"), out, config.Default())

	require.NoError(t, err, "running out of input is a normal way to leave")
	require.Contains(t, out.String(), "Select an operation:")
}

func TestRootCommand(t *testing.T) {
	t.Setenv(config.HomeEnv, t.TempDir())
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	rootCmd.SetArgs([]string{"--seed", "9", "--verbose"})
	rootCmd.SetIn(strings.NewReader("1 y 0"))
	rootCmd.SetOut(out)
	rootCmd.SetErr(logs)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		seed, verbose = 0, false
	})

	require.NoError(t, rootCmd.Execute())

	require.Contains(t, out.String(), "Current array:")
	require.True(t, strings.HasSuffix(out.String(), "Exiting the program.\n"))
	require.Contains(t, logs.String(), "action=create-random")
}

func TestRootCommand_SeedIsReproducible(t *testing.T) {
	t.Setenv(config.HomeEnv, t.TempDir())
	t.Cleanup(func() { seed = 0 })

	run := func() string {
		seed = 77
		out := &bytes.Buffer{}
		require.NoError(t, runConsole(context.Background(), strings.NewReader("1 n"), out, config.Default()))
		return out.String()
	}

	require.Equal(t, run(), run())
}

func TestConfigShow(t *testing.T) {
	t.Setenv(config.HomeEnv, t.TempDir())
	out := &bytes.Buffer{}

	rootCmd.SetArgs([]string{"config", "show"})
	rootCmd.SetOut(out)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	require.NoError(t, rootCmd.Execute())

	require.Contains(t, out.String(), "Config: built-in defaults")
	require.Contains(t, out.String(), "Length: 5..54")
	require.Contains(t, out.String(), "Values: -100..100")
}

func TestValidateInt(t *testing.T) {
	require.NoError(t, validateInt("-3"))
	require.Error(t, validateInt("three"))
}

func TestTUILogWriter_RedirectedStderrKeepsLogs(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	require.Same(t, f, tuiLogWriter(f))
}
