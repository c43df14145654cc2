package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/loudness-bindings/internal/config"
	"github.com/oshokin/loudness-bindings/internal/service/probe"
	"github.com/oshokin/loudness-bindings/internal/version"
)

// rootCmd and its flags are package globals, so these tests do not run in parallel.

// run executes rootCmd with args and returns what it printed to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	options = probe.Options{ConfigPath: config.DefaultConfigFilename}
	// The --version flag keeps its value between executions.
	_ = rootCmd.Flags().Set("version", "false")

	var out, errOut bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

// settings writes a config with an overridden library version.
func settings(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "probe.yaml")
	require.NoError(t, config.Save(path, &config.Config{
		LogLevel:       "warn",
		LibraryVersion: "1.2.6",
		Precision:      config.ShortestPrecision,
	}))

	return path
}

// TestPersistentFlags checks flag names and shorthands.
func TestPersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	configFlag := flags.Lookup("config")
	require.NotNil(t, configFlag)
	require.Equal(t, "c", configFlag.Shorthand)
	require.Equal(t, config.DefaultConfigFilename, configFlag.DefValue)

	levelFlag := flags.Lookup("log-level")
	require.NotNil(t, levelFlag)
	require.Equal(t, "l", levelFlag.Shorthand)
}

// TestNormCommand covers argument counting and negative values.
func TestNormCommand(t *testing.T) {
	path := settings(t)

	out, err := run(t, "norm", "-c", path, "3", "4")
	require.NoError(t, err)
	require.Equal(t, "5\n", out)

	out, err = run(t, "norm", "--config", path, "--", "-3", "4")
	require.NoError(t, err)
	require.Equal(t, "5\n", out)

	// Without the separator -3 is read as a shorthand flag.
	_, err = run(t, "norm", "--config", path, "-3", "4")
	require.Error(t, err)

	_, err = run(t, "norm", "--config", path, "3")
	require.Error(t, err)

	_, err = run(t, "norm", "--config", path, "1", "2", "3")
	require.Error(t, err)
}

// TestLibVersionCommand prints the overridden version and rejects arguments.
func TestLibVersionCommand(t *testing.T) {
	path := settings(t)

	out, err := run(t, "lib-version", "--config", path, "--log-level", "error")
	require.NoError(t, err)
	require.Equal(t, "1.2.6\n", out)

	_, err = run(t, "lib-version", "--config", path, "extra")
	require.Error(t, err)

	_, err = run(t, "lib-version", "--config", path, "-l", "loud")
	require.Error(t, err)
}

// TestVersionOutput checks both the version subcommand and the --version flag.
func TestVersionOutput(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "version: "+version.Short())

	out, err = run(t, "--version")
	require.NoError(t, err)
	require.Contains(t, out, version.Short())
}
