package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/loudness-bindings/internal/loudness"
)

// TestValidate checks defaults and rejected values.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Empty settings get defaults.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)

	// Unknown level.
	cfg = &Config{LogLevel: "loud"}
	require.ErrorIs(t, Validate(cfg), errInvalidLogLevel)

	// Precision out of range.
	cfg = &Config{Precision: MaxPrecision + 1}
	require.ErrorIs(t, Validate(cfg), errInvalidPrecision)

	cfg = &Config{Precision: -2}
	require.ErrorIs(t, Validate(cfg), errInvalidPrecision)

	// Bad override.
	cfg = &Config{LibraryVersion: "1.2"}
	require.ErrorIs(t, Validate(cfg), loudness.ErrInvalidVersion)

	// Okay with override.
	cfg = &Config{LibraryVersion: "1.2.6", Precision: 3}
	require.NoError(t, Validate(cfg))
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		LogLevel:       "debug",
		LibraryVersion: "1.2.6",
		Precision:      4,
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	_, err = os.Stat(path)
	require.NoError(t, err)

	require.ErrorIs(t, Save(path, nil), errConfigIsNotSet)
}

// TestLoadMissing distinguishes the default path from an explicit one.
func TestLoadMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadPartialFile keeps defaults for fields the file omits.
func TestLoadPartialFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), DefaultFilePermissions))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, ShortestPrecision, cfg.Precision)
	require.Empty(t, cfg.LibraryVersion)
}

// TestVersionSource picks the override or the linked library.
func TestVersionSource(t *testing.T) {
	t.Parallel()

	src, err := (&Config{LibraryVersion: "10.20.30"}).VersionSource()
	require.NoError(t, err)

	got, err := loudness.Report(src)
	require.NoError(t, err)
	require.Equal(t, "10.20.30", got)

	src, err = Default().VersionSource()
	require.NoError(t, err)
	require.NotNil(t, src)

	_, err = (&Config{LibraryVersion: "nope"}).VersionSource()
	require.ErrorIs(t, err, loudness.ErrInvalidVersion)
}
