package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/loudness-bindings/internal/logger"
	"github.com/oshokin/loudness-bindings/internal/loudness"
)

// Config holds the settings shared by loudness-probe subcommands.
type Config struct {
	// LogLevel is the zap level name used for diagnostics on stderr.
	LogLevel string `yaml:"log_level"`
	// LibraryVersion, when set, replaces the libebur128 version query with a
	// fixed "major.minor.patch" triple.
	LibraryVersion string `yaml:"library_version,omitempty"`
	// Precision is the number of decimals printed for norms; -1 prints the
	// shortest representation that round-trips.
	Precision int `yaml:"precision"`
}

const (
	// DefaultConfigFilename is the settings file looked up when none is given.
	DefaultConfigFilename = "loudness-probe.yaml"

	// DefaultLogLevel keeps the CLI quiet unless something goes wrong.
	DefaultLogLevel = "warn"

	// ShortestPrecision asks strconv for the shortest exact representation.
	ShortestPrecision = -1

	// MaxPrecision bounds the decimals accepted for norms.
	MaxPrecision = 17

	// DefaultFilePermissions is the file mode used by Save.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidLogLevel is returned for level names zap does not know.
	errInvalidLogLevel = errors.New("invalid log level")
	// errInvalidPrecision is returned for precisions outside [-1, MaxPrecision].
	errInvalidPrecision = errors.New("invalid precision")
)

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		Precision: ShortestPrecision,
	}
}

// Load reads the settings at path. A missing file at the default path yields
// Default; a missing file elsewhere is an error.
func Load(path string) (*Config, error) {
	explicit := path != "" && path != DefaultConfigFilename
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks cfg and fills defaults for empty fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.LogLevel)
	}

	if cfg.Precision < ShortestPrecision || cfg.Precision > MaxPrecision {
		return fmt.Errorf("%w: %d", errInvalidPrecision, cfg.Precision)
	}

	if cfg.LibraryVersion == "" {
		return nil
	}

	if _, err := loudness.ParseVersion(cfg.LibraryVersion); err != nil {
		return fmt.Errorf("library version override: %w", err)
	}

	return nil
}

// VersionSource returns the source selected by cfg: the fixed override when
// LibraryVersion is set, otherwise the linked library.
func (c *Config) VersionSource() (loudness.Source, error) {
	if c.LibraryVersion == "" {
		return loudness.Linked(), nil
	}

	v, err := loudness.ParseVersion(c.LibraryVersion)
	if err != nil {
		return nil, fmt.Errorf("library version override: %w", err)
	}

	return loudness.Fixed(v), nil
}
