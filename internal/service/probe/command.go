package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/oshokin/loudness-bindings/internal/config"
	"github.com/oshokin/loudness-bindings/internal/geometry"
	"github.com/oshokin/loudness-bindings/internal/logger"
	"github.com/oshokin/loudness-bindings/internal/loudness"
)

// Options controls the probe subcommands.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// LogLevel overrides the level from the settings file when not empty.
	LogLevel string
}

// errInvalidLogLevel is returned when the --log-level flag is not a zap level.
var errInvalidLogLevel = errors.New("invalid log level")

// LibraryVersion prints the libebur128 version to out.
func LibraryVersion(ctx context.Context, out io.Writer, opts *Options) error {
	ctx = logger.WithName(ctx, "lib-version")

	cfg, err := setup(ctx, opts)
	if err != nil {
		return err
	}

	src, err := cfg.VersionSource()
	if err != nil {
		return err
	}

	if cfg.LibraryVersion != "" {
		if loudness.IsLinked {
			logger.WarnKV(ctx, "Settings override the linked libebur128 version", "override", cfg.LibraryVersion)
		} else {
			logger.Info(ctx, "Using library version from settings")
		}
	}

	ctx = logger.WithKV(ctx, "overridden", cfg.LibraryVersion != "", "linked", loudness.IsLinked)

	version, err := loudness.Report(src)
	if err != nil {
		logger.ErrorKV(ctx, "Library version unavailable", "error", err)
		return err
	}

	logger.DebugKV(ctx, "Library version reported", "version", version)

	if _, err = fmt.Fprintln(out, version); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// Norm parses x and y as float64 values and prints their Euclidean norm to out.
// "inf", "-inf" and "nan" are accepted.
func Norm(ctx context.Context, out io.Writer, opts *Options, xArg, yArg string) error {
	ctx = logger.WithName(ctx, "norm")

	cfg, err := setup(ctx, opts)
	if err != nil {
		return err
	}

	logger.Debugf(ctx, "Printing norm with precision %d", cfg.Precision)

	x, err := strconv.ParseFloat(xArg, 64)
	if err != nil {
		return fmt.Errorf("parse x: %w", err)
	}

	y, err := strconv.ParseFloat(yArg, 64)
	if err != nil {
		return fmt.Errorf("parse y: %w", err)
	}

	norm := geometry.Norm2D(x, y)

	logger.DebugKV(ctx, "Norm computed", "x", x, "y", y, "norm", norm)

	if _, err = fmt.Fprintln(out, FormatNorm(norm, cfg.Precision)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// FormatNorm renders v with the given number of decimals, or in the shortest
// exact form when precision is config.ShortestPrecision.
func FormatNorm(v float64, precision int) string {
	if precision == config.ShortestPrecision {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}

// setup loads settings and applies the effective log level.
func setup(ctx context.Context, opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	levelName := cfg.LogLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}

	level, ok := logger.ParseLogLevel(levelName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errInvalidLogLevel, levelName)
	}

	logger.SetLevel(level)
	logger.Debugf(ctx, "Log level set to %s", logger.Level())

	return cfg, nil
}
