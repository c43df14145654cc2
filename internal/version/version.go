package version

import (
	"fmt"

	"github.com/oshokin/loudness-bindings/internal/loudness"
)

var (
	// Version is the semantic version of the build. It can be overridden via ldflags.
	Version = "0.1.0"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns build metadata together with the libebur128 version reported by src.
func Full(src loudness.Source) string {
	library, err := loudness.Report(src)
	if err != nil {
		library = "not linked"
	}

	return fmt.Sprintf("version: %s, commit: %s, built at: %s, libebur128: %s", Version, Commit, BuildTime, library)
}
