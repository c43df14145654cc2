// Package version exposes build metadata for the loudness binaries.
//
// Version, Commit, and BuildTime are injected at build time via Go ldflags.
// Full also reports which libebur128 release, if any, the binary links.
package version
