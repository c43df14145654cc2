// Package probe implements the loudness-probe subcommands: reporting the
// libebur128 version and computing two-dimensional norms from the shell.
package probe
