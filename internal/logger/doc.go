// Package logger wraps zap for the binaries in this module:
//   - a global sugared console logger writing to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and switching,
//   - leveled helpers that take the logger from a context.
//
// Standard output is left to command results, so logs never mix with values
// printed for scripts.
package logger
