// Package loudness wraps the version query of the libebur128
// loudness-measurement library.
//
// The library reports its version through three output pointers. This package
// exposes it as a plain Version value obtained from a Source, and renders it
// as a dotted "major.minor.patch" string. Formatting never uses shared
// buffers: String allocates a new string on every call and FormatInto writes
// into a buffer owned by the caller, reporting ErrBufferTooSmall instead of
// overflowing it.
//
// The real library is only queried when the package is built with cgo and
// the "ebur128" build tag; otherwise Linked returns a source that reports
// ErrNotLinked.
package loudness
