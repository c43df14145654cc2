// Package capi keeps the state shared by the C ABI exports: a last-error slot
// rendered as JSON and panic recovery around each exported call.
package capi
