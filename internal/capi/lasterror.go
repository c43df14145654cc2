package capi

import (
	"encoding/json"
	"fmt"
	"sync"
)

var (
	//nolint:gochecknoglobals // C callers read errors through a single exported accessor.
	lastErrMu sync.Mutex
	//nolint:gochecknoglobals // Guarded by lastErrMu.
	lastErr string
)

// errorBody is the JSON shape returned to C callers.
type errorBody struct {
	Error string `json:"error"`
}

// Recover runs f and converts a panic into an error.
func Recover(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errFromRecover(r)
		}
	}()

	f()

	return nil
}

// Call runs f with panic recovery and records any failure as the last error.
// It reports whether f succeeded.
func Call(f func() error) bool {
	var callErr error

	if err := Recover(func() { callErr = f() }); err != nil {
		callErr = err
	}

	SetLastError(callErr)

	return callErr == nil
}

// SetLastError stores err for LastErrorJSON. A nil error clears the slot.
func SetLastError(err error) {
	lastErrMu.Lock()
	defer lastErrMu.Unlock()

	if err == nil {
		lastErr = ""
		return
	}

	//nolint:errchkjson // A struct with one string field always marshals.
	data, _ := json.Marshal(errorBody{Error: err.Error()})
	lastErr = string(data)
}

// ClearLastError empties the last-error slot.
func ClearLastError() {
	SetLastError(nil)
}

// LastErrorJSON returns {"error":"..."} for the last failure, or {} if none.
func LastErrorJSON() string {
	lastErrMu.Lock()
	defer lastErrMu.Unlock()

	if lastErr == "" {
		return "{}"
	}

	return lastErr
}

func errFromRecover(r any) error {
	switch x := r.(type) {
	case error:
		return fmt.Errorf("panic: %w", x)
	default:
		return fmt.Errorf("panic: %v", x)
	}
}
