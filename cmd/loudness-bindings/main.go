// Command loudness-bindings is built with -buildmode=c-shared and exports the
// libebur128 version query and the two-dimensional norm to C hosts.
//
// Strings returned to the host are allocated per call and must be released
// with bindings_free. Failures are reported through bindings_last_error_json
// and cleared with bindings_clear_error.
package main

/*
#include <stdlib.h>
#include <stdint.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/oshokin/loudness-bindings/internal/capi"
	"github.com/oshokin/loudness-bindings/internal/geometry"
	"github.com/oshokin/loudness-bindings/internal/loudness"
)

var errNilBuffer = errors.New("output buffer is NULL")

//export bindings_free
func bindings_free(p unsafe.Pointer) {
	C.free(p)
}

//export bindings_last_error_json
func bindings_last_error_json() *C.char {
	return C.CString(capi.LastErrorJSON())
}

// get_version returns a newly allocated "major.minor.patch" string, or NULL
// when the library cannot be queried.
//
//export get_version
func get_version() *C.char {
	var version string

	ok := capi.Call(func() error {
		var err error

		version, err = loudness.Report(loudness.Linked())

		return err
	})
	if !ok {
		return nil
	}

	return C.CString(version)
}

// get_version_into writes the NUL-terminated version into buf of n bytes.
// It returns 0 on success and 1 on failure.
//
//export get_version_into
func get_version_into(buf *C.char, n C.size_t) C.int32_t {
	ok := capi.Call(func() error {
		if buf == nil {
			return errNilBuffer
		}

		return formatVersionInto(loudness.Linked(), unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(n)))
	})
	if !ok {
		return 1
	}

	return 0
}

//export bindings_clear_error
func bindings_clear_error() {
	capi.ClearLastError()
}

//export size
func size(x, y C.double) C.double {
	return C.double(geometry.Norm2D(float64(x), float64(y)))
}

// formatVersionInto queries src and writes the NUL-terminated version into dst.
func formatVersionInto(src loudness.Source, dst []byte) error {
	v, err := src.Version()
	if err != nil {
		return fmt.Errorf("query library version: %w", err)
	}

	_, err = v.FormatInto(dst)

	return err
}

func main() {}
