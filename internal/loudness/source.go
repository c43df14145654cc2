package loudness

import (
	"errors"
	"fmt"
)

// ErrNotLinked is returned by the linked source when the binary was built
// without libebur128.
var ErrNotLinked = errors.New("libebur128 is not linked into this build")

// Source reports the version of the loudness-measurement library.
type Source interface {
	// Version queries the library. It is called once per report and the
	// result is never cached.
	Version() (Version, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() (Version, error)

// Version calls f.
func (f SourceFunc) Version() (Version, error) {
	return f()
}

// Fixed returns a source that always reports v.
func Fixed(v Version) Source {
	return SourceFunc(func() (Version, error) {
		return v, nil
	})
}

// Linked returns the source backed by libebur128's ebur128_get_version.
func Linked() Source {
	return SourceFunc(queryLibrary)
}

// Report queries src once and returns the formatted version.
// Every call returns an independent string.
func Report(src Source) (string, error) {
	v, err := src.Version()
	if err != nil {
		return "", fmt.Errorf("query library version: %w", err)
	}

	return v.String(), nil
}
