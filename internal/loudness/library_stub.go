//go:build !cgo || !ebur128

package loudness

// IsLinked reports whether libebur128 is compiled into this build.
const IsLinked = false

func queryLibrary() (Version, error) {
	return Version{}, ErrNotLinked
}
