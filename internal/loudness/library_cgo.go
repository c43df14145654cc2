//go:build cgo && ebur128

package loudness

/*
#cgo pkg-config: libebur128
#include <ebur128.h>
*/
import "C"

// IsLinked reports whether libebur128 is compiled into this build.
const IsLinked = true

func queryLibrary() (Version, error) {
	var major, minor, patch C.int

	C.ebur128_get_version(&major, &minor, &patch)

	return Version{
		Major: int(major),
		Minor: int(minor),
		Patch: int(patch),
	}, nil
}
