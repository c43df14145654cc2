package loudness

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/coreos/go-semver/semver"
)

// LegacyBufferSize is the capacity of the static buffer the original C
// binding formatted into. It fits at most seven characters plus a NUL.
const LegacyBufferSize = 8

var (
	// ErrBufferTooSmall is returned when a caller buffer cannot hold the
	// formatted version and its NUL terminator.
	ErrBufferTooSmall = errors.New("buffer too small for version string")
	// ErrInvalidVersion is returned when a string is not a plain numeric triple.
	ErrInvalidVersion = errors.New("invalid version")
)

// Version is a semantic version triple reported by the library.
type Version struct {
	// Major is the major version component.
	Major int
	// Minor is the minor version component.
	Minor int
	// Patch is the patch version component.
	Patch int
}

// String returns the version as "major.minor.patch".
func (v Version) String() string {
	return string(v.AppendTo(make([]byte, 0, v.Len())))
}

// AppendTo appends the dotted form of v to dst and returns the extended slice.
func (v Version) AppendTo(dst []byte) []byte {
	dst = strconv.AppendInt(dst, int64(v.Major), 10)
	dst = append(dst, '.')
	dst = strconv.AppendInt(dst, int64(v.Minor), 10)
	dst = append(dst, '.')

	return strconv.AppendInt(dst, int64(v.Patch), 10)
}

// Len returns the length of the dotted form of v, without a terminator.
func (v Version) Len() int {
	return digits(v.Major) + digits(v.Minor) + digits(v.Patch) + 2
}

// FormatInto writes the dotted form of v followed by a NUL byte into buf and
// returns the number of bytes written, excluding the NUL.
// Nothing is written when buf is too small.
func (v Version) FormatInto(buf []byte) (int, error) {
	n := v.Len()
	if n+1 > len(buf) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, n+1, len(buf))
	}

	v.AppendTo(buf[:0])
	buf[n] = 0

	return n, nil
}

// ParseVersion parses a "major.minor.patch" string.
// Pre-release and build metadata suffixes and leading zeros are rejected, so a
// parsed value always renders back to s.
func ParseVersion(s string) (Version, error) {
	parsed, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("%w %q: %w", ErrInvalidVersion, s, err)
	}

	if parsed.PreRelease != "" || parsed.Metadata != "" {
		return Version{}, fmt.Errorf("%w %q: suffixes are not allowed", ErrInvalidVersion, s)
	}

	for _, part := range []int64{parsed.Major, parsed.Minor, parsed.Patch} {
		if part < 0 || part > math.MaxInt32 {
			return Version{}, fmt.Errorf("%w %q: component %d out of range", ErrInvalidVersion, s, part)
		}
	}

	v := Version{
		Major: int(parsed.Major),
		Minor: int(parsed.Minor),
		Patch: int(parsed.Patch),
	}

	// Leading zeros are the only spelling left that String would not reproduce.
	if v.String() != s {
		return Version{}, fmt.Errorf("%w %q: leading zeros are not allowed", ErrInvalidVersion, s)
	}

	return v, nil
}

// digits counts the characters strconv uses for n, sign included.
func digits(n int) int {
	count := 1
	if n < 0 {
		count++
	}

	for n >= 10 || n <= -10 {
		n /= 10
		count++
	}

	return count
}
