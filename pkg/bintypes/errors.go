package bintypes

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrZeroAddr reports an attempt to encode the zero netip.Addr, which
	// is neither IPv4 nor IPv6.
	ErrZeroAddr = errors.New("bintypes: cannot encode the zero network address")

	// ErrPathNotUTF8 reports a filesystem path that is not valid UTF-8 and
	// therefore has no portable wire representation.
	ErrPathNotUTF8 = errors.New("bintypes: path is not valid UTF-8")
)

// NulError reports an interior NUL byte in a CString.
type NulError struct {
	Position int
}

func (e *NulError) Error() string {
	return fmt.Sprintf("bintypes: interior NUL byte at position %d", e.Position)
}

// TimeRangeError reports a timestamp outside the representable range of the
// wire format (seconds since the Unix epoch as u64) or of time.Time.
type TimeRangeError struct {
	Detail string
}

func (e *TimeRangeError) Error() string {
	return "bintypes: time out of range: " + e.Detail
}

// DurationRangeError reports a duration the wire format or time.Duration
// cannot represent.
type DurationRangeError struct {
	Detail string
}

func (e *DurationRangeError) Error() string {
	return "bintypes: duration out of range: " + e.Detail
}
