package binpack

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel values for errors.Is matching. The concrete error carries the
// structured detail and is retrieved with errors.As.
var (
	ErrIO           = errors.New("binpack: io failure")
	ErrLimit        = errors.New("binpack: length budget exceeded")
	ErrDepth        = errors.New("binpack: max nesting depth exceeded")
	ErrVarint       = errors.New("binpack: malformed varint")
	ErrOverflow     = errors.New("binpack: integer overflow")
	ErrDiscriminant = errors.New("binpack: invalid discriminant")
	ErrLock         = errors.New("binpack: lock acquisition failed")
	ErrBool         = errors.New("binpack: invalid boolean byte")
	ErrUTF8         = errors.New("binpack: string is not valid UTF-8")
	ErrBorrow       = errors.New("binpack: source does not support borrowing")
)

// IOError reports a read or write against the sink/source that could not be
// completed. Reads carry Needed, the byte count the medium could not supply
// beyond what it had; writes carry Offset, the bytes already committed before
// the failure.
type IOError struct {
	Op     string // "read" or "write"
	Needed int
	Offset int
	Err    error
}

func (e *IOError) Error() string {
	if e.Op == "read" {
		return fmt.Sprintf("binpack: %s failed, %d more byte(s) required: %v", e.Op, e.Needed, e.Err)
	}
	return fmt.Sprintf("binpack: %s failed after %d byte(s): %v", e.Op, e.Offset, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// LimitError reports a container claim, or a read, that would exceed the
// bytes the session is still allowed to consume. It is returned before any
// backing storage for the claimed elements is allocated.
type LimitError struct {
	Claimed   uint64
	Remaining uint64
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("binpack: claim of %d byte(s) exceeds remaining budget of %d", e.Claimed, e.Remaining)
}

func (e *LimitError) Is(target error) bool { return target == ErrLimit }

// DepthError reports input nested deeper than Config.MaxDepth.
type DepthError struct {
	MaxDepth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("binpack: input nested deeper than %d levels", e.MaxDepth)
}

func (e *DepthError) Is(target error) bool { return target == ErrDepth }

// VarintError reports a varint with more continuation groups than any value
// of Bits bits can need.
type VarintError struct {
	Bits int
}

func (e *VarintError) Error() string {
	return fmt.Sprintf("binpack: varint longer than any %d-bit value", e.Bits)
}

func (e *VarintError) Is(target error) bool { return target == ErrVarint }

// OverflowError reports a fully-decoded integer that does not fit the
// requested width. Value is the decimal rendering of the decoded value, which
// may need up to 128 bits.
type OverflowError struct {
	Value  string
	Bits   int
	Signed bool
}

func (e *OverflowError) Error() string {
	kind := "u"
	if e.Signed {
		kind = "i"
	}
	return fmt.Sprintf("binpack: value %s does not fit %s%d", e.Value, kind, e.Bits)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }

// Allowed describes the valid discriminant set of a sum type, either as a
// contiguous range or as an explicit list.
type Allowed struct {
	Min, Max uint32
	Values   []uint32 // non-nil takes precedence over Min/Max
}

// AllowedRange declares min..=max as the valid tags.
func AllowedRange(min, max uint32) Allowed { return Allowed{Min: min, Max: max} }

// AllowedValues declares an explicit tag list.
func AllowedValues(vs ...uint32) Allowed { return Allowed{Values: vs} }

func (a Allowed) contains(v uint32) bool {
	if a.Values != nil {
		for _, w := range a.Values {
			if w == v {
				return true
			}
		}
		return false
	}
	return v >= a.Min && v <= a.Max
}

func (a Allowed) String() string {
	if a.Values != nil {
		return fmt.Sprintf("one of %v", a.Values)
	}
	return fmt.Sprintf("%d..=%d", a.Min, a.Max)
}

// DiscriminantError reports a sum-type tag outside the declared valid set.
// Decoding never falls back to a default variant.
type DiscriminantError struct {
	TypeName string
	Found    uint32
	Allowed  Allowed
}

func (e *DiscriminantError) Error() string {
	return fmt.Sprintf("binpack: invalid discriminant %d for %s, allowed %s", e.Found, e.TypeName, e.Allowed)
}

func (e *DiscriminantError) Is(target error) bool { return target == ErrDiscriminant }

// LockError reports that a guarded leaf adapter could not acquire its lock.
type LockError struct {
	TypeName string
}

func (e *LockError) Error() string {
	return fmt.Sprintf("binpack: could not acquire lock guarding %s", e.TypeName)
}

func (e *LockError) Is(target error) bool { return target == ErrLock }
