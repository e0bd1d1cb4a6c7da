package bintypes

import (
	"fmt"
	"math"
	"time"

	"github.com/binpack-go/binpack"
)

// Timestamps and durations share one wire shape: whole seconds as u64
// followed by subsecond nanoseconds as u32. Values the shape cannot carry
// (pre-epoch times, negative durations) are encode errors rather than being
// wrapped or clamped.

// Time serializes a time.Time as seconds and nanoseconds since the Unix
// epoch. Decoded values are in UTC.
type Time struct {
	time.Time
}

func (t Time) EncodeBin(e *binpack.Encoder) error {
	secs := t.Unix()
	if secs < 0 {
		return &TimeRangeError{Detail: fmt.Sprintf("%v is before the Unix epoch", t.Time)}
	}
	if err := e.WriteU64(uint64(secs)); err != nil {
		return err
	}
	return e.WriteU32(uint32(t.Nanosecond()))
}

func (t *Time) DecodeBin(d *binpack.Decoder) error {
	secs, err := d.ReadU64()
	if err != nil {
		return err
	}
	nanos, err := d.ReadU32()
	if err != nil {
		return err
	}
	if secs > math.MaxInt64 {
		return &TimeRangeError{Detail: fmt.Sprintf("%d seconds since the epoch", secs)}
	}
	if nanos >= uint32(time.Second) {
		return &TimeRangeError{Detail: fmt.Sprintf("%d subsecond nanoseconds", nanos)}
	}
	t.Time = time.Unix(int64(secs), int64(nanos)).UTC()
	return nil
}

func (t *Time) BorrowDecodeBin(d *binpack.Decoder) error { return t.DecodeBin(d) }

// Duration serializes a non-negative time.Duration.
type Duration time.Duration

func (v Duration) EncodeBin(e *binpack.Encoder) error {
	dur := time.Duration(v)
	if dur < 0 {
		return &DurationRangeError{Detail: dur.String() + " is negative"}
	}
	if err := e.WriteU64(uint64(dur / time.Second)); err != nil {
		return err
	}
	return e.WriteU32(uint32(dur % time.Second))
}

func (v *Duration) DecodeBin(d *binpack.Decoder) error {
	secs, err := d.ReadU64()
	if err != nil {
		return err
	}
	nanos, err := d.ReadU32()
	if err != nil {
		return err
	}
	if nanos >= uint32(time.Second) {
		return &DurationRangeError{Detail: fmt.Sprintf("%d subsecond nanoseconds", nanos)}
	}
	if secs > uint64(math.MaxInt64/int64(time.Second))-1 {
		return &DurationRangeError{Detail: fmt.Sprintf("%d seconds", secs)}
	}
	*v = Duration(time.Duration(secs)*time.Second + time.Duration(nanos))
	return nil
}

func (v *Duration) BorrowDecodeBin(d *binpack.Decoder) error { return v.DecodeBin(d) }
