package bintypes

import (
	"net/netip"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binpack-go/binpack"
)

func roundTrip(t *testing.T, in binpack.Encodable, out binpack.Decodable) {
	t.Helper()
	data, err := binpack.Marshal(in)
	require.NoError(t, err)
	require.NoError(t, binpack.Unmarshal(data, out))
}

func TestAddr(t *testing.T) {
	t.Run("IPv4", func(t *testing.T) {
		in := Addr{netip.MustParseAddr("192.0.2.7")}
		data, err := binpack.Marshal(in)
		require.NoError(t, err)

		// Family tag 0, then four octets.
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 192, 0, 2, 7}, data)

		var got Addr
		require.NoError(t, binpack.Unmarshal(data, &got))
		assert.Equal(t, in.Addr, got.Addr)
	})

	t.Run("IPv6", func(t *testing.T) {
		in := Addr{netip.MustParseAddr("2001:db8::1")}
		var got Addr
		roundTrip(t, in, &got)
		assert.Equal(t, in.Addr, got.Addr)
	})

	t.Run("4-in-6 addresses unmap to IPv4", func(t *testing.T) {
		in := Addr{netip.MustParseAddr("::ffff:192.0.2.7")}
		var got Addr
		roundTrip(t, in, &got)
		assert.Equal(t, netip.MustParseAddr("192.0.2.7"), got.Addr)
	})

	t.Run("zero address is an encode error", func(t *testing.T) {
		_, err := binpack.Marshal(Addr{})
		require.ErrorIs(t, err, ErrZeroAddr)
	})

	t.Run("unknown family tag", func(t *testing.T) {
		data := []byte{0x02, 0x00, 0x00, 0x00}
		var got Addr
		err := binpack.Unmarshal(data, &got)
		require.ErrorIs(t, err, binpack.ErrDiscriminant)
	})

	t.Run("address with port", func(t *testing.T) {
		in := AddrPort{netip.MustParseAddrPort("[2001:db8::1]:8080")}
		var got AddrPort
		roundTrip(t, in, &got)
		assert.Equal(t, in.AddrPort, got.AddrPort)
	})
}

func TestTime(t *testing.T) {
	t.Run("round-trips in UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*3600)
		in := Time{time.Date(2024, 6, 1, 12, 30, 15, 987654321, loc)}

		var got Time
		roundTrip(t, in, &got)
		assert.True(t, in.Time.Equal(got.Time))
		assert.Equal(t, time.UTC, got.Location())
	})

	t.Run("pre-epoch times are encode errors", func(t *testing.T) {
		in := Time{time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)}
		_, err := binpack.Marshal(in)
		var terr *TimeRangeError
		require.ErrorAs(t, err, &terr)
	})

	t.Run("overlong nanoseconds are decode errors", func(t *testing.T) {
		data := encodeRaw(t, func(e *binpack.Encoder) error {
			if err := e.WriteU64(100); err != nil {
				return err
			}
			return e.WriteU32(2_000_000_000)
		})
		var got Time
		err := binpack.Unmarshal(data, &got)
		var terr *TimeRangeError
		require.ErrorAs(t, err, &terr)
	})
}

func TestDuration(t *testing.T) {
	t.Run("round-trips", func(t *testing.T) {
		in := Duration(90*time.Minute + 250*time.Millisecond)
		var got Duration
		roundTrip(t, in, &got)
		assert.Equal(t, in, got)
	})

	t.Run("negative durations are encode errors", func(t *testing.T) {
		_, err := binpack.Marshal(Duration(-time.Second))
		var derr *DurationRangeError
		require.ErrorAs(t, err, &derr)
	})

	t.Run("seconds beyond time.Duration are decode errors", func(t *testing.T) {
		data := encodeRaw(t, func(e *binpack.Encoder) error {
			if err := e.WriteU64(1 << 40); err != nil {
				return err
			}
			return e.WriteU32(0)
		})
		var got Duration
		err := binpack.Unmarshal(data, &got)
		var derr *DurationRangeError
		require.ErrorAs(t, err, &derr)
	})
}

func TestCString(t *testing.T) {
	t.Run("round-trips", func(t *testing.T) {
		in := CString("plain text")
		var got CString
		roundTrip(t, in, &got)
		assert.Equal(t, in, got)
	})

	t.Run("interior NUL is rejected with its position", func(t *testing.T) {
		_, err := binpack.Marshal(CString("ab\x00cd"))
		var nerr *NulError
		require.ErrorAs(t, err, &nerr)
		assert.Equal(t, 2, nerr.Position)
	})

	t.Run("decoded NUL is rejected too", func(t *testing.T) {
		data := encodeRaw(t, func(e *binpack.Encoder) error {
			return e.WriteBytes([]byte{'x', 0, 'y'})
		})
		var got CString
		err := binpack.Unmarshal(data, &got)
		var nerr *NulError
		require.ErrorAs(t, err, &nerr)
		assert.Equal(t, 1, nerr.Position)
	})
}

func TestPath(t *testing.T) {
	t.Run("round-trips", func(t *testing.T) {
		in := Path("/var/lib/app/data.db")
		var got Path
		roundTrip(t, in, &got)
		assert.Equal(t, in, got)
	})

	t.Run("non-UTF-8 path is an encode error", func(t *testing.T) {
		_, err := binpack.Marshal(Path("bad\xFFpath"))
		require.ErrorIs(t, err, ErrPathNotUTF8)
	})

	t.Run("borrowing decode aliases the input", func(t *testing.T) {
		data, err := binpack.Marshal(Path("/tmp/x"))
		require.NoError(t, err)

		var got Path
		require.NoError(t, binpack.BorrowUnmarshal(data, &got))
		assert.Equal(t, Path("/tmp/x"), got)
	})
}

func TestLocked(t *testing.T) {
	t.Run("mutex value round-trips", func(t *testing.T) {
		m := NewMutex(uint32(41))
		m.Do(func(v *uint32) { *v++ })

		data := encodeRaw(t, func(e *binpack.Encoder) error {
			return EncodeMutex(e, m, (*binpack.Encoder).WriteU32)
		})

		got, err := DecodeMutex(binpack.NewDecoder(binpack.NewSliceReader(data), binpack.DefaultConfig()), (*binpack.Decoder).ReadU32)
		require.NoError(t, err)
		got.Do(func(v *uint32) { assert.Equal(t, uint32(42), *v) })
	})

	t.Run("held mutex fails instead of blocking", func(t *testing.T) {
		m := NewMutex("busy")
		release := make(chan struct{})
		held := make(chan struct{})
		go m.Do(func(v *string) {
			close(held)
			<-release
		})
		<-held

		e := binpack.NewEncoder(&binpack.SliceWriter{}, binpack.DefaultConfig())
		err := EncodeMutex(e, m, (*binpack.Encoder).WriteString)
		close(release)

		require.ErrorIs(t, err, binpack.ErrLock)
		var lerr *binpack.LockError
		require.ErrorAs(t, err, &lerr)
		assert.Contains(t, lerr.TypeName, "Mutex")
	})

	t.Run("rwmutex encodes under a read lock", func(t *testing.T) {
		m := NewRWMutex([]uint8{1, 2, 3})
		data := encodeRaw(t, func(e *binpack.Encoder) error {
			return EncodeRWMutex(e, m, func(e *binpack.Encoder, v []uint8) error {
				return binpack.EncodeSlice(e, v, (*binpack.Encoder).WriteU8)
			})
		})

		got, err := DecodeRWMutex(binpack.NewDecoder(binpack.NewSliceReader(data), binpack.DefaultConfig()), func(d *binpack.Decoder) ([]uint8, error) {
			return binpack.DecodeSlice(d, (*binpack.Decoder).ReadU8)
		})
		require.NoError(t, err)
		got.View(func(v []uint8) { assert.Equal(t, []uint8{1, 2, 3}, v) })
	})
}

func TestUUID(t *testing.T) {
	in := UUID{uuid.Must(uuid.FromString("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))}
	data, err := binpack.Marshal(in)
	require.NoError(t, err)
	require.Len(t, data, 16)

	var got UUID
	require.NoError(t, binpack.Unmarshal(data, &got))
	assert.Equal(t, in.UUID, got.UUID)
}

func encodeRaw(t *testing.T, f func(*binpack.Encoder) error) []byte {
	t.Helper()
	w := &binpack.SliceWriter{}
	require.NoError(t, f(binpack.NewEncoder(w, binpack.DefaultConfig())))
	return w.Bytes()
}
