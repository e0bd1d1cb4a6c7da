package binpack

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Decoder is a decoding session: one source, one config, one optional context
// value, plus the length budget and nesting depth for the current top-level
// decode call. Nested DecodeBin calls reuse the same Decoder; it is never
// shared across goroutines.
type Decoder struct {
	r       Reader
	cfg     Config
	ctx     any
	budget  uint64
	limited bool
	depth   int
	scratch [16]byte
}

// NewDecoder returns a decoding session reading from r. The length budget
// starts at the bytes the source is known to hold (the remaining length of a
// SliceReader), clamped by Config.Limit. A stream source with no configured
// limit decodes with container claims unchecked.
func NewDecoder(r Reader, cfg Config) *Decoder {
	d := &Decoder{r: r, cfg: cfg}
	if sr, ok := r.(*SliceReader); ok {
		d.budget = uint64(sr.Remaining())
		d.limited = true
	}
	if cfg.Limit > 0 {
		if lim := uint64(cfg.Limit); !d.limited || lim < d.budget {
			d.budget = lim
			d.limited = true
		}
	}
	return d
}

// NewDecoderContext is NewDecoder with a caller-supplied context value,
// retrievable with Context from every nested call.
func NewDecoderContext(r Reader, cfg Config, ctx any) *Decoder {
	d := NewDecoder(r, cfg)
	d.ctx = ctx
	return d
}

// Reader returns the session's source.
func (d *Decoder) Reader() Reader { return d.r }

// Config returns the session's configuration.
func (d *Decoder) Config() Config { return d.cfg }

// Context returns the value passed at session construction, or nil.
func (d *Decoder) Context() any { return d.ctx }

func (d *Decoder) order() binary.ByteOrder {
	if d.cfg.ByteOrder == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Read fills p from the source, debiting the length budget. Every read in
// the session funnels through here so claims and real consumption stay in
// one account.
func (d *Decoder) Read(p []byte) error {
	if d.limited {
		if n := uint64(len(p)); n > d.budget {
			return &LimitError{Claimed: n, Remaining: d.budget}
		}
	}
	if err := d.r.Read(p); err != nil {
		return err
	}
	if d.limited {
		d.budget -= uint64(len(p))
	}
	return nil
}

func (d *Decoder) readByte() (byte, error) {
	if err := d.Read(d.scratch[:1]); err != nil {
		return 0, err
	}
	return d.scratch[0], nil
}

// ReadBool reads a single byte that must be 0 or 1.
func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.readByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.Wrapf(ErrBool, "found 0x%02X", b)
	}
}

// ReadF32 reads fixed-width IEEE-754 bits.
func (d *Decoder) ReadF32() (float32, error) {
	if err := d.Read(d.scratch[:4]); err != nil {
		return 0, err
	}
	return math.Float32frombits(d.order().Uint32(d.scratch[:4])), nil
}

// ReadF64 reads fixed-width IEEE-754 bits.
func (d *Decoder) ReadF64() (float64, error) {
	if err := d.Read(d.scratch[:8]); err != nil {
		return 0, err
	}
	return math.Float64frombits(d.order().Uint64(d.scratch[:8])), nil
}

// ReadBytes reads a length-prefixed byte string into a fresh buffer. The
// declared length is checked against the budget before the buffer is
// allocated.
func (d *Decoder) ReadBytes() ([]byte, error) {
	n, err := d.ReadLen()
	if err != nil {
		return nil, err
	}
	if err := d.ensure(uint64(n)); err != nil {
		return nil, err
	}
	p := make([]byte, n)
	if err := d.Read(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ReadString reads a length-prefixed string, validating UTF-8.
func (d *Decoder) ReadString() (string, error) {
	p, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(p) {
		return "", ErrUTF8
	}
	return string(p), nil
}

// BorrowBytes reads a length-prefixed byte string without copying; the result
// aliases the input buffer. Only slice-backed sources support it.
func (d *Decoder) BorrowBytes() ([]byte, error) {
	n, err := d.ReadLen()
	if err != nil {
		return nil, err
	}
	return d.Borrow(n)
}

// BorrowString is BorrowBytes for strings, validating UTF-8. The returned
// string aliases the input buffer, which therefore must not be mutated while
// the string is live.
func (d *Decoder) BorrowString() (string, error) {
	p, err := d.BorrowBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(p) {
		return "", ErrUTF8
	}
	if len(p) == 0 {
		return "", nil
	}
	return unsafe.String(unsafe.SliceData(p), len(p)), nil
}

// Borrow returns the next n bytes of a slice-backed source without copying.
func (d *Decoder) Borrow(n int) ([]byte, error) {
	br, ok := d.r.(borrower)
	if !ok {
		return nil, ErrBorrow
	}
	if d.limited {
		if u := uint64(n); u > d.budget {
			return nil, &LimitError{Claimed: u, Remaining: d.budget}
		}
	}
	p, err := br.Borrow(n)
	if err != nil {
		return nil, err
	}
	if d.limited {
		d.budget -= uint64(n)
	}
	return p, nil
}

// ReadDiscriminant reads a fixed four-byte sum-type tag and rejects any value
// outside allowed with a DiscriminantError naming typeName.
func (d *Decoder) ReadDiscriminant(typeName string, allowed Allowed) (uint32, error) {
	if err := d.Read(d.scratch[:4]); err != nil {
		return 0, err
	}
	tag := d.order().Uint32(d.scratch[:4])
	if !allowed.contains(tag) {
		return 0, &DiscriminantError{TypeName: typeName, Found: tag, Allowed: allowed}
	}
	return tag, nil
}
