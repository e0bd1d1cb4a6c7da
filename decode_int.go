package binpack

import (
	"math"
	"strconv"
)

// Varint decode always accumulates the full 128-bit value first and then
// checks it against the requested width, so an oversized value fails with
// OverflowError instead of being silently truncated.

// ReadU8 reads a single raw byte; u8 is never varint encoded.
func (d *Decoder) ReadU8() (uint8, error) { return d.readByte() }

// ReadI8 reads a single raw two's-complement byte.
func (d *Decoder) ReadI8() (int8, error) {
	b, err := d.readByte()
	return int8(b), err
}

// ReadU16 reads an unsigned 16-bit integer.
func (d *Decoder) ReadU16() (uint16, error) {
	v, err := d.readUnsigned(16)
	return uint16(v), err
}

// ReadU32 reads an unsigned 32-bit integer.
func (d *Decoder) ReadU32() (uint32, error) {
	v, err := d.readUnsigned(32)
	return uint32(v), err
}

// ReadU64 reads an unsigned 64-bit integer.
func (d *Decoder) ReadU64() (uint64, error) {
	return d.readUnsigned(64)
}

// ReadUint reads a pointer-sized unsigned integer from its 64-bit wire
// width. A value beyond the platform's uint range is an overflow error, so
// streams written on 64-bit platforms fail loudly on 32-bit ones instead of
// wrapping.
func (d *Decoder) ReadUint() (uint, error) {
	v, err := d.readUnsigned(64)
	if err != nil {
		return 0, err
	}
	if uint64(uint(v)) != v {
		return 0, &OverflowError{Value: strconv.FormatUint(v, 10), Bits: strconv.IntSize}
	}
	return uint(v), nil
}

// ReadU128 reads an unsigned 128-bit integer.
func (d *Decoder) ReadU128() (Uint128, error) {
	if d.cfg.IntEncoding == IntEncodingFixed {
		if err := d.Read(d.scratch[:16]); err != nil {
			return Uint128{}, err
		}
		if d.cfg.ByteOrder == BigEndian {
			return Uint128{Hi: d.order().Uint64(d.scratch[:8]), Lo: d.order().Uint64(d.scratch[8:16])}, nil
		}
		return Uint128{Hi: d.order().Uint64(d.scratch[8:16]), Lo: d.order().Uint64(d.scratch[:8])}, nil
	}
	return d.readUleb128()
}

// readUnsigned reads an unsigned integer of 16, 32 or 64 bits.
func (d *Decoder) readUnsigned(bits int) (uint64, error) {
	if d.cfg.IntEncoding == IntEncodingFixed {
		n := bits / 8
		if err := d.Read(d.scratch[:n]); err != nil {
			return 0, err
		}
		switch n {
		case 2:
			return uint64(d.order().Uint16(d.scratch[:2])), nil
		case 4:
			return uint64(d.order().Uint32(d.scratch[:4])), nil
		default:
			return d.order().Uint64(d.scratch[:8]), nil
		}
	}
	v, err := d.readUleb128()
	if err != nil {
		return 0, err
	}
	if v.Hi != 0 || (bits < 64 && v.Lo > uint64(1)<<bits-1) {
		return 0, &OverflowError{Value: v.String(), Bits: bits}
	}
	return v.Lo, nil
}

// ReadI16 reads a signed 16-bit integer.
func (d *Decoder) ReadI16() (int16, error) {
	v, err := d.readSigned(16)
	return int16(v), err
}

// ReadI32 reads a signed 32-bit integer.
func (d *Decoder) ReadI32() (int32, error) {
	v, err := d.readSigned(32)
	return int32(v), err
}

// ReadI64 reads a signed 64-bit integer.
func (d *Decoder) ReadI64() (int64, error) {
	return d.readSigned(64)
}

// ReadInt reads a pointer-sized signed integer from its 64-bit wire width,
// with the same narrowing rule as ReadUint.
func (d *Decoder) ReadInt() (int, error) {
	v, err := d.readSigned(64)
	if err != nil {
		return 0, err
	}
	if int64(int(v)) != v {
		return 0, &OverflowError{Value: strconv.FormatInt(v, 10), Bits: strconv.IntSize, Signed: true}
	}
	return int(v), nil
}

// ReadI128 reads a signed 128-bit integer.
func (d *Decoder) ReadI128() (Int128, error) {
	if d.cfg.IntEncoding == IntEncodingFixed {
		u, err := d.ReadU128()
		return Int128{Hi: u.Hi, Lo: u.Lo}, err
	}
	return d.readSleb128()
}

// readSigned reads a signed integer of 16, 32 or 64 bits.
func (d *Decoder) readSigned(bits int) (int64, error) {
	if d.cfg.IntEncoding == IntEncodingFixed {
		v, err := d.readUnsigned(bits)
		if err != nil {
			return 0, err
		}
		switch bits {
		case 16:
			return int64(int16(v)), nil
		case 32:
			return int64(int32(v)), nil
		default:
			return int64(v), nil
		}
	}
	v, err := d.readSleb128()
	if err != nil {
		return 0, err
	}
	n, ok := v.Int64()
	if !ok {
		return 0, &OverflowError{Value: v.String(), Bits: bits, Signed: true}
	}
	if bits < 64 {
		min, max := int64(-1)<<(bits-1), int64(1)<<(bits-1)-1
		if n < min || n > max {
			return 0, &OverflowError{Value: v.String(), Bits: bits, Signed: true}
		}
	}
	return n, nil
}

// ReadLen reads a container element count. The count is bounds-checked like
// any other integer; the caller still claims the implied byte cost against
// the budget before allocating.
func (d *Decoder) ReadLen() (int, error) {
	v, err := d.readUnsigned(64)
	if err != nil {
		return 0, err
	}
	if v > uint64(math.MaxInt) {
		return 0, &OverflowError{Value: strconv.FormatUint(v, 10), Bits: strconv.IntSize}
	}
	return int(v), nil
}
