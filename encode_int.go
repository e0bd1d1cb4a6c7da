package binpack

// Multi-byte integers honor Config.IntEncoding: LEB128/SLEB128 varints by
// default, fixed-width two's complement in the configured byte order
// otherwise. uint/int always occupy the 64-bit width on the wire so 32- and
// 64-bit platforms interoperate.

// WriteU16 writes an unsigned 16-bit integer.
func (e *Encoder) WriteU16(v uint16) error {
	if e.cfg.IntEncoding == IntEncodingFixed {
		e.order().PutUint16(e.scratch[:2], v)
		return e.w.Write(e.scratch[:2])
	}
	return e.w.Write(appendUleb128(e.scratch[:0], Uint128From64(uint64(v))))
}

// WriteU32 writes an unsigned 32-bit integer.
func (e *Encoder) WriteU32(v uint32) error {
	if e.cfg.IntEncoding == IntEncodingFixed {
		e.order().PutUint32(e.scratch[:4], v)
		return e.w.Write(e.scratch[:4])
	}
	return e.w.Write(appendUleb128(e.scratch[:0], Uint128From64(uint64(v))))
}

// WriteU64 writes an unsigned 64-bit integer.
func (e *Encoder) WriteU64(v uint64) error {
	if e.cfg.IntEncoding == IntEncodingFixed {
		e.order().PutUint64(e.scratch[:8], v)
		return e.w.Write(e.scratch[:8])
	}
	return e.w.Write(appendUleb128(e.scratch[:0], Uint128From64(v)))
}

// WriteUint writes a pointer-sized unsigned integer at the 64-bit width.
func (e *Encoder) WriteUint(v uint) error { return e.WriteU64(uint64(v)) }

// WriteU128 writes an unsigned 128-bit integer.
func (e *Encoder) WriteU128(v Uint128) error {
	if e.cfg.IntEncoding == IntEncodingFixed {
		if e.cfg.ByteOrder == BigEndian {
			e.order().PutUint64(e.scratch[:8], v.Hi)
			e.order().PutUint64(e.scratch[8:16], v.Lo)
		} else {
			e.order().PutUint64(e.scratch[:8], v.Lo)
			e.order().PutUint64(e.scratch[8:16], v.Hi)
		}
		return e.w.Write(e.scratch[:16])
	}
	return e.w.Write(appendUleb128(e.scratch[:0], v))
}

// WriteI16 writes a signed 16-bit integer.
func (e *Encoder) WriteI16(v int16) error {
	if e.cfg.IntEncoding == IntEncodingFixed {
		e.order().PutUint16(e.scratch[:2], uint16(v))
		return e.w.Write(e.scratch[:2])
	}
	return e.w.Write(appendSleb128(e.scratch[:0], Int128From64(int64(v))))
}

// WriteI32 writes a signed 32-bit integer.
func (e *Encoder) WriteI32(v int32) error {
	if e.cfg.IntEncoding == IntEncodingFixed {
		e.order().PutUint32(e.scratch[:4], uint32(v))
		return e.w.Write(e.scratch[:4])
	}
	return e.w.Write(appendSleb128(e.scratch[:0], Int128From64(int64(v))))
}

// WriteI64 writes a signed 64-bit integer.
func (e *Encoder) WriteI64(v int64) error {
	if e.cfg.IntEncoding == IntEncodingFixed {
		e.order().PutUint64(e.scratch[:8], uint64(v))
		return e.w.Write(e.scratch[:8])
	}
	return e.w.Write(appendSleb128(e.scratch[:0], Int128From64(v)))
}

// WriteInt writes a pointer-sized signed integer at the 64-bit width.
func (e *Encoder) WriteInt(v int) error { return e.WriteI64(int64(v)) }

// WriteI128 writes a signed 128-bit integer.
func (e *Encoder) WriteI128(v Int128) error {
	if e.cfg.IntEncoding == IntEncodingFixed {
		return e.WriteU128(Uint128{Hi: v.Hi, Lo: v.Lo})
	}
	return e.w.Write(appendSleb128(e.scratch[:0], v))
}
