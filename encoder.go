package binpack

import (
	"encoding/binary"
	"math"
)

// Encoder is an encoding session: one sink, one config, one optional context
// value, owned by a single top-level encode call. Nested EncodeBin calls
// reuse the same Encoder; it is never shared across goroutines.
type Encoder struct {
	w       Writer
	cfg     Config
	ctx     any
	scratch [maxVarintLen + 1]byte
}

// NewEncoder returns an encoding session writing to w.
func NewEncoder(w Writer, cfg Config) *Encoder {
	return &Encoder{w: w, cfg: cfg}
}

// NewEncoderContext is NewEncoder with a caller-supplied context value,
// retrievable with Context from every nested call.
func NewEncoderContext(w Writer, cfg Config, ctx any) *Encoder {
	return &Encoder{w: w, cfg: cfg, ctx: ctx}
}

// Writer returns the session's sink.
func (e *Encoder) Writer() Writer { return e.w }

// Config returns the session's configuration.
func (e *Encoder) Config() Config { return e.cfg }

// Context returns the value passed at session construction, or nil.
func (e *Encoder) Context() any { return e.ctx }

func (e *Encoder) order() binary.ByteOrder {
	if e.cfg.ByteOrder == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Write commits raw bytes to the sink. Capability implementations use it for
// fixed-size payloads that need no integer encoding.
func (e *Encoder) Write(p []byte) error { return e.w.Write(p) }

func (e *Encoder) writeByte(b byte) error {
	e.scratch[0] = b
	return e.w.Write(e.scratch[:1])
}

// WriteBool writes a single 0 or 1 byte.
func (e *Encoder) WriteBool(v bool) error {
	if v {
		return e.writeByte(1)
	}
	return e.writeByte(0)
}

// WriteU8 writes a single raw byte; u8 is never varint encoded.
func (e *Encoder) WriteU8(v uint8) error { return e.writeByte(v) }

// WriteI8 writes a single raw two's-complement byte.
func (e *Encoder) WriteI8(v int8) error { return e.writeByte(byte(v)) }

// WriteF32 writes the IEEE-754 bits of v at fixed width.
func (e *Encoder) WriteF32(v float32) error {
	e.order().PutUint32(e.scratch[:4], math.Float32bits(v))
	return e.w.Write(e.scratch[:4])
}

// WriteF64 writes the IEEE-754 bits of v at fixed width.
func (e *Encoder) WriteF64(v float64) error {
	e.order().PutUint64(e.scratch[:8], math.Float64bits(v))
	return e.w.Write(e.scratch[:8])
}

// WriteLen writes a container element count.
func (e *Encoder) WriteLen(n int) error { return e.WriteU64(uint64(n)) }

// WriteBytes writes a length-prefixed byte string.
func (e *Encoder) WriteBytes(p []byte) error {
	if err := e.WriteLen(len(p)); err != nil {
		return err
	}
	return e.w.Write(p)
}

// WriteString writes a length-prefixed UTF-8 string.
func (e *Encoder) WriteString(s string) error {
	if err := e.WriteLen(len(s)); err != nil {
		return err
	}
	return e.w.Write([]byte(s))
}

// WriteDiscriminant writes a sum-type tag at a fixed four bytes, independent
// of the integer encoding, so the framing of a tagged value never varies.
func (e *Encoder) WriteDiscriminant(tag uint32) error {
	e.order().PutUint32(e.scratch[:4], tag)
	return e.w.Write(e.scratch[:4])
}
