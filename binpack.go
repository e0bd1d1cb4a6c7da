package binpack

import (
	"bytes"
	"io"
)

// Marshal encodes v under DefaultConfig and returns the bytes.
func Marshal(v Encodable) ([]byte, error) {
	return MarshalWith(DefaultConfig(), v)
}

// MarshalWith encodes v under cfg and returns the bytes.
func MarshalWith(cfg Config, v Encodable) ([]byte, error) {
	return MarshalContext(cfg, nil, v)
}

// MarshalContext encodes v under cfg with a context value threaded through
// every nested EncodeBin call.
func MarshalContext(cfg Config, ctx any, v Encodable) ([]byte, error) {
	w := &SliceWriter{}
	if err := v.EncodeBin(NewEncoderContext(w, cfg, ctx)); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// EncodeTo encodes v into w and returns the number of bytes written.
func EncodeTo(w io.Writer, cfg Config, v Encodable) (int, error) {
	return EncodeToContext(w, cfg, nil, v)
}

// EncodeToContext is EncodeTo with a context value.
func EncodeToContext(w io.Writer, cfg Config, ctx any, v Encodable) (int, error) {
	iw := NewIOWriter(w)
	if err := v.EncodeBin(NewEncoderContext(iw, cfg, ctx)); err != nil {
		return iw.BytesWritten(), err
	}
	return iw.BytesWritten(), nil
}

// Unmarshal decodes data into v under DefaultConfig. Trailing bytes after the
// value are not an error.
func Unmarshal(data []byte, v Decodable) error {
	return UnmarshalWith(DefaultConfig(), data, v)
}

// UnmarshalWith decodes data into v under cfg.
func UnmarshalWith(cfg Config, data []byte, v Decodable) error {
	return UnmarshalContext(cfg, data, nil, v)
}

// UnmarshalContext decodes data into v under cfg with a context value
// threaded through every nested DecodeBin call.
func UnmarshalContext(cfg Config, data []byte, ctx any, v Decodable) error {
	return v.DecodeBin(NewDecoderContext(NewSliceReader(data), cfg, ctx))
}

// BorrowUnmarshal decodes data into v under DefaultConfig; the result may
// alias data, which must outlive it and must not be mutated while it is live.
func BorrowUnmarshal(data []byte, v BorrowDecodable) error {
	return BorrowUnmarshalWith(DefaultConfig(), data, v)
}

// BorrowUnmarshalWith is BorrowUnmarshal under cfg.
func BorrowUnmarshalWith(cfg Config, data []byte, v BorrowDecodable) error {
	return BorrowUnmarshalContext(cfg, data, nil, v)
}

// BorrowUnmarshalContext is BorrowUnmarshal under cfg with a context value.
func BorrowUnmarshalContext(cfg Config, data []byte, ctx any, v BorrowDecodable) error {
	return v.BorrowDecodeBin(NewDecoderContext(NewSliceReader(data), cfg, ctx))
}

// UnmarshalOwned adapts a borrowing decode into an owned one: the session
// clones data and borrows from the clone, so the result is independent of the
// caller's buffer. This is the default owned path for types that only
// implement BorrowDecodable.
func UnmarshalOwned(cfg Config, data []byte, v BorrowDecodable) error {
	return BorrowUnmarshalWith(cfg, bytes.Clone(data), v)
}

// DecodeFrom decodes one value from r. Borrowing is unavailable on a stream
// source; a Config.Limit should be set, since without one container claims
// cannot be checked against anything.
func DecodeFrom(r io.Reader, cfg Config, v Decodable) error {
	return DecodeFromContext(r, cfg, nil, v)
}

// DecodeFromContext is DecodeFrom with a context value.
func DecodeFromContext(r io.Reader, cfg Config, ctx any, v Decodable) error {
	return v.DecodeBin(NewDecoderContext(NewIOReader(r), cfg, ctx))
}
