package binpack

import "reflect"

// Encodable writes a value's bytes to the session's sink.
type Encodable interface {
	EncodeBin(e *Encoder) error
}

// Decodable fills the receiver with a fully independent value read from the
// session's source.
type Decodable interface {
	DecodeBin(d *Decoder) error
}

// BorrowDecodable fills the receiver with a value that may alias the input
// buffer. It is only invoked when the source is a complete in-memory buffer;
// the caller guarantees that buffer outlives the decoded value. Every
// BorrowDecodable is usable as an owned decode via UnmarshalOwned, which has
// the session clone the buffer first; the reverse adaptation does not exist.
type BorrowDecodable interface {
	BorrowDecodeBin(d *Decoder) error
}

// elemSize is the conservative per-element byte cost claimed against the
// length budget before a container of T allocates: the fewest wire bytes any
// value of T can occupy under cfg. A lower bound keeps the claim from ever
// rejecting input that is merely well compressed, while still scaling with
// the declared element count.
func elemSize[T any](cfg Config) int {
	return minWireSize(reflect.TypeOf((*T)(nil)).Elem(), cfg)
}

func minWireSize(t reflect.Type, cfg Config) int {
	varint := cfg.IntEncoding == IntEncodingVarint
	switch t.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		if varint {
			return 1
		}
		return 2
	case reflect.Int32, reflect.Uint32:
		if varint {
			return 1
		}
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Int, reflect.Uint:
		if varint {
			return 1
		}
		return 8
	case reflect.Float32:
		return 4
	case reflect.Float64:
		return 8
	case reflect.String, reflect.Slice, reflect.Map:
		// Empty ones still carry a length prefix.
		if varint {
			return 1
		}
		return 8
	case reflect.Array:
		return t.Len() * minWireSize(t.Elem(), cfg)
	case reflect.Struct:
		n := 0
		for i := 0; i < t.NumField(); i++ {
			n += minWireSize(t.Field(i).Type, cfg)
		}
		return n
	case reflect.Pointer:
		// Optional values carry at least a presence byte.
		return 1
	default:
		return 1
	}
}

// EncodeSlice writes the element count followed by each element.
func EncodeSlice[T any](e *Encoder, s []T, enc func(*Encoder, T) error) error {
	if err := e.WriteLen(len(s)); err != nil {
		return err
	}
	for i := range s {
		if err := enc(e, s[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSlice reads an element count, claims the implied byte cost before
// allocating, and decodes the elements. Each element's share of the claim is
// released just before that element is decoded, since its real bytes are
// debited by the reads themselves from then on.
func DecodeSlice[T any](d *Decoder, dec func(*Decoder) (T, error)) ([]T, error) {
	n, err := d.ReadLen()
	if err != nil {
		return nil, err
	}
	per := elemSize[T](d.Config())
	if err := d.ClaimContainer(n, per); err != nil {
		return nil, err
	}
	if err := d.Descend(); err != nil {
		return nil, err
	}
	defer d.Ascend()
	s := make([]T, 0, n)
	for i := 0; i < n; i++ {
		d.Unclaim(per)
		v, err := dec(d)
		if err != nil {
			return nil, err
		}
		s = append(s, v)
	}
	return s, nil
}

// EncodeMap writes the entry count followed by interleaved key/value
// encodings. Iteration order is whatever the map yields; decoding is
// insensitive to it.
func EncodeMap[K comparable, V any](e *Encoder, m map[K]V, encK func(*Encoder, K) error, encV func(*Encoder, V) error) error {
	if err := e.WriteLen(len(m)); err != nil {
		return err
	}
	for k, v := range m {
		if err := encK(e, k); err != nil {
			return err
		}
		if err := encV(e, v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMap is DecodeSlice for maps; the claim covers one key plus one value
// per declared entry.
func DecodeMap[K comparable, V any](d *Decoder, decK func(*Decoder) (K, error), decV func(*Decoder) (V, error)) (map[K]V, error) {
	n, err := d.ReadLen()
	if err != nil {
		return nil, err
	}
	per := elemSize[K](d.Config()) + elemSize[V](d.Config())
	if err := d.ClaimContainer(n, per); err != nil {
		return nil, err
	}
	if err := d.Descend(); err != nil {
		return nil, err
	}
	defer d.Ascend()
	m := make(map[K]V, n)
	for i := 0; i < n; i++ {
		d.Unclaim(per)
		k, err := decK(d)
		if err != nil {
			return nil, err
		}
		v, err := decV(d)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

// EncodeSet writes a set, represented as map[T]struct{}, as a count followed
// by its members.
func EncodeSet[T comparable](e *Encoder, s map[T]struct{}, enc func(*Encoder, T) error) error {
	if err := e.WriteLen(len(s)); err != nil {
		return err
	}
	for v := range s {
		if err := enc(e, v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSet is DecodeSlice for sets.
func DecodeSet[T comparable](d *Decoder, dec func(*Decoder) (T, error)) (map[T]struct{}, error) {
	n, err := d.ReadLen()
	if err != nil {
		return nil, err
	}
	per := elemSize[T](d.Config())
	if err := d.ClaimContainer(n, per); err != nil {
		return nil, err
	}
	if err := d.Descend(); err != nil {
		return nil, err
	}
	defer d.Ascend()
	s := make(map[T]struct{}, n)
	for i := 0; i < n; i++ {
		d.Unclaim(per)
		v, err := dec(d)
		if err != nil {
			return nil, err
		}
		s[v] = struct{}{}
	}
	return s, nil
}

// EncodeOption writes a presence byte, then the value when present.
func EncodeOption[T any](e *Encoder, v *T, enc func(*Encoder, T) error) error {
	if v == nil {
		return e.WriteBool(false)
	}
	if err := e.WriteBool(true); err != nil {
		return err
	}
	return enc(e, *v)
}

// DecodeOption reads a presence byte, then the value when present.
func DecodeOption[T any](d *Decoder, dec func(*Decoder) (T, error)) (*T, error) {
	ok, err := d.ReadBool()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	v, err := dec(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// EncodeValue encodes any Encodable; useful as the element function of the
// container helpers.
func EncodeValue[T Encodable](e *Encoder, v T) error { return v.EncodeBin(e) }

// DecodeValue decodes into a fresh *T; useful as the element function of the
// container helpers.
func DecodeValue[T any, PT interface {
	*T
	Decodable
}](d *Decoder) (T, error) {
	var v T
	err := PT(&v).DecodeBin(d)
	return v, err
}
