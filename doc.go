// Package binpack implements a compact binary serialization format that is
// safe to feed hostile or truncated input.
//
// # Wire Format
//
// Values are written as follows under [DefaultConfig]:
//
//	| Value kind          | Encoding                                        |
//	|---------------------|-------------------------------------------------|
//	| bool, u8, i8        | one raw byte (bool must be 0 or 1)              |
//	| u16..u128, uint     | LEB128 varint                                   |
//	| i16..i128, int      | SLEB128 varint                                  |
//	| f32, f64            | fixed 4/8 byte IEEE-754 bits                    |
//	| string, []byte      | uint length prefix, then the raw bytes          |
//	| sequence, map, set  | uint element count, then the elements           |
//	| sum type            | fixed 4-byte discriminant, then the payload     |
//
// [Config.IntEncoding] switches every multi-byte integer (and length prefix)
// to fixed-width encoding in the configured byte order. The discriminant ahead
// of a sum type is always exactly four bytes so the framing of a tagged value
// never depends on its tag.
//
// # Capabilities
//
// A serializable type implements [Encodable] and one or both of [Decodable]
// and [BorrowDecodable]:
//
//	func (v *Point) EncodeBin(e *binpack.Encoder) error
//	func (v *Point) DecodeBin(d *binpack.Decoder) error
//
// [Decodable] produces a value that owns all of its memory. [BorrowDecodable]
// may alias the input buffer (zero copy) and is only usable when the input is
// a complete in-memory buffer that outlives the decoded value; [Unmarshal]
// adapts a borrow-only type by cloning the input first, so every
// [BorrowDecodable] is automatically usable as an owned decode.
//
// # Hostile Input
//
// Decoding never trusts an embedded length field. Before a length-prefixed
// container allocates, its declared element count times a conservative
// per-element size is claimed against a budget of bytes that could still
// possibly arrive; a claim that cannot be covered fails with [LimitError]
// before any allocation happens. Varints that run past the 128-bit maximum,
// integers that do not fit the requested width, and sum-type tags outside the
// declared set all fail with structured errors rather than being truncated or
// defaulted. [Config.MaxDepth] bounds recursion on nested input.
//
// # Entry Points
//
// [Marshal] and [Unmarshal] work on byte slices. [EncodeTo] and [DecodeFrom]
// drive a single top-level value over an [io.Writer] / [io.Reader]. The
// [github.com/binpack-go/binpack/pkg/bintypes] package carries ready-made
// adapters for common standard library values, and
// [github.com/binpack-go/binpack/pkg/frameconn] frames one value per
// websocket message.
package binpack
