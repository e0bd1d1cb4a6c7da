package binpack

// IntEncoding selects how multi-byte integers and length prefixes are written.
type IntEncoding int

const (
	// IntEncodingVarint encodes integers as LEB128/SLEB128 varints.
	IntEncodingVarint IntEncoding = iota
	// IntEncodingFixed encodes integers at their full width in the
	// configured byte order.
	IntEncodingFixed
)

// ByteOrder selects the byte order for fixed-width values (fixed integers,
// floats and discriminants).
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// DefaultMaxDepth is the nesting depth enforced when Config.MaxDepth is zero.
const DefaultMaxDepth = 128

// Config defines the wire format and the decode-time resource limits of a
// session. The zero value is not a valid config; start from DefaultConfig.
type Config struct {
	// IntEncoding is the integer encoding scheme. Both sides of a stream
	// must agree on it.
	IntEncoding IntEncoding

	// ByteOrder applies to every fixed-width value.
	ByteOrder ByteOrder

	// Limit caps the number of bytes a single decode may consume. Zero
	// means no explicit limit: slice sources are still bounded by their
	// length, stream sources decode unchecked.
	Limit int

	// MaxDepth bounds container/sum-type nesting during decode. Zero means
	// DefaultMaxDepth; negative disables the guard.
	MaxDepth int
}

// DefaultConfig returns the standard format: varint integers, little-endian
// fixed-width values, no byte limit, and the default depth guard.
func DefaultConfig() Config {
	return Config{
		IntEncoding: IntEncodingVarint,
		ByteOrder:   LittleEndian,
		MaxDepth:    DefaultMaxDepth,
	}
}

// WithLimit returns a copy of c that refuses to decode more than n bytes.
func (c Config) WithLimit(n int) Config {
	c.Limit = n
	return c
}

// WithMaxDepth returns a copy of c with the nesting bound set to n.
func (c Config) WithMaxDepth(n int) Config {
	c.MaxDepth = n
	return c
}

func (c Config) maxDepth() int {
	switch {
	case c.MaxDepth == 0:
		return DefaultMaxDepth
	case c.MaxDepth < 0:
		return int(^uint(0) >> 1)
	default:
		return c.MaxDepth
	}
}
