package binpack

import "math/big"

// Uint128 is an unsigned 128-bit integer as a Hi/Lo pair of 64-bit words. It
// exists so the full range of the wire format's widest integer round-trips
// without loss.
type Uint128 struct {
	Hi, Lo uint64
}

// Uint128From64 widens v.
func Uint128From64(v uint64) Uint128 { return Uint128{Lo: v} }

func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// Uint64 narrows u, reporting whether it fits.
func (u Uint128) Uint64() (uint64, bool) { return u.Lo, u.Hi == 0 }

// Equal reports u == v.
func (u Uint128) Equal(v Uint128) bool { return u == v }

func (u Uint128) String() string {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo)).String()
}

// orShifted sets u |= g << shift, discarding bits shifted past bit 127.
func (u Uint128) orShifted(g byte, shift uint) Uint128 {
	switch {
	case shift < 64:
		u.Lo |= uint64(g) << shift
		if shift > 57 {
			u.Hi |= uint64(g) >> (64 - shift)
		}
	case shift < 128:
		u.Hi |= uint64(g) << (shift - 64)
	}
	return u
}

// shr7 logically shifts u right by seven bits.
func (u Uint128) shr7() Uint128 {
	u.Lo = u.Lo>>7 | u.Hi<<57
	u.Hi >>= 7
	return u
}

// Int128 is a signed 128-bit integer in two's complement, as a Hi/Lo pair of
// 64-bit words.
type Int128 struct {
	Hi, Lo uint64
}

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 {
	return Int128{Hi: uint64(v >> 63), Lo: uint64(v)}
}

func (i Int128) IsZero() bool { return i.Hi == 0 && i.Lo == 0 }

func (i Int128) isMinusOne() bool { return i.Hi == ^uint64(0) && i.Lo == ^uint64(0) }

// Sign reports -1, 0 or 1.
func (i Int128) Sign() int {
	if int64(i.Hi) < 0 {
		return -1
	}
	if i.IsZero() {
		return 0
	}
	return 1
}

// Int64 narrows i, reporting whether it fits.
func (i Int128) Int64() (int64, bool) {
	return int64(i.Lo), i.Hi == uint64(int64(i.Lo)>>63)
}

// Equal reports i == v.
func (i Int128) Equal(v Int128) bool { return i == v }

func (i Int128) String() string {
	if int64(i.Hi) >= 0 {
		return Uint128{Hi: i.Hi, Lo: i.Lo}.String()
	}
	// Negate the two's complement pair and render with a sign.
	lo := ^i.Lo + 1
	hi := ^i.Hi
	if lo == 0 {
		hi++
	}
	return "-" + Uint128{Hi: hi, Lo: lo}.String()
}

// orShifted sets i |= g << shift, discarding bits shifted past bit 127.
func (i Int128) orShifted(g byte, shift uint) Int128 {
	u := Uint128{Hi: i.Hi, Lo: i.Lo}.orShifted(g, shift)
	return Int128{Hi: u.Hi, Lo: u.Lo}
}

// sar7 arithmetically shifts i right by seven bits.
func (i Int128) sar7() Int128 {
	i.Lo = i.Lo>>7 | i.Hi<<57
	i.Hi = uint64(int64(i.Hi) >> 7)
	return i
}

// signExtend fills every bit at or above position shift with ones.
func (i Int128) signExtend(shift uint) Int128 {
	switch {
	case shift < 64:
		i.Lo |= ^uint64(0) << shift
		i.Hi = ^uint64(0)
	case shift < 128:
		i.Hi |= ^uint64(0) << (shift - 64)
	}
	return i
}
