package binpack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint128(t *testing.T) {
	t.Run("narrowing reports fit", func(t *testing.T) {
		v, ok := Uint128From64(math.MaxUint64).Uint64()
		assert.True(t, ok)
		assert.Equal(t, uint64(math.MaxUint64), v)

		_, ok = Uint128{Hi: 1}.Uint64()
		assert.False(t, ok)
	})

	t.Run("decimal rendering", func(t *testing.T) {
		assert.Equal(t, "0", Uint128{}.String())
		assert.Equal(t, "18446744073709551616", Uint128{Hi: 1}.String())
		assert.Equal(t,
			"340282366920938463463374607431768211455",
			Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}.String())
	})

	t.Run("orShifted spans the word boundary", func(t *testing.T) {
		// Group at shift 63 straddles Lo and Hi.
		u := Uint128{}.orShifted(0x7F, 63)
		assert.Equal(t, uint64(1)<<63, u.Lo)
		assert.Equal(t, uint64(0x3F), u.Hi)

		u = Uint128{}.orShifted(0x7F, 126)
		assert.Equal(t, uint64(0), u.Lo)
		assert.Equal(t, uint64(0x3)<<62, u.Hi)
	})

	t.Run("shr7 carries across words", func(t *testing.T) {
		u := Uint128{Hi: 0x7F, Lo: 0}.shr7()
		assert.Equal(t, Uint128{Hi: 0, Lo: 0x7F << 57}, u)
	})
}

func TestInt128(t *testing.T) {
	t.Run("sign extension from 64 bits", func(t *testing.T) {
		i := Int128From64(-1)
		assert.True(t, i.isMinusOne())
		assert.Equal(t, -1, i.Sign())

		i = Int128From64(5)
		assert.Equal(t, Int128{Lo: 5}, i)
		assert.Equal(t, 1, i.Sign())
		assert.Equal(t, 0, Int128{}.Sign())
	})

	t.Run("narrowing reports fit", func(t *testing.T) {
		v, ok := Int128From64(math.MinInt64).Int64()
		require.True(t, ok)
		assert.Equal(t, int64(math.MinInt64), v)

		// Lo alone looks negative but the value is 2^63, which does not fit.
		_, ok = Int128{Hi: 0, Lo: 1 << 63}.Int64()
		assert.False(t, ok)
	})

	t.Run("decimal rendering at the extremes", func(t *testing.T) {
		assert.Equal(t, "-1", Int128From64(-1).String())
		assert.Equal(t,
			"-170141183460469231731687303715884105728",
			Int128{Hi: 1 << 63}.String())
		assert.Equal(t,
			"170141183460469231731687303715884105727",
			Int128{Hi: math.MaxInt64, Lo: math.MaxUint64}.String())
	})

	t.Run("sar7 preserves the sign", func(t *testing.T) {
		i := Int128From64(-1).sar7()
		assert.True(t, i.isMinusOne())

		i = Int128{Hi: 1 << 63}.sar7()
		assert.Equal(t, uint64(0xFF)<<56, i.Hi)
		assert.Equal(t, uint64(0), i.Lo)
	})

	t.Run("signExtend fills the top bits", func(t *testing.T) {
		i := Int128{Lo: 0x40}.signExtend(7)
		v, ok := i.Int64()
		require.True(t, ok)
		assert.Equal(t, int64(-64), v)

		i = Int128{Hi: 1, Lo: 42}.signExtend(65)
		assert.Equal(t, ^uint64(0), i.Hi)
		assert.Equal(t, uint64(42), i.Lo)
	})
}
