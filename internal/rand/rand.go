// Package rand generates random test values for round-trip tests. It is not
// for security-sensitive use; the generator is seeded once from crypto/rand
// so runs differ, and every helper is safe for concurrent use.
package rand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

var defaultSource = newSource()

func newSource() *source {
	seed := make([]byte, 8)
	if _, err := cryptorand.Read(seed); err != nil {
		panic("unreachable")
	}
	return &source{
		//nolint:gosec // test data only
		rng: rand.New(rand.NewSource(
			int64(binary.LittleEndian.Uint64(seed)),
		)),
	}
}

type source struct {
	mut sync.Mutex
	rng *rand.Rand
}

// Bytes returns n random bytes.
func Bytes(n int) []byte {
	buf := make([]byte, n)
	defaultSource.mut.Lock()
	defer defaultSource.mut.Unlock()
	for i := 0; i+8 <= n; i += 8 {
		binary.LittleEndian.PutUint64(buf[i:], defaultSource.rng.Uint64())
	}
	if rem := n % 8; rem > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], defaultSource.rng.Uint64())
		copy(buf[n-rem:], tail[:rem])
	}
	return buf
}

// Uint64 returns a random uint64 over the full range.
func Uint64() uint64 {
	defaultSource.mut.Lock()
	defer defaultSource.mut.Unlock()
	return defaultSource.rng.Uint64()
}

// Int64 returns a random int64 over the full range.
func Int64() int64 {
	return int64(Uint64())
}

// IntN returns a random int in [0, n).
func IntN(n int) int {
	defaultSource.mut.Lock()
	defer defaultSource.mut.Unlock()
	return defaultSource.rng.Intn(n)
}

// ASCII returns a random printable ASCII string of length n.
func ASCII(n int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 _-"
	buf := make([]byte, n)
	defaultSource.mut.Lock()
	defer defaultSource.mut.Unlock()
	for i := range buf {
		buf[i] = charset[defaultSource.rng.Intn(len(charset))]
	}
	return string(buf)
}
