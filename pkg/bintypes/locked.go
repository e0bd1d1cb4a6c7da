package bintypes

import (
	"fmt"
	"sync"

	"github.com/binpack-go/binpack"
)

// Lock-guarded adapters acquire the guard for exactly the duration of their
// own call and release it on every path. Acquisition is non-blocking: a
// serialization call never parks behind a lock holder, it fails with a
// binpack.LockError instead and the caller decides whether to retry.

// Mutex guards a value with a sync.Mutex.
type Mutex[T any] struct {
	mu sync.Mutex
	v  T
}

// NewMutex returns a Mutex holding v.
func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{v: v}
}

// Do runs f with the lock held, giving it exclusive access to the value.
func (m *Mutex[T]) Do(f func(v *T)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f(&m.v)
}

// EncodeMutex encodes the guarded value using enc.
func EncodeMutex[T any](e *binpack.Encoder, m *Mutex[T], enc func(*binpack.Encoder, T) error) error {
	if !m.mu.TryLock() {
		return &binpack.LockError{TypeName: fmt.Sprintf("%T", m)}
	}
	defer m.mu.Unlock()
	return enc(e, m.v)
}

// DecodeMutex decodes a fresh guarded value using dec. The new value is
// private to the decode call, so no lock is involved.
func DecodeMutex[T any](d *binpack.Decoder, dec func(*binpack.Decoder) (T, error)) (*Mutex[T], error) {
	v, err := dec(d)
	if err != nil {
		return nil, err
	}
	return NewMutex(v), nil
}

// RWMutex guards a value with a sync.RWMutex; encoding takes the read side.
type RWMutex[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewRWMutex returns an RWMutex holding v.
func NewRWMutex[T any](v T) *RWMutex[T] {
	return &RWMutex[T]{v: v}
}

// Do runs f with the write lock held.
func (m *RWMutex[T]) Do(f func(v *T)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f(&m.v)
}

// View runs f with the read lock held.
func (m *RWMutex[T]) View(f func(v T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f(m.v)
}

// EncodeRWMutex encodes the guarded value using enc under the read lock.
func EncodeRWMutex[T any](e *binpack.Encoder, m *RWMutex[T], enc func(*binpack.Encoder, T) error) error {
	if !m.mu.TryRLock() {
		return &binpack.LockError{TypeName: fmt.Sprintf("%T", m)}
	}
	defer m.mu.RUnlock()
	return enc(e, m.v)
}

// DecodeRWMutex decodes a fresh guarded value using dec.
func DecodeRWMutex[T any](d *binpack.Decoder, dec func(*binpack.Decoder) (T, error)) (*RWMutex[T], error) {
	v, err := dec(d)
	if err != nil {
		return nil, err
	}
	return NewRWMutex(v), nil
}
