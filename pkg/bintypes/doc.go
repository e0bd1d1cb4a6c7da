// Package bintypes carries ready-made binpack adapters for common standard
// library values: network addresses, timestamps, durations, null-terminated
// strings, filesystem paths, lock-guarded values and UUIDs.
//
// Each adapter is a thin wrapper implementing the binpack capability
// interfaces, or a pair of Encode/Decode functions where the wrapped value is
// generic. The adapters are mechanical leaf mappings; all defensive decoding
// (budgets, overflow and discriminant checks) comes from the binpack session
// they run against.
package bintypes
