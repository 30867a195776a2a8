// Package kv defines the key-value persistence surface that progress
// trackers write through, along with the available backends.
//
// The interface is deliberately small: opaque string keys, opaque byte
// values. Backends:
//   - MemoryStore: map-backed, for tests and throwaway sessions
//   - FileStore:   one file per key under a data directory
//   - RedisStore:  shared progress via a Redis server
package kv

import "errors"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("kv: key not found")

// Store is the persistence surface injected into a progress tracker.
// Implementations must be safe for use by a single goroutine at a time;
// MemoryStore and RedisStore additionally tolerate concurrent callers.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes the value stored under key. Deleting a key that
	// does not exist is not an error.
	Delete(key string) error
}
