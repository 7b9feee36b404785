// Package store provides the size-constrained key-value store backing
// all persisted collections, plus a generic expiring record store
// layered on top of it.
package store

import "errors"

var (
	// ErrNotFound is returned by Get for an absent key.
	ErrNotFound = errors.New("store: key not found")

	// ErrQuotaExceeded is returned by Put when writing the value would
	// push the store past its byte budget. The prior value of the key
	// is left untouched.
	ErrQuotaExceeded = errors.New("store: quota exceeded")
)

// KV is the backing key-value store. Each logical collection owns
// exactly one key; there are no cross-key transactions, so a failed
// write to one key never affects the others.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}
