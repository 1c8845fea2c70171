package session

import "errors"

// ErrInvalidKey is returned for an empty storage key.
var ErrInvalidKey = errors.New("storage key cannot be empty")

// Storage is durable key/value storage for small JSON documents.
type Storage interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
