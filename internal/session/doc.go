// Package session persists the single-slot auth session.
//
// Storage is a small key/value contract with two implementations:
// FileStorage keeps every key in one JSON document on disk, and
// MemoryStorage keeps them in a map. AuthSession stores the current token
// under the "auth-storage" key; an absent key means nobody is logged in.
package session
