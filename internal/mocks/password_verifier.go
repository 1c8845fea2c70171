package mocks

import (
	"errors"
	"sync"
)

// ErrSecretMismatch is what MockPasswordVerifier returns when it rejects a secret.
var ErrSecretMismatch = errors.New("secret mismatch")

// CompareCall records the arguments of a Compare call.
type CompareCall struct {
	Hash   string
	Secret string
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
// By default it rejects everything.
type MockPasswordVerifier struct {
	// Accept makes Compare succeed when CompareFn is nil
	Accept bool

	// CompareFn allows for custom comparison logic in tests
	CompareFn func(hash, secret string) error

	mu    sync.Mutex
	Calls []CompareCall
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hash, secret string) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, CompareCall{Hash: hash, Secret: secret})
	m.mu.Unlock()

	if m.CompareFn != nil {
		return m.CompareFn(hash, secret)
	}
	if m.Accept {
		return nil
	}
	return ErrSecretMismatch
}

// CallCount returns how many times Compare was called.
func (m *MockPasswordVerifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
