package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// MockGate implements auth.Gate for testing.
//
// Without Fn overrides it behaves like a single-slot session: Login stores
// LoginToken as the session token, Logout clears it, and Authenticate accepts
// only the stored token.
type MockGate struct {
	LoginFn           func(ctx context.Context, identifier, secret string) (string, error)
	LogoutFn          func(ctx context.Context) error
	TokenFn           func(ctx context.Context) (string, bool, error)
	AuthenticateFn    func(ctx context.Context, token string) error
	IsAuthenticatedFn func(ctx context.Context) bool

	// LoginToken is returned by the default Login.
	LoginToken string

	mu           sync.Mutex
	sessionToken string
}

// NewMockGateWithSession creates a MockGate whose session already holds token.
func NewMockGateWithSession(token string) *MockGate {
	return &MockGate{LoginToken: token, sessionToken: token}
}

// Login implements the Gate.Login method
func (m *MockGate) Login(ctx context.Context, identifier, secret string) (string, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, identifier, secret)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionToken = m.LoginToken
	return m.LoginToken, nil
}

// Logout implements the Gate.Logout method
func (m *MockGate) Logout(ctx context.Context) error {
	if m.LogoutFn != nil {
		return m.LogoutFn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionToken = ""
	return nil
}

// Token implements the Gate.Token method
func (m *MockGate) Token(ctx context.Context) (string, bool, error) {
	if m.TokenFn != nil {
		return m.TokenFn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionToken, m.sessionToken != "", nil
}

// IsAuthenticated implements the Gate.IsAuthenticated method
func (m *MockGate) IsAuthenticated(ctx context.Context) bool {
	if m.IsAuthenticatedFn != nil {
		return m.IsAuthenticatedFn(ctx)
	}
	_, ok, _ := m.Token(ctx)
	return ok
}

// Authenticate implements the Gate.Authenticate method
func (m *MockGate) Authenticate(ctx context.Context, token string) error {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, token)
	}
	if token == "" {
		return auth.ErrMissingToken
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessionToken == "" || token != m.sessionToken {
		return auth.ErrInvalidToken
	}
	return nil
}

var _ auth.Gate = (*MockGate)(nil)
