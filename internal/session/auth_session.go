package session

import (
	"encoding/json"
	"fmt"
	"sync"
)

// StorageKey is the key the auth session is persisted under.
const StorageKey = "auth-storage"

type persistedSession struct {
	Token string `json:"token"`
}

// AuthSession is the single-slot holder of the current login token.
// State round-trips through Storage, so a FileStorage-backed session
// survives restarts.
type AuthSession struct {
	storage Storage
	mu      sync.Mutex
}

// NewAuthSession creates an AuthSession over storage.
func NewAuthSession(storage Storage) *AuthSession {
	return &AuthSession{storage: storage}
}

// Token returns the current token. ok is false when unauthenticated.
func (s *AuthSession) Token() (token string, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, found, err := s.storage.Get(StorageKey)
	if err != nil {
		return "", false, fmt.Errorf("failed to load auth session: %w", err)
	}
	if !found {
		return "", false, nil
	}

	var p persistedSession
	if err := json.Unmarshal(raw, &p); err != nil {
		return "", false, fmt.Errorf("failed to decode auth session: %w", err)
	}
	if p.Token == "" {
		return "", false, nil
	}
	return p.Token, true, nil
}

// SetToken overwrites the slot with token.
func (s *AuthSession) SetToken(token string) error {
	raw, err := json.Marshal(persistedSession{Token: token})
	if err != nil {
		return fmt.Errorf("failed to encode auth session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Set(StorageKey, raw); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// Clear empties the slot. Clearing an empty slot is not an error.
func (s *AuthSession) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Remove(StorageKey); err != nil {
		return fmt.Errorf("failed to clear auth session: %w", err)
	}
	return nil
}
