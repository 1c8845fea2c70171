package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxSecretLength is the longest secret bcrypt can compare exactly, in bytes.
const MaxSecretLength = 72

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext equivalent.
	// Returns nil on success, or an error on failure (e.g., mismatch).
	Compare(hashedPassword, password string) error
}

// BcryptVerifier implements PasswordVerifier using bcrypt.
type BcryptVerifier struct{}

// NewBcryptVerifier creates a new BcryptVerifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// HashSecret hashes a plaintext secret with the given bcrypt cost.
// A cost outside bcrypt's range uses bcrypt.DefaultCost.
func HashSecret(secret string, cost int) (string, error) {
	if len(secret) > MaxSecretLength {
		return "", fmt.Errorf("secret exceeds %d bytes", MaxSecretLength)
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}
