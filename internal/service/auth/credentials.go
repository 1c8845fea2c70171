package auth

import (
	"fmt"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// credentialRecord is a seeded credential with its secret hashed.
type credentialRecord struct {
	identifier string
	secretHash string
	token      string
}

// CredentialStore is the static login allow-list. It is built once and
// never changes, so it needs no locking.
type CredentialStore struct {
	records map[string]credentialRecord
	// decoyHash is compared against when the identifier is unknown, so a miss
	// costs about as much as a wrong secret.
	decoyHash string
}

// NewCredentialStore hashes every seeded secret with the given bcrypt cost.
// Identifiers must be unique and non-empty; tokens must be non-empty.
func NewCredentialStore(creds []domain.Credential, cost int) (*CredentialStore, error) {
	records := make(map[string]credentialRecord, len(creds))
	for i, c := range creds {
		if c.Identifier == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("credentials[%d].identifier", i), "cannot be empty", domain.ErrValidation)
		}
		if c.Token == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("credentials[%d].token", i), "cannot be empty", domain.ErrValidation)
		}
		if _, dup := records[c.Identifier]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateIdentifier, c.Identifier)
		}

		hash, err := HashSecret(c.Secret, cost)
		if err != nil {
			return nil, fmt.Errorf("credential %s: %w", c.Identifier, err)
		}
		records[c.Identifier] = credentialRecord{
			identifier: c.Identifier,
			secretHash: hash,
			token:      c.Token,
		}
	}

	decoy, err := HashSecret("decoy-secret", cost)
	if err != nil {
		return nil, err
	}

	return &CredentialStore{records: records, decoyHash: decoy}, nil
}

// Len returns the number of credential records.
func (s *CredentialStore) Len() int {
	return len(s.records)
}

// lookup returns the record for identifier. Identifiers match exactly.
func (s *CredentialStore) lookup(identifier string) (credentialRecord, bool) {
	r, ok := s.records[identifier]
	return r, ok
}
