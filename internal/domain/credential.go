package domain

// Credential is a static login record seeded at process start.
// Secret is the plaintext secret as configured; stores that keep credentials
// around are expected to hash it.
type Credential struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"-"`
	Token      string `json:"-"`
}

// DefaultCredentials returns the built-in login allow-list.
func DefaultCredentials() []Credential {
	return []Credential{
		{Identifier: "admin@example.com", Secret: "admin123", Token: "jwt-admin-token"},
		{Identifier: "user@example.com", Secret: "user123", Token: "jwt-user-token"},
	}
}
