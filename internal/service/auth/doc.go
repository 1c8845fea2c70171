// Package auth implements the login gate: a static allow-list of
// credentials whose secrets are kept as bcrypt hashes, backed by a
// single-slot session.AuthSession.
//
// Tokens are opaque strings taken from the credential records. A request is
// authenticated when it presents exactly the token of the current session.
package auth
