package auth

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/session"
)

// Gate decides who may use the application.
//
// Login checks an identifier/secret pair against the static credential list
// and, on success, writes the matching token into the auth session. There is
// one session slot: a later login replaces the earlier token.
type Gate interface {
	// Login returns the token for a matching credential record and stores it
	// as the current session. On a mismatch it returns ErrInvalidCredentials
	// and leaves the session untouched.
	Login(ctx context.Context, identifier, secret string) (string, error)

	// Logout clears the session. It succeeds even if nobody is logged in.
	Logout(ctx context.Context) error

	// Token returns the current session token, if any.
	Token(ctx context.Context) (string, bool, error)

	// IsAuthenticated reports whether a session token is present.
	IsAuthenticated(ctx context.Context) bool

	// Authenticate checks a presented bearer token against the current session.
	// Returns ErrMissingToken for an empty token and ErrInvalidToken otherwise.
	Authenticate(ctx context.Context, token string) error
}

// gateImpl implements the Gate interface
type gateImpl struct {
	credentials *CredentialStore
	verifier    PasswordVerifier
	session     *session.AuthSession
	logger      *slog.Logger
}

// NewGate creates a Gate. It returns an error if any of the required
// dependencies are nil.
func NewGate(
	credentials *CredentialStore,
	verifier PasswordVerifier,
	authSession *session.AuthSession,
	log *slog.Logger,
) (Gate, error) {
	if credentials == nil {
		return nil, domain.NewValidationError("credentials", "cannot be nil", domain.ErrValidation)
	}
	if verifier == nil {
		return nil, domain.NewValidationError("verifier", "cannot be nil", domain.ErrValidation)
	}
	if authSession == nil {
		return nil, domain.NewValidationError("session", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &gateImpl{
		credentials: credentials,
		verifier:    verifier,
		session:     authSession,
		logger:      log.With(slog.String("component", "auth_gate")),
	}, nil
}

// Login implements Gate.Login
func (g *gateImpl) Login(ctx context.Context, identifier, secret string) (string, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	record, found := g.credentials.lookup(identifier)
	if !found || len(secret) > MaxSecretLength {
		_ = g.verifier.Compare(g.credentials.decoyHash, secret)
		log.Debug("login rejected", slog.String("reason", "unknown identifier or oversized secret"))
		return "", ErrInvalidCredentials
	}

	if err := g.verifier.Compare(record.secretHash, secret); err != nil {
		log.Debug("login rejected", slog.String("reason", "secret mismatch"))
		return "", ErrInvalidCredentials
	}

	if err := g.session.SetToken(record.token); err != nil {
		log.Error("failed to persist session", slog.String("error", err.Error()))
		return "", err
	}

	log.Info("login succeeded", slog.String("identifier", record.identifier))
	return record.token, nil
}

// Logout implements Gate.Logout
func (g *gateImpl) Logout(ctx context.Context) error {
	if err := g.session.Clear(); err != nil {
		logger.FromContextOrDefault(ctx, g.logger).Error("failed to clear session", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Token implements Gate.Token
func (g *gateImpl) Token(_ context.Context) (string, bool, error) {
	return g.session.Token()
}

// IsAuthenticated implements Gate.IsAuthenticated
func (g *gateImpl) IsAuthenticated(ctx context.Context) bool {
	_, ok, err := g.session.Token()
	if err != nil {
		logger.FromContextOrDefault(ctx, g.logger).Warn("failed to read session", slog.String("error", err.Error()))
		return false
	}
	return ok
}

// Authenticate implements Gate.Authenticate
func (g *gateImpl) Authenticate(ctx context.Context, token string) error {
	if token == "" {
		return ErrMissingToken
	}
	current, ok, err := g.session.Token()
	if err != nil {
		logger.FromContextOrDefault(ctx, g.logger).Warn("failed to read session", slog.String("error", err.Error()))
		return ErrInvalidToken
	}
	if !ok || subtle.ConstantTimeCompare([]byte(current), []byte(token)) != 1 {
		return ErrInvalidToken
	}
	return nil
}
