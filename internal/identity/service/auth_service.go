// Package service verifies submitted credentials against stored users.
package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"invoicing-dashboard/internal/security"
	userdomain "invoicing-dashboard/internal/user/domain"
)

// Sentinel errors for the credential verifier; the handler maps them to
// user-facing messages. Bad shape, unknown email, and wrong password all
// collapse into ErrInvalidCredentials so callers cannot tell which check
// failed. Everything else is ErrAuthUnavailable.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthUnavailable    = errors.New("authentication unavailable")
)

const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthResult holds the authenticated principal and its session token.
type AuthResult struct {
	User      *userdomain.User
	Token     string
	ExpiresAt time.Time
}

// UserRepo is the minimal user repository needed by the credential verifier.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (*userdomain.User, error)
}

// AuthService authenticates email/password credentials.
type AuthService struct {
	userRepo UserRepo
	hasher   *security.Hasher
	tokens   *security.TokenProvider
	zaplog   *zap.Logger
}

// NewAuthService returns an AuthService with the given dependencies.
func NewAuthService(userRepo UserRepo, hasher *security.Hasher, tokens *security.TokenProvider, zaplog *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		zaplog:   zaplog,
	}
}

// Authenticate verifies the credential pair and returns the stored user with a
// session token on success. Shape failures deny without a lookup; a lookup
// failure is reclassified here as ErrAuthUnavailable and never propagates raw.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailPattern.MatchString(email) || len(password) < minPasswordLen {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.zaplog.Error("user lookup failed", zap.Error(err))
		return nil, ErrAuthUnavailable
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.IssueSession(user.ID, user.Email)
	if err != nil {
		s.zaplog.Error("session token issue failed", zap.Error(err))
		return nil, ErrAuthUnavailable
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
