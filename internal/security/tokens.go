package security

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is malformed or invalid.
var ErrInvalidToken = errors.New("invalid token")

// SessionClaims holds JWT claims for the dashboard session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenProvider issues and validates HS256 session tokens for authenticated users.
type TokenProvider struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewTokenProvider returns a TokenProvider that signs with the given shared secret.
// issuer and audience are set on claims and validated on parse.
func NewTokenProvider(secret []byte, issuer, audience string, ttl time.Duration) *TokenProvider {
	return &TokenProvider{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// IssueSession issues a session JWT for the given user.
// Returns the token string and its expiration time.
func (p *TokenProvider) IssueSession(userID, email string) (token string, expiresAt time.Time, err error) {
	jti, err := generateJTI()
	if err != nil {
		return "", time.Time{}, err
	}
	now := time.Now().UTC()
	expiresAt = now.Add(p.ttl)
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID,
			Issuer:    p.issuer,
			Audience:  jwt.ClaimStrings{p.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString(p.secret)
	return token, expiresAt, err
}

// ValidateSession parses and validates a session token (signature, exp, iss, aud).
// Returns userID and email, or ErrInvalidToken.
func (p *TokenProvider) ValidateSession(tokenString string) (userID, email string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	})
	if err != nil {
		return "", "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", "", ErrInvalidToken
	}
	if claims.Issuer != p.issuer {
		return "", "", ErrInvalidToken
	}
	audOk := false
	for _, a := range claims.Audience {
		if a == p.audience {
			audOk = true
			break
		}
	}
	if !audOk {
		return "", "", ErrInvalidToken
	}
	return claims.Subject, claims.Email, nil
}

func generateJTI() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
