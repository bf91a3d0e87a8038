package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

// JWTManager issues and resolves signed access tokens. The token subject is
// the login identity (email) of the user.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// IssueToken creates a signed HS256 JWT with identity as subject.
func (m *JWTManager) IssueToken(identity string) (string, error) {
	if identity == "" {
		return "", fmt.Errorf("issue token: identity is empty")
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   identity,
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ResolveIdentity parses and validates a token and returns the identity it
// was issued for. Every failure wraps domain.ErrInvalidToken.
func (m *JWTManager) ResolveIdentity(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("token is empty: %w", domain.ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return "", fmt.Errorf("parse token: %v: %w", err, domain.ErrInvalidToken)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims: %w", domain.ErrInvalidToken)
	}

	if claims.Issuer != m.issuer {
		return "", fmt.Errorf("invalid issuer: expected %s, got %s: %w", m.issuer, claims.Issuer, domain.ErrInvalidToken)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("missing subject: %w", domain.ErrInvalidToken)
	}

	return claims.Subject, nil
}
