package services

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier authenticates a bearer token and yields the subject user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthService verifies HS256 access tokens issued by the identity provider
// against the shared signing secret.
type AuthService struct {
	Secret []byte
}

// NewAuthService builds a verifier for the given shared secret.
func NewAuthService(secret string) *AuthService {
	return &AuthService{Secret: []byte(secret)}
}

// Verify parses and validates the token and returns its subject.
func (s *AuthService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: token verification failed", ErrUnauthorized)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}
	return subject, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("%w: missing authorization header", ErrUnauthorized)
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", fmt.Errorf("%w: malformed authorization header", ErrUnauthorized)
	}
	return token, nil
}
