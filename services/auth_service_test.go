package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, secret, subject string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestVerifyToken(t *testing.T) {
	svc := NewAuthService("secret")

	userID, err := svc.Verify(signTestToken(t, "secret", "alice", time.Hour))
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if userID != "alice" {
		t.Errorf("subject = %s, want alice", userID)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	svc := NewAuthService("secret")

	cases := []struct {
		name  string
		token string
	}{
		{"wrong secret", signTestToken(t, "other", "alice", time.Hour)},
		{"expired", signTestToken(t, "secret", "alice", -time.Hour)},
		{"garbage", "not-a-token"},
	}
	for _, tc := range cases {
		if _, err := svc.Verify(tc.token); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("%s: got %v, want ErrUnauthorized", tc.name, err)
		}
	}
}

func TestBearerToken(t *testing.T) {
	if _, err := BearerToken(""); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("empty header: got %v, want ErrUnauthorized", err)
	}
	if _, err := BearerToken("Basic abc"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("non-bearer header: got %v, want ErrUnauthorized", err)
	}
	token, err := BearerToken("Bearer abc")
	if err != nil || token != "abc" {
		t.Errorf("got (%q, %v), want (abc, nil)", token, err)
	}
}
