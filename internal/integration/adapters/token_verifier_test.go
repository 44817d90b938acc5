package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims accessTokenClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestVerifyAccessToken(t *testing.T) {
	ctx := context.Background()
	verifier := NewTokenVerifier(testSecret)
	userID := uuid.New()

	validClaims := func() accessTokenClaims {
		return accessTokenClaims{
			UserID:    userID.String(),
			TokenType: tokenTypeAccess,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		}
	}

	t.Run("accepts a valid access token", func(t *testing.T) {
		token := signToken(t, testSecret, validClaims())

		got, err := verifier.VerifyAccessToken(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != userID {
			t.Errorf("expected user %s, got %s", userID, got)
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		token := signToken(t, testSecret, claims)

		if _, err := verifier.VerifyAccessToken(ctx, token); err == nil {
			t.Error("expected an error for an expired token")
		}
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		token := signToken(t, "other-secret", validClaims())

		if _, err := verifier.VerifyAccessToken(ctx, token); err == nil {
			t.Error("expected an error for a wrong signature")
		}
	})

	t.Run("rejects a refresh token", func(t *testing.T) {
		claims := validClaims()
		claims.TokenType = "refresh"
		token := signToken(t, testSecret, claims)

		if _, err := verifier.VerifyAccessToken(ctx, token); err == nil {
			t.Error("expected an error for a non-access token")
		}
	})

	t.Run("rejects a malformed user id", func(t *testing.T) {
		claims := validClaims()
		claims.UserID = "not-a-uuid"
		token := signToken(t, testSecret, claims)

		if _, err := verifier.VerifyAccessToken(ctx, token); err == nil {
			t.Error("expected an error for a malformed user id claim")
		}
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		if _, err := verifier.VerifyAccessToken(ctx, "not.a.jwt"); err == nil {
			t.Error("expected an error for a malformed token")
		}
	})
}
