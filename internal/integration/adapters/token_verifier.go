package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finsight/backend/internal/application/adapter"
)

// tokenTypeAccess is the token_type claim expected on access tokens.
const tokenTypeAccess = "access"

// accessTokenClaims represents the custom claims carried by access tokens.
type accessTokenClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenVerifier implements the adapter.TokenVerifier interface with
// HMAC-signed JWTs.
type tokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a new token verifier instance.
func NewTokenVerifier(secret string) adapter.TokenVerifier {
	return &tokenVerifier{
		secret: []byte(secret),
	}
}

// VerifyAccessToken validates the token signature, expiry and type, and
// returns the authenticated user's ID.
func (v *tokenVerifier) VerifyAccessToken(_ context.Context, token string) (uuid.UUID, error) {
	claims := &accessTokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid {
		return uuid.Nil, errors.New("token is not valid")
	}
	if claims.TokenType != tokenTypeAccess {
		return uuid.Nil, errors.New("token is not an access token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user_id claim: %w", err)
	}
	return userID, nil
}
