package adapter

import (
	"context"

	"github.com/google/uuid"
)

// TokenVerifier validates bearer tokens issued by the identity provider
// and yields the authenticated user. Token issuing lives outside this
// service.
type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (uuid.UUID, error)
}
