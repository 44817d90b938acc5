package adapter

import (
	"context"

	"github.com/google/uuid"
)

// OverviewCache memoizes serialized analytics overviews per user and
// evaluation month. The engine is a pure function of its inputs, so the
// cache is strictly an optimization: a miss or error always falls back
// to recomputation.
type OverviewCache interface {
	Get(ctx context.Context, userID uuid.UUID, monthKey string) ([]byte, bool)
	Set(ctx context.Context, userID uuid.UUID, monthKey string, payload []byte) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
