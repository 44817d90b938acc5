// Package adapter defines the interfaces that the application layer
// expects its infrastructure collaborators to implement.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finsight/backend/internal/domain/entity"
)

// IncomeRepository defines the persistence operations for income entries.
type IncomeRepository interface {
	Create(ctx context.Context, income *entity.IncomeEntry) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.IncomeEntry, error)
}

// ExpenseRepository defines the persistence operations for expense entries.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.ExpenseEntry) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseEntry, error)
}
